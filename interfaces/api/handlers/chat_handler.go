package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"planora/domain/dto"
	"planora/domain/errs"
	"planora/domain/services"
	"planora/pkg/logger"
	"planora/pkg/utils"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat ส่งข้อความให้ assistant พร้อม task context ของ user
// assistant พังตอบ 500 แบบ generic - รายละเอียดอยู่ใน log เท่านั้น
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	reply, err := h.chatService.Chat(ctx, user.ID, user.Username, req.Message)
	if err != nil {
		if errors.Is(err, errs.ErrEmptyContent) {
			return utils.BadRequestResponse(c, "Message is required")
		}
		// detail ถูก log ไปแล้วใน service - ฝั่ง client เห็นแค่นี้
		return utils.ErrorResponse(c, fiber.StatusInternalServerError,
			utils.ErrCodeInternalError, "AI connection error", nil)
	}

	return utils.SuccessResponse(c, dto.ChatResponse{
		Reply:     reply,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
