package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"planora/domain/dto"
	"planora/domain/errs"
	"planora/domain/services"
	"planora/pkg/config"
	"planora/pkg/logger"
	"planora/pkg/utils"
)

type AuthHandler struct {
	userService   services.UserService
	sessionConfig config.SessionConfig
}

func NewAuthHandler(userService services.UserService, sessionConfig config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		sessionConfig: sessionConfig,
	}
}

// Register สมัคร user ใหม่ - username ซ้ำตอบ 409
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", validationErrors)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	logger.InfoContext(ctx, "Registration attempt", "username", req.Username)

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			logger.WarnContext(ctx, "Registration conflict", "username", req.Username)
			return utils.ConflictResponse(c, "Username already exists")
		}
		logger.ErrorContext(ctx, "Registration failed", "username", req.Username, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

// Login ตรวจ credentials แล้วออก session token
// ตอบ 401 เดียวกันทุกกรณี - ไม่บอกว่า user ไม่มีหรือรหัสผิด
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Login failed", "username", req.Username)
		return utils.UnauthorizedResponse(c, "Invalid username or password")
	}

	// session cookie สำหรับ browser clients; API clients ใช้ token จาก body
	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   false, // ตั้งเป็น true ใน production
		SameSite: "Lax",
		MaxAge:   h.sessionConfig.TTL,
	})

	logger.InfoContext(ctx, "Login successful", "user_id", user.ID, "username", user.Username)

	return utils.SuccessResponse(c, dto.LoginResponse{
		Token: token,
		User:  dto.UserToUserResponse(user),
	})
}

// Logout ลบ session record ฝั่ง server แล้วเคลียร์ cookie
// เรียกโดยไม่มี session ก็ตอบ success (ผลลัพธ์เดียวกัน)
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if user, err := utils.GetUserFromContext(c); err == nil {
		if err := h.userService.Logout(ctx, user.SessionID); err != nil {
			logger.WarnContext(ctx, "Session delete failed", "session_id", user.SessionID, "error", err)
		} else {
			logger.InfoContext(ctx, "Logout", "user_id", user.ID)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    "",
		HTTPOnly: true,
		MaxAge:   -1,
	})

	return utils.SuccessResponse(c, fiber.Map{"message": "Logged out"})
}
