package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"planora/domain/dto"
	"planora/domain/errs"
	"planora/domain/services"
	"planora/pkg/logger"
	"planora/pkg/utils"
)

type EventHandler struct {
	taskService services.TaskService
}

func NewEventHandler(taskService services.TaskService) *EventHandler {
	return &EventHandler{
		taskService: taskService,
	}
}

// GetEvents คืน calendar events ของ user
// ไม่ login คืน [] (calendar ฝั่ง frontend โหลด feed นี้ก่อน login เสมอ)
func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusOK).JSON([]dto.EventResponse{})
	}

	tasks, err := h.taskService.ListEvents(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Event list failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	events := make([]dto.EventResponse, len(tasks))
	for i, task := range tasks {
		events[i] = dto.TaskToEventResponse(task)
	}

	// feed นี้ frontend ใช้ตรง ๆ เลยไม่ห่อ envelope
	return c.Status(fiber.StatusOK).JSON(events)
}

// CreateEvent สร้าง task แบบมีเวลา (status=doing)
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	task, err := h.taskService.CreateEvent(ctx, user.ID, &req)
	if err != nil {
		if errors.Is(err, errs.ErrEmptyContent) {
			return utils.BadRequestResponse(c, "Title is required")
		}
		logger.ErrorContext(ctx, "Event creation failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Event created", "task_id", task.ID, "user_id", user.ID)

	return utils.CreatedResponse(c, dto.TaskToEventResponse(task))
}

// UpdateEvent เลื่อนเวลา event (drag/resize บน calendar)
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	if err := h.taskService.RescheduleEvent(ctx, user.ID, &req); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.NotFoundResponse(c, "Event not found")
		}
		logger.ErrorContext(ctx, "Event update failed", "task_id", req.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, fiber.Map{"updated": true})
}
