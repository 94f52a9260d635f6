package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"planora/domain/dto"
	"planora/domain/errs"
	"planora/domain/services"
	"planora/pkg/logger"
	"planora/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks คืน task ทั้งหมดของ user (ไม่มี pagination - หน้า todo โชว์หมด)
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	tasks, err := h.taskService.ListTasks(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Task list failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = dto.TaskToTaskResponse(task)
	}

	return utils.SuccessResponse(c, responses)
}

// CreateTask สร้าง task ใหม่ status=todo
// content ว่างไม่สร้างอะไรแต่ตอบ success (พฤติกรรมเดิมของหน้า todo)
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	if strings.TrimSpace(req.Content) == "" {
		return utils.SuccessResponse(c, fiber.Map{"created": false})
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, req.Content)
	if err != nil {
		if errors.Is(err, errs.ErrEmptyContent) {
			return utils.SuccessResponse(c, fiber.Map{"created": false})
		}
		logger.ErrorContext(ctx, "Task creation failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", user.ID)

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

// UpdateStatus เปลี่ยนสถานะ task
// ไม่ login หรือ task ไม่มี/ไม่ใช่ของเรา -> ตอบ success เฉย ๆ (no-op เดิม)
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.SuccessResponse(c, fiber.Map{"updated": false})
	}

	if err := h.taskService.UpdateStatus(ctx, user.ID, taskID, req.Status); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.SuccessResponse(c, fiber.Map{"updated": false})
		}
		logger.ErrorContext(ctx, "Status update failed", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, fiber.Map{"updated": true})
}

// DeleteTask ลบ task ของ user
// ไม่ login หรือ task ไม่ใช่ของเรา -> ตอบ success เฉย ๆ เหมือน UpdateStatus
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.SuccessResponse(c, fiber.Map{"deleted": false})
	}

	if err := h.taskService.DeleteTask(ctx, user.ID, taskID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.SuccessResponse(c, fiber.Map{"deleted": false})
		}
		logger.ErrorContext(ctx, "Task delete failed", "task_id", taskID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", user.ID)

	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}
