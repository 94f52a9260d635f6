package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"planora/domain/dto"
	"planora/domain/errs"
	"planora/domain/models"
	"planora/domain/services"
	"planora/pkg/logger"
	"planora/pkg/utils"
)

type RoadmapHandler struct {
	roadmapService services.RoadmapService
}

func NewRoadmapHandler(roadmapService services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapService: roadmapService,
	}
}

// ListRoadmaps คืน roadmap ทั้งหมดพร้อม progress ที่คำนวณสด
func (h *RoadmapHandler) ListRoadmaps(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	overviews, err := h.roadmapService.ListRoadmaps(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Roadmap list failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	responses := make([]dto.RoadmapResponse, len(overviews))
	for i, ov := range overviews {
		responses[i] = dto.RoadmapToRoadmapResponse(ov.Roadmap, ov.Progress)
	}

	return utils.SuccessResponse(c, responses)
}

// CreateRoadmap สร้าง roadmap เปล่า - title ว่างเป็น no-op success
func (h *RoadmapHandler) CreateRoadmap(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateRoadmapRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	if strings.TrimSpace(req.Title) == "" {
		return utils.SuccessResponse(c, fiber.Map{"created": false})
	}

	roadmap, err := h.roadmapService.CreateRoadmap(ctx, user.ID, req.Title)
	if err != nil {
		if errors.Is(err, errs.ErrEmptyContent) {
			return utils.SuccessResponse(c, fiber.Map{"created": false})
		}
		logger.ErrorContext(ctx, "Roadmap creation failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Roadmap created", "roadmap_id", roadmap.ID, "user_id", user.ID)

	// roadmap ใหม่ไม่มี milestone - progress เป็นศูนย์เสมอ
	return utils.CreatedResponse(c, dto.RoadmapToRoadmapResponse(roadmap, models.ComputeProgress(nil)))
}

// GetRoadmap คืน roadmap พร้อม milestones เรียงตาม position
// ไม่ใช่ของเราได้ 404 เหมือนไม่มี
func (h *RoadmapHandler) GetRoadmap(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	roadmapID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid roadmap ID")
	}

	detail, err := h.roadmapService.GetRoadmap(ctx, user.ID, roadmapID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.NotFoundResponse(c, "Roadmap not found")
		}
		logger.ErrorContext(ctx, "Roadmap fetch failed", "roadmap_id", roadmapID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.RoadmapToDetailResponse(detail.Roadmap, detail.Milestones, detail.Progress))
}

// DeleteRoadmap ลบ roadmap พร้อม milestones ทั้งหมดใน transaction เดียว
func (h *RoadmapHandler) DeleteRoadmap(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	roadmapID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid roadmap ID")
	}

	if err := h.roadmapService.DeleteRoadmap(ctx, user.ID, roadmapID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.NotFoundResponse(c, "Roadmap not found")
		}
		logger.ErrorContext(ctx, "Roadmap delete failed", "roadmap_id", roadmapID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Roadmap deleted", "roadmap_id", roadmapID, "user_id", user.ID)

	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}

// AddMilestone ต่อท้าย milestone (position = count+1 ใน tx เดียว)
func (h *RoadmapHandler) AddMilestone(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	roadmapID, err := uuid.Parse(c.Params("roadmap_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid roadmap ID")
	}

	var req dto.CreateMilestoneRequest
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

	milestone, err := h.roadmapService.AddMilestone(ctx, user.ID, roadmapID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return utils.NotFoundResponse(c, "Roadmap not found")
		case errors.Is(err, errs.ErrEmptyContent):
			return utils.SuccessResponse(c, fiber.Map{"created": false})
		default:
			logger.ErrorContext(ctx, "Milestone creation failed", "roadmap_id", roadmapID, "error", err)
			return utils.InternalServerErrorResponse(c)
		}
	}

	logger.InfoContext(ctx, "Milestone created", "milestone_id", milestone.ID, "roadmap_id", roadmapID)

	return utils.CreatedResponse(c, dto.MilestoneToMilestoneResponse(milestone))
}

// ToggleMilestone พลิกสถานะ milestone - เรียกสองครั้งกลับค่าเดิม
// ownership ตรวจผ่าน roadmap แม่ก่อนเสมอ
func (h *RoadmapHandler) ToggleMilestone(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	milestoneID, err := uuid.Parse(c.Params("m_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid milestone ID")
	}

	roadmapID, err := uuid.Parse(c.Params("r_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid roadmap ID")
	}

	if err := h.roadmapService.ToggleMilestone(ctx, user.ID, milestoneID, roadmapID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.NotFoundResponse(c, "Milestone not found")
		}
		logger.ErrorContext(ctx, "Milestone toggle failed", "milestone_id", milestoneID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, fiber.Map{"toggled": true})
}

// DeleteMilestone ลบ milestone - ownership ผ่าน roadmap แม่เหมือน toggle
func (h *RoadmapHandler) DeleteMilestone(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	milestoneID, err := uuid.Parse(c.Params("m_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid milestone ID")
	}

	roadmapID, err := uuid.Parse(c.Params("r_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid roadmap ID")
	}

	if err := h.roadmapService.DeleteMilestone(ctx, user.ID, milestoneID, roadmapID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return utils.NotFoundResponse(c, "Milestone not found")
		}
		logger.ErrorContext(ctx, "Milestone delete failed", "milestone_id", milestoneID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Milestone deleted", "milestone_id", milestoneID, "roadmap_id", roadmapID)

	return utils.SuccessResponse(c, fiber.Map{"deleted": true})
}
