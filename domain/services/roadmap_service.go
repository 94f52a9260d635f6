package services

import (
	"context"

	"github.com/google/uuid"

	"planora/domain/models"
)

// RoadmapOverview คือ roadmap พร้อม progress ที่คำนวณสดตอนอ่าน
type RoadmapOverview struct {
	Roadmap  *models.Roadmap
	Progress models.Progress
}

// RoadmapDetail คือหน้า roadmap เดี่ยว: milestones เรียงตาม position
type RoadmapDetail struct {
	Roadmap    *models.Roadmap
	Milestones []*models.Milestone
	Progress   models.Progress
}

// RoadmapService - ทุก operation ตรวจ ownership ของ roadmap ก่อน
// รวมถึง toggle/delete milestone ด้วย (ownership ผ่าน parent roadmap)
type RoadmapService interface {
	CreateRoadmap(ctx context.Context, userID uuid.UUID, title string) (*models.Roadmap, error)
	ListRoadmaps(ctx context.Context, userID uuid.UUID) ([]RoadmapOverview, error)
	GetRoadmap(ctx context.Context, userID, roadmapID uuid.UUID) (*RoadmapDetail, error)
	DeleteRoadmap(ctx context.Context, userID, roadmapID uuid.UUID) error

	AddMilestone(ctx context.Context, userID, roadmapID uuid.UUID, content string) (*models.Milestone, error)

	// ToggleMilestone พลิกสถานะ - เรียกสองครั้งกลับมาค่าเดิม (ไม่ idempotent)
	ToggleMilestone(ctx context.Context, userID, milestoneID, roadmapID uuid.UUID) error

	// SetMilestoneCompletion ตั้งค่าตรง ๆ สำหรับ caller ที่ต้องการ retry ได้
	SetMilestoneCompletion(ctx context.Context, userID, milestoneID, roadmapID uuid.UUID, completed bool) error

	DeleteMilestone(ctx context.Context, userID, milestoneID, roadmapID uuid.UUID) error
}
