package repositories

import (
	"context"

	"github.com/google/uuid"

	"planora/domain/models"
)

type RoadmapRepository interface {
	Create(ctx context.Context, roadmap *models.Roadmap) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Roadmap, error)

	// GetByIDForUser คือจุดตรวจ ownership ของ roadmap และ (ทางอ้อม) ของ milestones
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Roadmap, error)

	// DeleteCascade ลบ milestones ทั้งหมดก่อนแล้วค่อยลบ roadmap ใน transaction เดียว
	DeleteCascade(ctx context.Context, id, userID uuid.UUID) error

	// ListMilestones คืน milestones เรียงตาม position
	ListMilestones(ctx context.Context, roadmapID uuid.UUID) ([]*models.Milestone, error)

	// AddMilestone ตั้ง position = count+1 ใน transaction เดียวกับ insert
	// (กัน race ระหว่าง add พร้อมกันสอง request)
	AddMilestone(ctx context.Context, roadmapID uuid.UUID, content string) (*models.Milestone, error)

	// ToggleMilestone พลิก is_completed (1 - current) - ไม่ idempotent
	ToggleMilestone(ctx context.Context, milestoneID, roadmapID uuid.UUID) error

	// SetMilestoneCompletion ตั้งค่าตรง ๆ (ตัว idempotent ของ toggle)
	SetMilestoneCompletion(ctx context.Context, milestoneID, roadmapID uuid.UUID, completed bool) error

	DeleteMilestone(ctx context.Context, milestoneID, roadmapID uuid.UUID) error
}
