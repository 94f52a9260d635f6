package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"planora/domain/models"
)

// TaskRepository - ทุก query ที่แตะ record เดิม scope ด้วย userID เสมอ
// (id ที่ไม่มีจริงกับ id ของคนอื่นให้ผลเหมือนกัน)
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)

	// ListScheduled คืนเฉพาะ task ที่มี start_time (อยู่บน calendar)
	ListScheduled(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)

	// ListDueToday คืน task ที่ start_time อยู่ในวันเดียวกับ now (ไม่จำกัดจำนวน)
	ListDueToday(ctx context.Context, userID uuid.UUID, now time.Time) ([]*models.Task, error)

	// ListUpcoming คืน task ที่ start_time > now เรียงจากใกล้สุด จำกัด limit
	ListUpcoming(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*models.Task, error)

	UpdateStatus(ctx context.Context, taskID, userID uuid.UUID, status string) error
	Reschedule(ctx context.Context, taskID, userID uuid.UUID, start, end *time.Time) error
	Delete(ctx context.Context, taskID, userID uuid.UUID) error
}
