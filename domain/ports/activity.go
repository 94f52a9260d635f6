package ports

import (
	"context"

	"github.com/google/uuid"
)

// ActivityEvent คือ event เบา ๆ ที่ publish ตอน user แก้ resource
// ใช้ต่อยอด audit/analytics ภายนอก - best effort เท่านั้น
type ActivityEvent struct {
	UserID   uuid.UUID `json:"user_id"`
	Action   string    `json:"action"`   // created, updated, deleted, toggled
	Resource string    `json:"resource"` // task, roadmap, milestone, note
	RefID    uuid.UUID `json:"ref_id"`
}

// ActivityPublisherPort - NATS implementation, no-op ถ้าไม่ได้ config
// publish ห้าม fail request หลักไม่ว่ากรณีไหน
type ActivityPublisherPort interface {
	Publish(ctx context.Context, event ActivityEvent)
}
