package models

import (
	"time"

	"github.com/google/uuid"
)

// Milestone เป็นของ Roadmap (ownership ผ่าน roadmap ไปถึง user)
// Position เริ่มที่ 1, ตั้งตอน create เป็น count+1, ไม่ resequence ตอนลบ
// (ลบแล้วเว้นช่องได้ เลยใส่ unique index บน position ไม่ได้)
type Milestone struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RoadmapID   uuid.UUID `gorm:"not null;index"`
	Content     string    `gorm:"not null"`
	Position    int       `gorm:"not null"`
	IsCompleted bool      `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Milestone) TableName() string {
	return "milestones"
}
