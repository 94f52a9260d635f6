package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"
)

// Task ใช้ทั้งหน้า to-do และ calendar
// StartTime/EndTime เป็น nil = ไม่ได้อยู่บน calendar
type Task struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Content   string    `gorm:"not null"`
	Status    string    `gorm:"default:'todo'"` // todo, doing, done
	StartTime *time.Time
	EndTime   *time.Time
	UserID    uuid.UUID `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// IsScheduled ตรวจสอบว่า task อยู่บน calendar ไหม
func (t *Task) IsScheduled() bool {
	return t.StartTime != nil
}
