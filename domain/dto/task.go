package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Content string `json:"content" form:"content" validate:"omitempty,max=500"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=todo doing done"`
}

type TaskResponse struct {
	ID        uuid.UUID  `json:"id"`
	Content   string     `json:"content"`
	Status    string     `json:"status"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	CreatedAt time.Time  `json:"created_at"`
}
