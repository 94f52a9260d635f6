package services

import (
	"context"

	"github.com/google/uuid"

	"planora/domain/dto"
	"planora/domain/models"
)

// TaskService ครอบทั้งหน้า to-do และ calendar (ใช้ tasks ตารางเดียวกัน)
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, content string) (*models.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	UpdateStatus(ctx context.Context, userID, taskID uuid.UUID, status string) error
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error

	// Calendar operations
	ListEvents(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*models.Task, error)
	RescheduleEvent(ctx context.Context, userID uuid.UUID, req *dto.UpdateEventRequest) error
}
