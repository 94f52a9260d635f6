package serviceimpl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"planora/domain/dto"
	"planora/domain/errs"
	"planora/domain/models"
	"planora/domain/ports"
	"planora/domain/repositories"
	"planora/domain/services"
	"planora/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	activity ports.ActivityPublisherPort
}

func NewTaskService(taskRepo repositories.TaskRepository, activity ports.ActivityPublisherPort) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		activity: activity,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, content string) (*models.Task, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errs.ErrEmptyContent
	}

	task := &models.Task{
		ID:        uuid.New(),
		Content:   content,
		Status:    models.TaskStatusTodo,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "created", Resource: "task", RefID: task.ID})

	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, userID, taskID uuid.UUID, status string) error {
	if err := s.taskRepo.UpdateStatus(ctx, taskID, userID, status); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task status updated", "task_id", taskID, "status", status)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "updated", Resource: "task", RefID: taskID})
	return nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, taskID, userID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "deleted", Resource: "task", RefID: taskID})
	return nil
}

func (s *TaskServiceImpl) ListEvents(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	return s.taskRepo.ListScheduled(ctx, userID)
}

// CreateEvent สร้าง task จากหน้า calendar - status เริ่มที่ doing
func (s *TaskServiceImpl) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*models.Task, error) {
	task := &models.Task{
		ID:        uuid.New(),
		Content:   req.Title,
		Status:    models.TaskStatusDoing,
		StartTime: req.Start,
		EndTime:   req.End,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create event", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Event created", "task_id", task.ID, "user_id", userID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "created", Resource: "task", RefID: task.ID})

	return task, nil
}

func (s *TaskServiceImpl) RescheduleEvent(ctx context.Context, userID uuid.UUID, req *dto.UpdateEventRequest) error {
	if err := s.taskRepo.Reschedule(ctx, req.ID, userID, req.Start, req.End); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Event rescheduled", "task_id", req.ID, "user_id", userID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "updated", Resource: "task", RefID: req.ID})
	return nil
}
