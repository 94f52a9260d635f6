package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora/domain/dto"
	"planora/domain/errs"
	"planora/domain/models"
)

func TestCreateTask(t *testing.T) {
	repo := newFakeTaskRepo()
	activity := &fakeActivity{}
	svc := NewTaskService(repo, activity)
	ctx := context.Background()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, task.Status)
	assert.Nil(t, task.StartTime)

	tasks, err := svc.ListTasks(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	require.Len(t, activity.events, 1)
	assert.Equal(t, "task", activity.events[0].Resource)
	assert.Equal(t, "created", activity.events[0].Action)
}

func TestCreateTaskEmptyContent(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo(), &fakeActivity{})

	_, err := svc.CreateTask(context.Background(), uuid.New(), "  \t ")
	assert.ErrorIs(t, err, errs.ErrEmptyContent)
}

func TestTaskCrossUserIsolation(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, &fakeActivity{})
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	task, err := svc.CreateTask(ctx, owner, "private task")
	require.NoError(t, err)

	// id ของคนอื่นต้องดูไม่ต่างจาก id ที่ไม่มีจริง
	assert.ErrorIs(t, svc.DeleteTask(ctx, intruder, task.ID), errs.ErrNotFound)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, intruder, task.ID, models.TaskStatusDone), errs.ErrNotFound)

	tasks, err := svc.ListTasks(ctx, intruder)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// ของ owner ไม่โดนแตะ
	tasks, err = svc.ListTasks(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, models.TaskStatusTodo, tasks[0].Status)
}

func TestCreateEventStartsDoing(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, &fakeActivity{})
	ctx := context.Background()
	userID := uuid.New()

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	event, err := svc.CreateEvent(ctx, userID, &dto.CreateEventRequest{
		Title: "standup",
		Start: &start,
		End:   &end,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDoing, event.Status)
	assert.True(t, event.IsScheduled())
}

func TestListEventsOnlyScheduled(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, &fakeActivity{})
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.CreateTask(ctx, userID, "no time on this one")
	require.NoError(t, err)

	start := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
	_, err = svc.CreateEvent(ctx, userID, &dto.CreateEventRequest{Title: "review", Start: &start})
	require.NoError(t, err)

	events, err := svc.ListEvents(ctx, userID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "review", events[0].Content)
}

func TestRescheduleEvent(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, &fakeActivity{})
	ctx := context.Background()
	userID := uuid.New()

	start := time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)
	event, err := svc.CreateEvent(ctx, userID, &dto.CreateEventRequest{Title: "1:1", Start: &start})
	require.NoError(t, err)

	newStart := start.Add(24 * time.Hour)
	newEnd := newStart.Add(30 * time.Minute)
	err = svc.RescheduleEvent(ctx, userID, &dto.UpdateEventRequest{ID: event.ID, Start: &newStart, End: &newEnd})
	require.NoError(t, err)

	events, err := svc.ListEvents(ctx, userID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].StartTime.Equal(newStart))
	assert.True(t, events[0].EndTime.Equal(newEnd))
}
