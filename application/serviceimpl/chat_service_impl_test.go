package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora/domain/errs"
	"planora/domain/models"
)

func TestChatIncludesTodayTasks(t *testing.T) {
	repo := newFakeTaskRepo()
	assistant := &fakeAssistant{reply: "you got this!"}
	svc := NewChatService(repo, assistant)
	ctx := context.Background()
	userID := uuid.New()

	// task เดียว status=doing เริ่มวันนี้ (เที่ยงวัน - ไม่ขึ้นกับเวลาที่รัน test)
	y, m, d := time.Now().Date()
	start := time.Date(y, m, d, 12, 0, 0, 0, time.Local)
	require.NoError(t, repo.Create(ctx, &models.Task{
		ID:        uuid.New(),
		Content:   "finish report",
		Status:    models.TaskStatusDoing,
		StartTime: &start,
		UserID:    userID,
	}))

	reply, err := svc.Chat(ctx, userID, "alice", "what's on today?")
	require.NoError(t, err)
	assert.Equal(t, "you got this!", reply)

	assert.Contains(t, assistant.lastPrompt, "alice")
	assert.Contains(t, assistant.lastPrompt, "Today's tasks:")
	assert.Contains(t, assistant.lastPrompt, "- finish report (in progress)")
	assert.Contains(t, assistant.lastPrompt, "User says: what's on today?")
}

func TestChatTodayTaskInPastIsNotUpcoming(t *testing.T) {
	repo := newFakeTaskRepo()
	assistant := &fakeAssistant{reply: "ok"}
	svc := NewChatService(repo, assistant)
	ctx := context.Background()
	userID := uuid.New()

	// เริ่มเที่ยงคืนวันนี้ = ผ่านไปแล้วแน่ๆ แต่ยังเป็นวันนี้อยู่
	y, m, d := time.Now().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	require.NoError(t, repo.Create(ctx, &models.Task{
		ID:        uuid.New(),
		Content:   "morning standup",
		Status:    models.TaskStatusTodo,
		StartTime: &start,
		UserID:    userID,
	}))

	_, err := svc.Chat(ctx, userID, "alice", "what did I have today?")
	require.NoError(t, err)

	// โผล่ในรายการวันนี้อย่างเดียว ไม่นับเป็น upcoming
	assert.Contains(t, assistant.lastPrompt, "Today's tasks:")
	assert.Contains(t, assistant.lastPrompt, "- morning standup (not started)")
	assert.NotContains(t, assistant.lastPrompt, "Coming up:")
}

func TestChatUpcomingLimitedToThree(t *testing.T) {
	repo := newFakeTaskRepo()
	assistant := &fakeAssistant{reply: "ok"}
	svc := NewChatService(repo, assistant)
	ctx := context.Background()
	userID := uuid.New()

	base := time.Now().AddDate(0, 0, 2)
	for i := 0; i < 5; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, &models.Task{
			ID:        uuid.New(),
			Content:   "future-" + string(rune('a'+i)),
			Status:    models.TaskStatusTodo,
			StartTime: &start,
			UserID:    userID,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	_, err := svc.Chat(ctx, userID, "bob", "anything coming up?")
	require.NoError(t, err)

	assert.Contains(t, assistant.lastPrompt, "Coming up:")
	// ตัดที่ 3 รายการที่ใกล้สุด
	assert.Contains(t, assistant.lastPrompt, "future-a")
	assert.Contains(t, assistant.lastPrompt, "future-b")
	assert.Contains(t, assistant.lastPrompt, "future-c")
	assert.NotContains(t, assistant.lastPrompt, "future-d")
	assert.NotContains(t, assistant.lastPrompt, "future-e")
}

func TestChatNoTasksOmitsSections(t *testing.T) {
	assistant := &fakeAssistant{reply: "hello!"}
	svc := NewChatService(newFakeTaskRepo(), assistant)

	_, err := svc.Chat(context.Background(), uuid.New(), "carol", "hi")
	require.NoError(t, err)

	assert.NotContains(t, assistant.lastPrompt, "Today's tasks:")
	assert.NotContains(t, assistant.lastPrompt, "Coming up:")
}

func TestChatEmptyMessage(t *testing.T) {
	svc := NewChatService(newFakeTaskRepo(), &fakeAssistant{})

	_, err := svc.Chat(context.Background(), uuid.New(), "dave", "   ")
	assert.ErrorIs(t, err, errs.ErrEmptyContent)
}

func TestChatAssistantFailureIsGeneric(t *testing.T) {
	assistant := &fakeAssistant{err: errors.New("quota exceeded: key sk-123 suspended")}
	svc := NewChatService(newFakeTaskRepo(), assistant)

	_, err := svc.Chat(context.Background(), uuid.New(), "eve", "hello")
	require.Error(t, err)

	// รายละเอียดภายในห้ามหลุดไปกับ error
	assert.ErrorIs(t, err, errs.ErrAssistantUnavailable)
	assert.NotContains(t, err.Error(), "quota")
	assert.NotContains(t, err.Error(), "sk-123")
}

func TestBuildPromptStatusLabels(t *testing.T) {
	tasks := []*models.Task{
		{Content: "one", Status: models.TaskStatusTodo},
		{Content: "two", Status: models.TaskStatusDoing},
		{Content: "three", Status: models.TaskStatusDone},
	}

	prompt := BuildPrompt("frank", "hey", tasks, nil)

	assert.Contains(t, prompt, "- one (not started)")
	assert.Contains(t, prompt, "- two (in progress)")
	assert.Contains(t, prompt, "- three (finished)")
}

func TestBuildPromptDeterministic(t *testing.T) {
	start := time.Date(2026, 9, 5, 13, 30, 0, 0, time.UTC)
	upcoming := []*models.Task{{Content: "dentist", Status: models.TaskStatusTodo, StartTime: &start}}

	first := BuildPrompt("grace", "remind me", nil, upcoming)
	second := BuildPrompt("grace", "remind me", nil, upcoming)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "- dentist at 2026-09-05 13:30")
	assert.True(t, strings.HasSuffix(first, "use the information above."))
}
