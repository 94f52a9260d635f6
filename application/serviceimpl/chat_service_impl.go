package serviceimpl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"planora/domain/errs"
	"planora/domain/models"
	"planora/domain/ports"
	"planora/domain/repositories"
	"planora/domain/services"
	"planora/pkg/logger"
)

// upcomingLimit - today ไม่จำกัดจำนวน แต่ upcoming ตัดที่ 3
// เพื่อให้ขนาด prompt คาดเดาได้โดยไม่ต้องมี token budget จริง ๆ
const upcomingLimit = 3

// statusLabels แปลง task status เป็นคำพูดใน prompt
var statusLabels = map[string]string{
	models.TaskStatusTodo:  "not started",
	models.TaskStatusDoing: "in progress",
	models.TaskStatusDone:  "finished",
}

type ChatServiceImpl struct {
	taskRepo  repositories.TaskRepository
	assistant ports.AssistantPort
}

func NewChatService(taskRepo repositories.TaskRepository, assistant ports.AssistantPort) services.ChatService {
	return &ChatServiceImpl{
		taskRepo:  taskRepo,
		assistant: assistant,
	}
}

func (s *ChatServiceImpl) Chat(ctx context.Context, userID uuid.UUID, username, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errs.ErrEmptyContent
	}

	now := time.Now()

	todayTasks, err := s.taskRepo.ListDueToday(ctx, userID, now)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load today's tasks", "user_id", userID, "error", err)
		return "", errs.ErrAssistantUnavailable
	}

	upcoming, err := s.taskRepo.ListUpcoming(ctx, userID, now, upcomingLimit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load upcoming tasks", "user_id", userID, "error", err)
		return "", errs.ErrAssistantUnavailable
	}

	prompt := BuildPrompt(username, message, todayTasks, upcoming)

	// call เดียวจบ - ไม่มี history, ไม่ retry, ไม่ถือ transaction ระหว่างรอ
	reply, err := s.assistant.GenerateReply(ctx, prompt)
	if err != nil {
		// detail ของ failure อยู่ใน log เท่านั้น client เห็นแค่ generic error
		logger.ErrorContext(ctx, "Assistant call failed", "user_id", userID, "error", err)
		return "", errs.ErrAssistantUnavailable
	}

	logger.InfoContext(ctx, "Chat reply generated", "user_id", userID)
	return reply, nil
}

// BuildPrompt ประกอบ prompt จาก snapshot ของ task state
// pure function - output เดียวกันเสมอสำหรับ input เดียวกัน
func BuildPrompt(username, message string, todayTasks, upcoming []*models.Task) string {
	var b strings.Builder

	b.WriteString("You are the warm, upbeat personal assistant of ")
	b.WriteString(username)
	b.WriteString(".\n")
	b.WriteString("You help them manage their time and tasks, and you always listen.\n\n")
	b.WriteString("Your personality:\n")
	b.WriteString("- Enthusiastic, optimistic, always encouraging\n")
	b.WriteString("- Friendly like a close friend, never too formal\n")
	b.WriteString("- Caring about the user's mood and feelings\n")
	b.WriteString("- Gentle with reminders, lightly humorous when it fits\n")

	if len(todayTasks) > 0 {
		b.WriteString("\nToday's tasks:\n")
		for _, task := range todayTasks {
			b.WriteString("- ")
			b.WriteString(task.Content)
			b.WriteString(" (")
			b.WriteString(statusLabels[task.Status])
			b.WriteString(")\n")
		}
	}

	if len(upcoming) > 0 {
		b.WriteString("\nComing up:\n")
		for _, task := range upcoming {
			b.WriteString("- ")
			b.WriteString(task.Content)
			if task.StartTime != nil {
				b.WriteString(" at ")
				b.WriteString(task.StartTime.Format("2006-01-02 15:04"))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nUser says: ")
	b.WriteString(message)
	b.WriteString("\n\nReply naturally and in a friendly way. If the user asks about their tasks, use the information above.")

	return b.String()
}
