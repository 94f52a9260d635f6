package services

import (
	"context"

	"github.com/google/uuid"
)

// ChatService รวบรวม snapshot ของ task state (วันนี้ + 3 รายการถัดไป)
// แปลงเป็น prompt แล้วส่งให้ generative service
type ChatService interface {
	// Chat คืนข้อความตอบกลับ - message ว่างคืน errs.ErrEmptyContent,
	// service ภายนอกพังคืน errs.ErrAssistantUnavailable (ไม่มี detail หลุด)
	Chat(ctx context.Context, userID uuid.UUID, username, message string) (string, error)
}
