package models

import (
	"time"

	"github.com/google/uuid"
)

// Session คือ record ฝั่ง server ของ session token
// อยู่ใน Redis (หรือ in-memory fallback) ไม่ใช่ Postgres
// สร้างตอน login, ลบตอน logout, หมดอายุตาม ExpiresAt
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired ตรวจสอบว่า session หมดอายุแล้วหรือยัง
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
