package repositories

import (
	"context"
	"time"

	"planora/domain/models"
)

// SessionStore คือ mapping ฝั่ง server จาก session id ไปยัง subject
// implementation: Redis (TTL จัดการหมดอายุเอง) หรือ in-memory fallback
type SessionStore interface {
	Put(ctx context.Context, session *models.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
