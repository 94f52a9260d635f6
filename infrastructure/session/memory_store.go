package session

import (
	"context"
	"sync"
	"time"

	"planora/domain/errs"
	"planora/domain/models"
)

// MemoryStore คือ fallback ตอนไม่มี Redis (dev/test)
// ไม่มี TTL อัตโนมัติ - scheduler เรียก Sweep เป็นระยะแทน
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.Session),
	}
}

func (s *MemoryStore) Put(ctx context.Context, session *models.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copy := *session
	copy.ExpiresAt = time.Now().Add(ttl)
	s.sessions[session.ID] = &copy
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.ErrNotFound
	}
	if session.IsExpired(time.Now()) {
		// ลบทิ้งเลย ไม่รอ sweep
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return nil, errs.ErrNotFound
	}

	copy := *session
	return &copy, nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Sweep ลบ session ที่หมดอายุแล้ว คืนจำนวนที่ลบ
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.IsExpired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len จำนวน session ที่ active อยู่
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
