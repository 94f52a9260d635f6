package errs

import "errors"

// Ownership mismatch และ record ที่ไม่มีจริงต้องแยกไม่ออกจากฝั่ง client
// ทั้งสองกรณี map เป็น ErrNotFound เสมอ
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrEmptyContent = errors.New("content is empty")

	// ErrAssistantUnavailable ครอบทุก failure จาก generative service
	// (network, quota, malformed response, ไม่มี API key)
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
