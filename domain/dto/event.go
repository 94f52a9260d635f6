package dto

import (
	"time"

	"github.com/google/uuid"
)

// Calendar payloads ใช้ field names ตาม FullCalendar (title/start/end)

type CreateEventRequest struct {
	Title string     `json:"title" validate:"required,max=500"`
	Start *time.Time `json:"start" validate:"required"`
	End   *time.Time `json:"end"`
}

type UpdateEventRequest struct {
	ID    uuid.UUID  `json:"id" validate:"required"`
	Start *time.Time `json:"start" validate:"required"`
	End   *time.Time `json:"end"`
}

type EventResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Start           *time.Time `json:"start"`
	End             *time.Time `json:"end"`
	BackgroundColor string     `json:"backgroundColor"`
	BorderColor     string     `json:"borderColor"`
}
