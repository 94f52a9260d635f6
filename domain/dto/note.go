package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title     string `json:"title" validate:"omitempty,max=200"`
	Content   string `json:"content" validate:"omitempty,max=2000"`
	Color     string `json:"color" validate:"omitempty,hexcolor"`
	PositionX int    `json:"position_x"`
	PositionY int    `json:"position_y"`
}

type UpdateNoteRequest struct {
	Title     string `json:"title" validate:"omitempty,max=200"`
	Content   string `json:"content" validate:"omitempty,max=2000"`
	Color     string `json:"color" validate:"omitempty,hexcolor"`
	PositionX int    `json:"position_x"`
	PositionY int    `json:"position_y"`
}

type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	PositionX int       `json:"position_x"`
	PositionY int       `json:"position_y"`
	CreatedAt time.Time `json:"created_at"`
}
