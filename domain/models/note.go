package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultNoteColor = "#FFE5D9"

// Note คือ sticky note บน canvas อิสระ (PositionX/PositionY เป็นพิกัด 2D)
type Note struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"not null;index"`
	Title     string
	Content   string
	Color     string `gorm:"default:'#FFE5D9'"`
	PositionX int    `gorm:"default:0"`
	PositionY int    `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Note) TableName() string {
	return "notes"
}
