package models

import (
	"time"

	"github.com/google/uuid"
)

type Roadmap struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title     string    `gorm:"not null"`
	UserID    uuid.UUID `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// Progress คำนวณจาก milestones ทุกครั้งที่อ่าน ไม่เก็บลง database
// (derived state - เก็บแล้วจะ diverge จาก source of truth)
type Progress struct {
	Total       int
	Completed   int
	Percent     int  // 0-100, round(100*completed/total)
	IsCompleted bool // total > 0 && completed == total
}

// ComputeProgress เป็น pure function ของ milestone set
func ComputeProgress(milestones []*Milestone) Progress {
	total := len(milestones)
	completed := 0
	for _, m := range milestones {
		if m.IsCompleted {
			completed++
		}
	}

	percent := 0
	if total > 0 {
		percent = int(float64(completed)/float64(total)*100 + 0.5)
	}

	return Progress{
		Total:       total,
		Completed:   completed,
		Percent:     percent,
		IsCompleted: total > 0 && completed == total,
	}
}
