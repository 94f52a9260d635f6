package dto

import (
	"github.com/google/uuid"
)

type CreateRoadmapRequest struct {
	Title string `json:"title" form:"title" validate:"omitempty,max=200"`
}

type CreateMilestoneRequest struct {
	Content string `json:"content" form:"content" validate:"omitempty,max=500"`
}

type RoadmapResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	Progress    int       `json:"progress"`
}

type MilestoneResponse struct {
	ID          uuid.UUID `json:"id"`
	Content     string    `json:"content"`
	Position    int       `json:"position"`
	IsCompleted bool      `json:"is_completed"`
}

// RoadmapDetailResponse คือหน้า roadmap เดี่ยว: milestones เรียงตาม position
type RoadmapDetailResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	IsCompleted bool                `json:"is_completed"`
	Progress    int                 `json:"progress"`
	Milestones  []MilestoneResponse `json:"milestones"`
}
