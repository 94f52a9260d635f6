package dto

import (
	"planora/domain/models"
)

func UserToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func TaskToTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Content:   task.Content,
		Status:    task.Status,
		StartTime: task.StartTime,
		EndTime:   task.EndTime,
		CreatedAt: task.CreatedAt,
	}
}

// TaskToEventResponse แปลง task เป็น calendar event
// สีตรงกับที่ frontend เดิมใช้
func TaskToEventResponse(task *models.Task) EventResponse {
	return EventResponse{
		ID:              task.ID,
		Title:           task.Content,
		Start:           task.StartTime,
		End:             task.EndTime,
		BackgroundColor: "#1a73e8",
		BorderColor:     "#1a73e8",
	}
}

func NoteToNoteResponse(note *models.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Color:     note.Color,
		PositionX: note.PositionX,
		PositionY: note.PositionY,
		CreatedAt: note.CreatedAt,
	}
}

func MilestoneToMilestoneResponse(m *models.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          m.ID,
		Content:     m.Content,
		Position:    m.Position,
		IsCompleted: m.IsCompleted,
	}
}

func RoadmapToRoadmapResponse(r *models.Roadmap, progress models.Progress) RoadmapResponse {
	return RoadmapResponse{
		ID:          r.ID,
		Title:       r.Title,
		IsCompleted: progress.IsCompleted,
		Progress:    progress.Percent,
	}
}

func RoadmapToDetailResponse(r *models.Roadmap, milestones []*models.Milestone, progress models.Progress) RoadmapDetailResponse {
	ms := make([]MilestoneResponse, len(milestones))
	for i, m := range milestones {
		ms[i] = MilestoneToMilestoneResponse(m)
	}

	return RoadmapDetailResponse{
		ID:          r.ID,
		Title:       r.Title,
		IsCompleted: progress.IsCompleted,
		Progress:    progress.Percent,
		Milestones:  ms,
	}
}
