package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"planora/domain/dto"
	"planora/domain/models"
	"planora/domain/ports"
	"planora/domain/repositories"
	"planora/domain/services"
	"planora/pkg/logger"
)

type NoteServiceImpl struct {
	noteRepo repositories.NoteRepository
	activity ports.ActivityPublisherPort
}

func NewNoteService(noteRepo repositories.NoteRepository, activity ports.ActivityPublisherPort) services.NoteService {
	return &NoteServiceImpl{
		noteRepo: noteRepo,
		activity: activity,
	}
}

func (s *NoteServiceImpl) CreateNote(ctx context.Context, userID uuid.UUID, req *dto.CreateNoteRequest) (*models.Note, error) {
	color := req.Color
	if color == "" {
		color = models.DefaultNoteColor
	}

	note := &models.Note{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Color:     color,
		PositionX: req.PositionX,
		PositionY: req.PositionY,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.ErrorContext(ctx, "Failed to create note", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Note created", "note_id", note.ID, "user_id", userID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "created", Resource: "note", RefID: note.ID})

	return note, nil
}

func (s *NoteServiceImpl) ListNotes(ctx context.Context, userID uuid.UUID) ([]*models.Note, error) {
	return s.noteRepo.ListByUser(ctx, userID)
}

func (s *NoteServiceImpl) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req *dto.UpdateNoteRequest) error {
	note := &models.Note{
		Title:     req.Title,
		Content:   req.Content,
		Color:     req.Color,
		PositionX: req.PositionX,
		PositionY: req.PositionY,
	}

	if err := s.noteRepo.Update(ctx, noteID, userID, note); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Note updated", "note_id", noteID, "user_id", userID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "updated", Resource: "note", RefID: noteID})
	return nil
}

func (s *NoteServiceImpl) DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error {
	if err := s.noteRepo.Delete(ctx, noteID, userID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Note deleted", "note_id", noteID, "user_id", userID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "deleted", Resource: "note", RefID: noteID})
	return nil
}
