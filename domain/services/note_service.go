package services

import (
	"context"

	"github.com/google/uuid"

	"planora/domain/dto"
	"planora/domain/models"
)

type NoteService interface {
	CreateNote(ctx context.Context, userID uuid.UUID, req *dto.CreateNoteRequest) (*models.Note, error)
	ListNotes(ctx context.Context, userID uuid.UUID) ([]*models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req *dto.UpdateNoteRequest) error
	DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error
}
