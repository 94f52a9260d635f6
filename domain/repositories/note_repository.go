package repositories

import (
	"context"

	"github.com/google/uuid"

	"planora/domain/models"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Note, error)
	Update(ctx context.Context, noteID, userID uuid.UUID, note *models.Note) error
	Delete(ctx context.Context, noteID, userID uuid.UUID) error
}
