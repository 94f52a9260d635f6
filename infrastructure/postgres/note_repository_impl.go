package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"planora/domain/errs"
	"planora/domain/models"
	"planora/domain/repositories"
)

type NoteRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) repositories.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *NoteRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, noteID, userID uuid.UUID, note *models.Note) error {
	result := r.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ? AND user_id = ?", noteID, userID).
		Updates(map[string]interface{}{
			"title":      note.Title,
			"content":    note.Content,
			"color":      note.Color,
			"position_x": note.PositionX,
			"position_y": note.PositionY,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, noteID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&models.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
