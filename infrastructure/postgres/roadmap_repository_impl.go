package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"planora/domain/errs"
	"planora/domain/models"
	"planora/domain/repositories"
)

type RoadmapRepositoryImpl struct {
	db *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) repositories.RoadmapRepository {
	return &RoadmapRepositoryImpl{db: db}
}

func (r *RoadmapRepositoryImpl) Create(ctx context.Context, roadmap *models.Roadmap) error {
	return r.db.WithContext(ctx).Create(roadmap).Error
}

func (r *RoadmapRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Roadmap, error) {
	var roadmaps []*models.Roadmap
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&roadmaps).Error
	return roadmaps, err
}

func (r *RoadmapRepositoryImpl) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&roadmap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &roadmap, nil
}

func (r *RoadmapRepositoryImpl) DeleteCascade(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ลบลูกก่อนพ่อ - เผื่อวันหน้ามี FK จาก milestones ไป roadmaps
		if err := tx.Where("roadmap_id = ?", id).Delete(&models.Milestone{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Roadmap{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// roadmap ไม่ใช่ของ user นี้ - rollback คืน milestones ที่ลบไป
			return errs.ErrNotFound
		}
		return nil
	})
}

func (r *RoadmapRepositoryImpl) ListMilestones(ctx context.Context, roadmapID uuid.UUID) ([]*models.Milestone, error) {
	var milestones []*models.Milestone
	err := r.db.WithContext(ctx).
		Where("roadmap_id = ?", roadmapID).
		Order("position").
		Find(&milestones).Error
	return milestones, err
}

func (r *RoadmapRepositoryImpl) AddMilestone(ctx context.Context, roadmapID uuid.UUID, content string) (*models.Milestone, error) {
	milestone := &models.Milestone{
		ID:        uuid.New(),
		RoadmapID: roadmapID,
		Content:   content,
	}

	// lock แถว roadmap ก่อน count - READ COMMITTED อย่างเดียวไม่กัน
	// สอง tx อ่าน count เท่ากันแล้ว insert position ซ้ำ
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roadmap models.Roadmap
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", roadmapID).
			First(&roadmap).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Milestone{}).
			Where("roadmap_id = ?", roadmapID).
			Count(&count).Error; err != nil {
			return err
		}

		milestone.Position = int(count) + 1
		return tx.Create(milestone).Error
	})
	if err != nil {
		return nil, err
	}

	return milestone, nil
}

func (r *RoadmapRepositoryImpl) ToggleMilestone(ctx context.Context, milestoneID, roadmapID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.Milestone{}).
		Where("id = ? AND roadmap_id = ?", milestoneID, roadmapID).
		Update("is_completed", gorm.Expr("NOT is_completed"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *RoadmapRepositoryImpl) SetMilestoneCompletion(ctx context.Context, milestoneID, roadmapID uuid.UUID, completed bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Milestone{}).
		Where("id = ? AND roadmap_id = ?", milestoneID, roadmapID).
		Update("is_completed", completed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *RoadmapRepositoryImpl) DeleteMilestone(ctx context.Context, milestoneID, roadmapID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND roadmap_id = ?", milestoneID, roadmapID).
		Delete(&models.Milestone{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
