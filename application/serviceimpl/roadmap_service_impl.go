package serviceimpl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"planora/domain/errs"
	"planora/domain/models"
	"planora/domain/ports"
	"planora/domain/repositories"
	"planora/domain/services"
	"planora/pkg/logger"
)

type RoadmapServiceImpl struct {
	roadmapRepo repositories.RoadmapRepository
	activity    ports.ActivityPublisherPort
}

func NewRoadmapService(roadmapRepo repositories.RoadmapRepository, activity ports.ActivityPublisherPort) services.RoadmapService {
	return &RoadmapServiceImpl{
		roadmapRepo: roadmapRepo,
		activity:    activity,
	}
}

func (s *RoadmapServiceImpl) CreateRoadmap(ctx context.Context, userID uuid.UUID, title string) (*models.Roadmap, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errs.ErrEmptyContent
	}

	roadmap := &models.Roadmap{
		ID:        uuid.New(),
		Title:     title,
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.roadmapRepo.Create(ctx, roadmap); err != nil {
		logger.ErrorContext(ctx, "Failed to create roadmap", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Roadmap created", "roadmap_id", roadmap.ID, "user_id", userID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "created", Resource: "roadmap", RefID: roadmap.ID})

	return roadmap, nil
}

func (s *RoadmapServiceImpl) ListRoadmaps(ctx context.Context, userID uuid.UUID) ([]services.RoadmapOverview, error) {
	roadmaps, err := s.roadmapRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// progress คำนวณสดทุกครั้ง ไม่ cache ไม่เก็บ
	overviews := make([]services.RoadmapOverview, len(roadmaps))
	for i, roadmap := range roadmaps {
		milestones, err := s.roadmapRepo.ListMilestones(ctx, roadmap.ID)
		if err != nil {
			return nil, err
		}

		overviews[i] = services.RoadmapOverview{
			Roadmap:  roadmap,
			Progress: models.ComputeProgress(milestones),
		}
	}

	return overviews, nil
}

func (s *RoadmapServiceImpl) GetRoadmap(ctx context.Context, userID, roadmapID uuid.UUID) (*services.RoadmapDetail, error) {
	roadmap, err := s.roadmapRepo.GetByIDForUser(ctx, roadmapID, userID)
	if err != nil {
		return nil, err
	}

	milestones, err := s.roadmapRepo.ListMilestones(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	return &services.RoadmapDetail{
		Roadmap:    roadmap,
		Milestones: milestones,
		Progress:   models.ComputeProgress(milestones),
	}, nil
}

func (s *RoadmapServiceImpl) DeleteRoadmap(ctx context.Context, userID, roadmapID uuid.UUID) error {
	if err := s.roadmapRepo.DeleteCascade(ctx, roadmapID, userID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Roadmap deleted", "roadmap_id", roadmapID, "user_id", userID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "deleted", Resource: "roadmap", RefID: roadmapID})
	return nil
}

func (s *RoadmapServiceImpl) AddMilestone(ctx context.Context, userID, roadmapID uuid.UUID, content string) (*models.Milestone, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errs.ErrEmptyContent
	}

	// ตรวจ ownership ของ roadmap ก่อนแตะ milestones
	if _, err := s.roadmapRepo.GetByIDForUser(ctx, roadmapID, userID); err != nil {
		return nil, err
	}

	milestone, err := s.roadmapRepo.AddMilestone(ctx, roadmapID, content)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to add milestone", "roadmap_id", roadmapID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Milestone added", "milestone_id", milestone.ID, "roadmap_id", roadmapID, "position", milestone.Position)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "created", Resource: "milestone", RefID: milestone.ID})

	return milestone, nil
}

func (s *RoadmapServiceImpl) ToggleMilestone(ctx context.Context, userID, milestoneID, roadmapID uuid.UUID) error {
	if _, err := s.roadmapRepo.GetByIDForUser(ctx, roadmapID, userID); err != nil {
		return err
	}

	if err := s.roadmapRepo.ToggleMilestone(ctx, milestoneID, roadmapID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Milestone toggled", "milestone_id", milestoneID, "roadmap_id", roadmapID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "toggled", Resource: "milestone", RefID: milestoneID})
	return nil
}

func (s *RoadmapServiceImpl) SetMilestoneCompletion(ctx context.Context, userID, milestoneID, roadmapID uuid.UUID, completed bool) error {
	if _, err := s.roadmapRepo.GetByIDForUser(ctx, roadmapID, userID); err != nil {
		return err
	}

	if err := s.roadmapRepo.SetMilestoneCompletion(ctx, milestoneID, roadmapID, completed); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Milestone completion set", "milestone_id", milestoneID, "completed", completed)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "updated", Resource: "milestone", RefID: milestoneID})
	return nil
}

func (s *RoadmapServiceImpl) DeleteMilestone(ctx context.Context, userID, milestoneID, roadmapID uuid.UUID) error {
	if _, err := s.roadmapRepo.GetByIDForUser(ctx, roadmapID, userID); err != nil {
		return err
	}

	if err := s.roadmapRepo.DeleteMilestone(ctx, milestoneID, roadmapID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Milestone deleted", "milestone_id", milestoneID, "roadmap_id", roadmapID)
	s.activity.Publish(ctx, ports.ActivityEvent{UserID: userID, Action: "deleted", Resource: "milestone", RefID: milestoneID})
	return nil
}
