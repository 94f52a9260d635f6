package serviceimpl

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planora/domain/errs"
)

func TestAddMilestonePositions(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc := NewRoadmapService(repo, &fakeActivity{})
	ctx := context.Background()
	userID := uuid.New()

	roadmap, err := svc.CreateRoadmap(ctx, userID, "Learn Go")
	require.NoError(t, err)

	first, err := svc.AddMilestone(ctx, userID, roadmap.ID, "read the docs")
	require.NoError(t, err)
	second, err := svc.AddMilestone(ctx, userID, roadmap.ID, "write a server")
	require.NoError(t, err)
	third, err := svc.AddMilestone(ctx, userID, roadmap.ID, "ship it")
	require.NoError(t, err)

	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 2, second.Position)
	assert.Equal(t, 3, third.Position)
}

func TestAddMilestoneConcurrentPositionsDistinct(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc := NewRoadmapService(repo, &fakeActivity{})
	ctx := context.Background()
	userID := uuid.New()

	roadmap, err := svc.CreateRoadmap(ctx, userID, "Learn Go")
	require.NoError(t, err)

	// add พร้อมกัน 8 ตัว - position ต้องเป็น 1..8 ครบไม่ซ้ำ
	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.AddMilestone(ctx, userID, roadmap.ID, fmt.Sprintf("step %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	milestones, err := repo.ListMilestones(ctx, roadmap.ID)
	require.NoError(t, err)
	require.Len(t, milestones, n)

	seen := make(map[int]bool)
	for _, m := range milestones {
		assert.False(t, seen[m.Position], "duplicate position %d", m.Position)
		seen[m.Position] = true
		assert.GreaterOrEqual(t, m.Position, 1)
		assert.LessOrEqual(t, m.Position, n)
	}
}

func TestToggleMilestoneRoundTrip(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc := NewRoadmapService(repo, &fakeActivity{})
	ctx := context.Background()
	userID := uuid.New()

	roadmap, err := svc.CreateRoadmap(ctx, userID, "Roadmap")
	require.NoError(t, err)
	milestone, err := svc.AddMilestone(ctx, userID, roadmap.ID, "step one")
	require.NoError(t, err)
	require.False(t, milestone.IsCompleted)

	require.NoError(t, svc.ToggleMilestone(ctx, userID, milestone.ID, roadmap.ID))
	detail, err := svc.GetRoadmap(ctx, userID, roadmap.ID)
	require.NoError(t, err)
	assert.True(t, detail.Milestones[0].IsCompleted)
	assert.Equal(t, 100, detail.Progress.Percent)
	assert.True(t, detail.Progress.IsCompleted)

	// toggle ครั้งที่สองต้องกลับมาค่าเดิม
	require.NoError(t, svc.ToggleMilestone(ctx, userID, milestone.ID, roadmap.ID))
	detail, err = svc.GetRoadmap(ctx, userID, roadmap.ID)
	require.NoError(t, err)
	assert.False(t, detail.Milestones[0].IsCompleted)
	assert.Equal(t, 0, detail.Progress.Percent)
}

func TestSetMilestoneCompletionIdempotent(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc := NewRoadmapService(repo, &fakeActivity{})
	ctx := context.Background()
	userID := uuid.New()

	roadmap, err := svc.CreateRoadmap(ctx, userID, "Roadmap")
	require.NoError(t, err)
	milestone, err := svc.AddMilestone(ctx, userID, roadmap.ID, "step")
	require.NoError(t, err)

	require.NoError(t, svc.SetMilestoneCompletion(ctx, userID, milestone.ID, roadmap.ID, true))
	require.NoError(t, svc.SetMilestoneCompletion(ctx, userID, milestone.ID, roadmap.ID, true))

	detail, err := svc.GetRoadmap(ctx, userID, roadmap.ID)
	require.NoError(t, err)
	assert.True(t, detail.Milestones[0].IsCompleted)
}

func TestMilestoneOwnershipEnforced(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc := NewRoadmapService(repo, &fakeActivity{})
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	roadmap, err := svc.CreateRoadmap(ctx, owner, "Private")
	require.NoError(t, err)
	milestone, err := svc.AddMilestone(ctx, owner, roadmap.ID, "secret step")
	require.NoError(t, err)

	// ทุก milestone operation ต้องตรวจ ownership ผ่าน roadmap แม่
	assert.ErrorIs(t, svc.ToggleMilestone(ctx, intruder, milestone.ID, roadmap.ID), errs.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteMilestone(ctx, intruder, milestone.ID, roadmap.ID), errs.ErrNotFound)
	assert.ErrorIs(t, svc.SetMilestoneCompletion(ctx, intruder, milestone.ID, roadmap.ID, true), errs.ErrNotFound)

	_, err = svc.AddMilestone(ctx, intruder, roadmap.ID, "injected")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = svc.GetRoadmap(ctx, intruder, roadmap.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// ของ owner ยังอยู่ครบ
	detail, err := svc.GetRoadmap(ctx, owner, roadmap.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Milestones, 1)
	assert.False(t, detail.Milestones[0].IsCompleted)
}

func TestDeleteRoadmapCascade(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc := NewRoadmapService(repo, &fakeActivity{})
	ctx := context.Background()
	userID := uuid.New()

	roadmap, err := svc.CreateRoadmap(ctx, userID, "Doomed")
	require.NoError(t, err)
	_, err = svc.AddMilestone(ctx, userID, roadmap.ID, "one")
	require.NoError(t, err)
	_, err = svc.AddMilestone(ctx, userID, roadmap.ID, "two")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoadmap(ctx, userID, roadmap.ID))

	_, err = svc.GetRoadmap(ctx, userID, roadmap.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// milestones ต้องหายไปด้วย ไม่เหลือ orphan
	milestones, err := repo.ListMilestones(ctx, roadmap.ID)
	require.NoError(t, err)
	assert.Empty(t, milestones)
}

func TestCreateRoadmapEmptyTitle(t *testing.T) {
	svc := NewRoadmapService(newFakeRoadmapRepo(), &fakeActivity{})

	_, err := svc.CreateRoadmap(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, errs.ErrEmptyContent)
}

func TestListRoadmapsComputesProgress(t *testing.T) {
	repo := newFakeRoadmapRepo()
	svc := NewRoadmapService(repo, &fakeActivity{})
	ctx := context.Background()
	userID := uuid.New()

	empty, err := svc.CreateRoadmap(ctx, userID, "Empty")
	require.NoError(t, err)
	busy, err := svc.CreateRoadmap(ctx, userID, "Busy")
	require.NoError(t, err)

	m1, err := svc.AddMilestone(ctx, userID, busy.ID, "a")
	require.NoError(t, err)
	_, err = svc.AddMilestone(ctx, userID, busy.ID, "b")
	require.NoError(t, err)
	require.NoError(t, svc.ToggleMilestone(ctx, userID, m1.ID, busy.ID))

	overviews, err := svc.ListRoadmaps(ctx, userID)
	require.NoError(t, err)
	require.Len(t, overviews, 2)

	byID := map[uuid.UUID]int{}
	for _, ov := range overviews {
		byID[ov.Roadmap.ID] = ov.Progress.Percent
	}
	assert.Equal(t, 0, byID[empty.ID])
	assert.Equal(t, 50, byID[busy.ID])
}
