package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func milestoneSet(completed ...bool) []*Milestone {
	ms := make([]*Milestone, len(completed))
	for i, done := range completed {
		ms[i] = &Milestone{Position: i + 1, IsCompleted: done}
	}
	return ms
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name        string
		milestones  []*Milestone
		percent     int
		isCompleted bool
	}{
		{"no milestones", nil, 0, false},
		{"empty slice", milestoneSet(), 0, false},
		{"none done", milestoneSet(false, false, false), 0, false},
		{"one of three", milestoneSet(true, false, false), 33, false},
		{"two of three", milestoneSet(true, true, false), 67, false},
		{"half", milestoneSet(true, false), 50, false},
		{"all done", milestoneSet(true, true, true), 100, true},
		{"single done", milestoneSet(true), 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := ComputeProgress(tt.milestones)
			assert.Equal(t, tt.percent, progress.Percent)
			assert.Equal(t, tt.isCompleted, progress.IsCompleted)
			assert.Equal(t, len(tt.milestones), progress.Total)
		})
	}
}

func TestComputeProgressCounts(t *testing.T) {
	progress := ComputeProgress(milestoneSet(true, false, true, false, false))

	assert.Equal(t, 5, progress.Total)
	assert.Equal(t, 2, progress.Completed)
	assert.Equal(t, 40, progress.Percent)
	assert.False(t, progress.IsCompleted)
}
