package serviceimpl

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"planora/domain/errs"
	"planora/domain/models"
	"planora/domain/ports"
)

// fakeActivity เก็บ event ที่ publish ไว้ให้ test ตรวจ
type fakeActivity struct {
	mu     sync.Mutex
	events []ports.ActivityEvent
}

func (f *fakeActivity) Publish(ctx context.Context, event ports.ActivityEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

// fakeUserRepo จำลอง unique constraint บน username
type fakeUserRepo struct {
	users map[string]*models.User // key: username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, exists := f.users[user.Username]; exists {
		return errs.ErrConflict
	}
	copy := *user
	f.users[user.Username] = &copy
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copy := *user
			return &copy, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

// fakeTaskRepo - owner scoping เหมือนของจริง: id คนอื่นกับ id ที่ไม่มีให้ผลเดียวกัน
type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
}

func (f *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	copy := *task
	f.tasks[task.ID] = &copy
	return nil
}

func (f *fakeTaskRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var out []*models.Task
	for _, task := range f.tasks {
		if task.UserID == userID {
			copy := *task
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTaskRepo) ListScheduled(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	all, _ := f.ListByUser(ctx, userID)
	var out []*models.Task
	for _, task := range all {
		if task.IsScheduled() {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListDueToday(ctx context.Context, userID uuid.UUID, now time.Time) ([]*models.Task, error) {
	all, _ := f.ListByUser(ctx, userID)
	var out []*models.Task
	for _, task := range all {
		if task.StartTime == nil {
			continue
		}
		y1, m1, d1 := task.StartTime.Date()
		y2, m2, d2 := now.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListUpcoming(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*models.Task, error) {
	all, _ := f.ListByUser(ctx, userID)
	var out []*models.Task
	for _, task := range all {
		if task.StartTime != nil && task.StartTime.After(now) {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(*out[j].StartTime) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTaskRepo) UpdateStatus(ctx context.Context, taskID, userID uuid.UUID, status string) error {
	task, ok := f.tasks[taskID]
	if !ok || task.UserID != userID {
		return errs.ErrNotFound
	}
	task.Status = status
	return nil
}

func (f *fakeTaskRepo) Reschedule(ctx context.Context, taskID, userID uuid.UUID, start, end *time.Time) error {
	task, ok := f.tasks[taskID]
	if !ok || task.UserID != userID {
		return errs.ErrNotFound
	}
	task.StartTime = start
	task.EndTime = end
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, taskID, userID uuid.UUID) error {
	task, ok := f.tasks[taskID]
	if !ok || task.UserID != userID {
		return errs.ErrNotFound
	}
	delete(f.tasks, taskID)
	return nil
}

// fakeRoadmapRepo - position นับจาก milestones ที่เหลืออยู่ เหมือน count+1 ของจริง
// mu เล่นบท row lock ของจริง: add พร้อมกันต้องต่อคิว
type fakeRoadmapRepo struct {
	mu         sync.Mutex
	roadmaps   map[uuid.UUID]*models.Roadmap
	milestones map[uuid.UUID]*models.Milestone
}

func newFakeRoadmapRepo() *fakeRoadmapRepo {
	return &fakeRoadmapRepo{
		roadmaps:   make(map[uuid.UUID]*models.Roadmap),
		milestones: make(map[uuid.UUID]*models.Milestone),
	}
}

func (f *fakeRoadmapRepo) Create(ctx context.Context, roadmap *models.Roadmap) error {
	copy := *roadmap
	f.roadmaps[roadmap.ID] = &copy
	return nil
}

func (f *fakeRoadmapRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Roadmap, error) {
	var out []*models.Roadmap
	for _, roadmap := range f.roadmaps {
		if roadmap.UserID == userID {
			copy := *roadmap
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRoadmapRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Roadmap, error) {
	roadmap, ok := f.roadmaps[id]
	if !ok || roadmap.UserID != userID {
		return nil, errs.ErrNotFound
	}
	copy := *roadmap
	return &copy, nil
}

func (f *fakeRoadmapRepo) DeleteCascade(ctx context.Context, id, userID uuid.UUID) error {
	roadmap, ok := f.roadmaps[id]
	if !ok || roadmap.UserID != userID {
		return errs.ErrNotFound
	}
	for mid, m := range f.milestones {
		if m.RoadmapID == id {
			delete(f.milestones, mid)
		}
	}
	delete(f.roadmaps, id)
	return nil
}

func (f *fakeRoadmapRepo) ListMilestones(ctx context.Context, roadmapID uuid.UUID) ([]*models.Milestone, error) {
	var out []*models.Milestone
	for _, m := range f.milestones {
		if m.RoadmapID == roadmapID {
			copy := *m
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeRoadmapRepo) AddMilestone(ctx context.Context, roadmapID uuid.UUID, content string) (*models.Milestone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, m := range f.milestones {
		if m.RoadmapID == roadmapID {
			count++
		}
	}

	milestone := &models.Milestone{
		ID:        uuid.New(),
		RoadmapID: roadmapID,
		Content:   content,
		Position:  count + 1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.milestones[milestone.ID] = milestone

	copy := *milestone
	return &copy, nil
}

func (f *fakeRoadmapRepo) ToggleMilestone(ctx context.Context, milestoneID, roadmapID uuid.UUID) error {
	m, ok := f.milestones[milestoneID]
	if !ok || m.RoadmapID != roadmapID {
		return errs.ErrNotFound
	}
	m.IsCompleted = !m.IsCompleted
	return nil
}

func (f *fakeRoadmapRepo) SetMilestoneCompletion(ctx context.Context, milestoneID, roadmapID uuid.UUID, completed bool) error {
	m, ok := f.milestones[milestoneID]
	if !ok || m.RoadmapID != roadmapID {
		return errs.ErrNotFound
	}
	m.IsCompleted = completed
	return nil
}

func (f *fakeRoadmapRepo) DeleteMilestone(ctx context.Context, milestoneID, roadmapID uuid.UUID) error {
	m, ok := f.milestones[milestoneID]
	if !ok || m.RoadmapID != roadmapID {
		return errs.ErrNotFound
	}
	delete(f.milestones, milestoneID)
	return nil
}

// fakeNoteRepo
type fakeNoteRepo struct {
	notes map[uuid.UUID]*models.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uuid.UUID]*models.Note)}
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *models.Note) error {
	copy := *note
	f.notes[note.ID] = &copy
	return nil
}

func (f *fakeNoteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Note, error) {
	var out []*models.Note
	for _, note := range f.notes {
		if note.UserID == userID {
			copy := *note
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeNoteRepo) Update(ctx context.Context, noteID, userID uuid.UUID, note *models.Note) error {
	existing, ok := f.notes[noteID]
	if !ok || existing.UserID != userID {
		return errs.ErrNotFound
	}
	existing.Title = note.Title
	existing.Content = note.Content
	existing.Color = note.Color
	existing.PositionX = note.PositionX
	existing.PositionY = note.PositionY
	return nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, noteID, userID uuid.UUID) error {
	existing, ok := f.notes[noteID]
	if !ok || existing.UserID != userID {
		return errs.ErrNotFound
	}
	delete(f.notes, noteID)
	return nil
}

// fakeAssistant จำ prompt ล่าสุดไว้ให้ test ตรวจเนื้อหา
type fakeAssistant struct {
	lastPrompt string
	reply      string
	err        error
}

func (f *fakeAssistant) GenerateReply(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeAssistant) IsConfigured() bool {
	return true
}
