package service

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/repository"

	"github.com/google/uuid"
)

type fixedClock struct{ today entity.Date }

func (c fixedClock) Today() entity.Date { return c.today }

func inRange(d entity.Date, r entity.DateRange) bool {
	if r.Start != nil && d.Before(*r.Start) {
		return false
	}
	if r.End != nil && d.After(*r.End) {
		return false
	}
	return true
}

type memUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[uuid.UUID]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok && u.IsActive {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email && u.IsActive {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) ListActiveIDs(_ context.Context) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uuid.UUID
	for id, u := range m.users {
		if u.IsActive {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	return ids, nil
}

type memHabits struct {
	habits map[uuid.UUID]*entity.Habit
	order  []uuid.UUID
}

func newMemHabits() *memHabits { return &memHabits{habits: map[uuid.UUID]*entity.Habit{}} }

func (m *memHabits) Create(_ context.Context, h *entity.Habit) error {
	cp := *h
	m.habits[h.ID] = &cp
	m.order = append(m.order, h.ID)
	return nil
}

func (m *memHabits) GetByIDAndUserID(_ context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	h, ok := m.habits[habitID]
	if !ok || h.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *memHabits) GetByUserID(_ context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Habit, error) {
	var out []*entity.Habit
	for _, id := range m.order {
		h := m.habits[id]
		if h.UserID != userID || (activeOnly && !h.IsActive) {
			continue
		}
		cp := *h
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memHabits) Update(_ context.Context, h *entity.Habit) error {
	if _, ok := m.habits[h.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *h
	m.habits[h.ID] = &cp
	return nil
}

func (m *memHabits) Delete(_ context.Context, habitID, userID uuid.UUID) error {
	h, ok := m.habits[habitID]
	if !ok || h.UserID != userID {
		return repository.ErrNotFound
	}
	h.IsActive = false
	return nil
}

type memCheckIns struct {
	checkIns []*entity.CheckIn
}

func (m *memCheckIns) Upsert(_ context.Context, c *entity.CheckIn) error {
	for _, existing := range m.checkIns {
		if existing.UserID == c.UserID && existing.HabitID == c.HabitID && existing.Date == c.Date {
			existing.Completed = c.Completed
			existing.Notes = c.Notes
			existing.UpdatedAt = c.UpdatedAt
			c.ID = existing.ID
			c.CreatedAt = existing.CreatedAt
			return nil
		}
	}
	cp := *c
	m.checkIns = append(m.checkIns, &cp)
	return nil
}

func (m *memCheckIns) GetByIDAndUserID(_ context.Context, id, userID uuid.UUID) (*entity.CheckIn, error) {
	for _, c := range m.checkIns {
		if c.ID == id && c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memCheckIns) List(_ context.Context, userID uuid.UUID, f entity.CheckInFilter) ([]*entity.CheckIn, error) {
	var out []*entity.CheckIn
	for _, c := range m.checkIns {
		if c.UserID != userID || (f.HabitID != nil && c.HabitID != *f.HabitID) {
			continue
		}
		if !inRange(c.Date, entity.DateRange{Start: f.StartDate, End: f.EndDate}) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	slices.SortStableFunc(out, func(a, b *entity.CheckIn) int { return b.Date.Compare(a.Date) })
	return out, nil
}

func (m *memCheckIns) Update(_ context.Context, c *entity.CheckIn) error {
	for i, existing := range m.checkIns {
		if existing.ID == c.ID {
			cp := *c
			m.checkIns[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

type memMoods struct {
	entries []*entity.MoodEntry
	// listed lets a test inject corrupt history
	listed []*entity.MoodEntry
}

func (m *memMoods) Create(_ context.Context, e *entity.MoodEntry) error {
	for _, existing := range m.entries {
		if existing.UserID == e.UserID && existing.Date == e.Date {
			return repository.ErrConflict
		}
	}
	cp := *e
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memMoods) GetByIDAndUserID(_ context.Context, id, userID uuid.UUID) (*entity.MoodEntry, error) {
	for _, e := range m.entries {
		if e.ID == id && e.UserID == userID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memMoods) List(_ context.Context, userID uuid.UUID, r entity.DateRange) ([]*entity.MoodEntry, error) {
	if m.listed != nil {
		return m.listed, nil
	}
	var out []*entity.MoodEntry
	for _, e := range m.entries {
		if e.UserID == userID && inRange(e.Date, r) {
			cp := *e
			out = append(out, &cp)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.MoodEntry) int { return b.Date.Compare(a.Date) })
	return out, nil
}

func (m *memMoods) Update(_ context.Context, e *entity.MoodEntry) error {
	for i, existing := range m.entries {
		if existing.ID == e.ID {
			cp := *e
			m.entries[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memMoods) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i, e := range m.entries {
		if e.ID == id && e.UserID == userID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memJournals struct {
	entries []*entity.JournalEntry
}

func (m *memJournals) Create(_ context.Context, e *entity.JournalEntry) error {
	for _, existing := range m.entries {
		if existing.UserID == e.UserID && existing.Date == e.Date {
			return repository.ErrConflict
		}
	}
	cp := *e
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memJournals) GetByIDAndUserID(_ context.Context, id, userID uuid.UUID) (*entity.JournalEntry, error) {
	for _, e := range m.entries {
		if e.ID == id && e.UserID == userID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memJournals) List(_ context.Context, userID uuid.UUID, r entity.DateRange) ([]*entity.JournalEntry, error) {
	var out []*entity.JournalEntry
	for _, e := range m.entries {
		if e.UserID == userID && inRange(e.Date, r) {
			cp := *e
			out = append(out, &cp)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.JournalEntry) int { return b.Date.Compare(a.Date) })
	return out, nil
}

func (m *memJournals) Recent(ctx context.Context, userID uuid.UUID, before entity.Date, limit int) ([]*entity.JournalEntry, error) {
	end := before.AddDays(-1)
	out, _ := m.List(ctx, userID, entity.DateRange{End: &end})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memJournals) Update(_ context.Context, e *entity.JournalEntry) error {
	for i, existing := range m.entries {
		if existing.ID == e.ID {
			cp := *e
			m.entries[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memJournals) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i, e := range m.entries {
		if e.ID == id && e.UserID == userID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memGoals struct {
	goals []*entity.Goal
}

func (m *memGoals) Create(_ context.Context, g *entity.Goal) error {
	cp := *g
	m.goals = append(m.goals, &cp)
	return nil
}

func (m *memGoals) GetByIDAndUserID(_ context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	for _, g := range m.goals {
		if g.ID == id && g.UserID == userID {
			cp := *g
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memGoals) List(_ context.Context, userID uuid.UUID, completed *bool) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range m.goals {
		if g.UserID != userID || (completed != nil && g.IsCompleted != *completed) {
			continue
		}
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memGoals) Update(_ context.Context, g *entity.Goal) error {
	for i, existing := range m.goals {
		if existing.ID == g.ID {
			cp := *g
			m.goals[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memGoals) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i, g := range m.goals {
		if g.ID == id && g.UserID == userID {
			m.goals = append(m.goals[:i], m.goals[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type publishedEvent struct {
	eventType string
	userID    uuid.UUID
	payload   map[string]any
}

type recordingPublisher struct {
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, userID uuid.UUID, payload map[string]any) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{eventType, userID, payload})
	return nil
}

func (p *recordingPublisher) ofType(eventType string) []publishedEvent {
	var out []publishedEvent
	for _, e := range p.events {
		if e.eventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

// memCache stores values as-is under a per-user version, like the Redis cache.
// beforeSet runs at the start of every Set.
type memCache struct {
	versions    map[uuid.UUID]int64
	values      map[string]any
	invalidated int
	gets, sets  int
	beforeSet   func()
}

func newMemCache() *memCache {
	return &memCache{versions: map[uuid.UUID]int64{}, values: map[string]any{}}
}

func memKey(userID uuid.UUID, version int64, key string) string {
	return fmt.Sprintf("%s:v%d:%s", userID, version, key)
}

func (c *memCache) Get(_ context.Context, userID uuid.UUID, key string, dst any) (int64, bool, error) {
	c.gets++
	version := c.versions[userID]
	v, ok := c.values[memKey(userID, version, key)]
	if !ok {
		return version, false, nil
	}
	assign(dst, v)
	return version, true, nil
}

func (c *memCache) Set(_ context.Context, userID uuid.UUID, version int64, key string, value any) error {
	if c.beforeSet != nil {
		c.beforeSet()
	}
	c.sets++
	c.values[memKey(userID, version, key)] = value
	return nil
}

func (c *memCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	c.invalidated++
	c.versions[userID]++
	return nil
}

func assign(dst, v any) {
	reflect.ValueOf(dst).Elem().Set(reflect.ValueOf(v))
}

type stubCompanion struct {
	calls   int
	lastCtx []*entity.JournalEntry
	err     error
}

func (c *stubCompanion) Respond(_ context.Context, content string, moodBefore *int, previous []*entity.JournalEntry) (*entity.CompanionReply, error) {
	c.calls++
	c.lastCtx = previous
	if c.err != nil {
		return nil, c.err
	}
	var after *int
	if moodBefore != nil {
		v := *moodBefore + 1
		after = &v
	}
	return &entity.CompanionReply{
		Response:    "reply to: " + content,
		MoodAfter:   after,
		Suggestions: []string{"Take a short walk outside"},
	}, nil
}

func ptr[T any](v T) *T { return &v }
