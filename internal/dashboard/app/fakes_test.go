package app_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"daynote/internal/dashboard/domain/dayscope"
	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/repositories"
)

const (
	userID  = "user-1"
	otherID = "user-2"
)

// clock управляемые часы для Resolver.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock(t time.Time) *clock { return &clock{t: t} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func resolverAt(c *clock) *dayscope.Resolver {
	return dayscope.NewResolver(time.UTC, c.Now)
}

// memNotes хранилище заметок в памяти с той же семантикой владения, что и Postgres.
type memNotes struct {
	mu    sync.Mutex
	clock *clock
	seq   int
	notes map[string]entities.Note
}

func newMemNotes(c *clock) *memNotes {
	return &memNotes{clock: c, notes: map[string]entities.Note{}}
}

func (m *memNotes) ListCreatedBetween(_ context.Context, userID string, from, to time.Time) ([]*entities.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entities.Note, 0)
	for _, n := range m.notes {
		if n.UserID == userID && !n.CreatedAt.Before(from) && n.CreatedAt.Before(to) {
			out = append(out, &n)
		}
	}
	slices.SortFunc(out, func(a, b *entities.Note) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (m *memNotes) Create(_ context.Context, note *entities.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	note.ID = fmt.Sprintf("note-%d", m.seq)
	note.CreatedAt = m.clock.Now()
	note.UpdatedAt = note.CreatedAt
	m.notes[note.ID] = *note
	return nil
}

func (m *memNotes) Update(_ context.Context, note *entities.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.notes[note.ID]
	if !ok || stored.UserID != note.UserID {
		return repositories.ErrNotFound
	}
	stored.Title, stored.Description, stored.Content = note.Title, note.Description, note.Content
	stored.UpdatedAt = m.clock.Now()
	m.notes[note.ID] = stored

	note.CreatedAt, note.UpdatedAt = stored.CreatedAt, stored.UpdatedAt
	return nil
}

func (m *memNotes) Delete(_ context.Context, noteID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.notes[noteID]
	if !ok || stored.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(m.notes, noteID)
	return nil
}

func (m *memNotes) ListCreatedAt(_ context.Context, userID string) ([]time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]time.Time, 0)
	for _, n := range m.notes {
		if n.UserID == userID {
			out = append(out, n.CreatedAt)
		}
	}
	slices.SortFunc(out, time.Time.Compare)
	return out, nil
}

// memTodos агрегаты и слоты в памяти. EnsureForDay ведет себя как upsert.
type memTodos struct {
	mu          sync.Mutex
	seq         int
	todos       map[string]entities.Todo
	slots       []entities.TimeSlot
	ensureCalls int
	findCalls   int

	// findHook, если задан, вызывается в начале FindByDay.
	findHook func()
}

func newMemTodos() *memTodos {
	return &memTodos{todos: map[string]entities.Todo{}}
}

func (m *memTodos) FindByDay(ctx context.Context, userID, day string) (*entities.Todo, error) {
	if m.findHook != nil {
		m.findHook()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.findCalls++
	if t, ok := m.todos[userID+"|"+day]; ok {
		return &t, nil
	}
	return nil, nil
}

func (m *memTodos) EnsureForDay(_ context.Context, userID, day string) (*entities.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ensureCalls++
	key := userID + "|" + day
	if t, ok := m.todos[key]; ok {
		return &t, nil
	}
	m.seq++
	t := entities.Todo{ID: fmt.Sprintf("todo-%d", m.seq), UserID: userID, Day: day}
	m.todos[key] = t
	return &t, nil
}

func (m *memTodos) owner(todoID string) string {
	for _, t := range m.todos {
		if t.ID == todoID {
			return t.UserID
		}
	}
	return ""
}

func (m *memTodos) ListSlots(_ context.Context, todoID, userID string) ([]*entities.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entities.TimeSlot, 0)
	if m.owner(todoID) != userID {
		return out, nil
	}
	for _, s := range m.slots {
		if s.TodoID == todoID {
			out = append(out, &s)
		}
	}
	return out, nil
}

func (m *memTodos) AddSlot(_ context.Context, userID string, slot *entities.TimeSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.owner(slot.TodoID) != userID {
		return repositories.ErrNotFound
	}
	m.seq++
	slot.ID = fmt.Sprintf("slot-%d", m.seq)
	slot.Completed = false
	m.slots = append(m.slots, *slot)
	return nil
}

func (m *memTodos) SetSlotCompleted(_ context.Context, slotID, userID string, completed bool) (*entities.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.slots {
		if m.slots[i].ID == slotID && m.owner(m.slots[i].TodoID) == userID {
			m.slots[i].Completed = completed
			s := m.slots[i]
			return &s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memTodos) DeleteSlot(_ context.Context, slotID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.slots {
		if m.slots[i].ID == slotID && m.owner(m.slots[i].TodoID) == userID {
			m.slots = slices.Delete(m.slots, i, i+1)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) ListCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]*entities.Note, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entities.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	return m.Called(ctx, noteID, userID).Error(0)
}

func (m *mockNoteRepository) ListCreatedAt(ctx context.Context, userID string) ([]time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID string, profile entities.ProfileInput) error {
	return m.Called(ctx, userID, profile).Error(0)
}

func (m *mockUserRepository) SetNotesVisible(ctx context.Context, userID string, visible bool) error {
	return m.Called(ctx, userID, visible).Error(0)
}

func (m *mockUserRepository) SetActivityVisible(ctx context.Context, userID string, visible bool) error {
	return m.Called(ctx, userID, visible).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCache) Close() error {
	return m.Called().Error(0)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, userID, username string) (string, error) {
	args := m.Called(ctx, userID, username)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateAccessToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

// recordingMetrics запоминает вызовы ObserveWrite и ObserveCache.
type recordingMetrics struct {
	mu     sync.Mutex
	writes []string
	cache  []string
}

func (r *recordingMetrics) ObserveWrite(entity, op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.writes = append(r.writes, entity+"/"+op+"/"+result)
}

func (r *recordingMetrics) ObserveCache(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = append(r.cache, outcome)
}

func dayscopeIn(loc *time.Location) *dayscope.Resolver {
	return dayscope.NewResolver(loc, nil)
}
