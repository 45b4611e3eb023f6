package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"daynote/internal/dashboard/domain/entities"
)

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Register(ctx context.Context, in entities.RegisterInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

type mockNotes struct{ mock.Mock }

func (m *mockNotes) ListToday(ctx context.Context, userID string) ([]*entities.Note, error) {
	args := m.Called(ctx, userID)
	notes, _ := args.Get(0).([]*entities.Note)
	return notes, args.Error(1)
}

func (m *mockNotes) Create(ctx context.Context, userID string, in entities.NoteInput) (*entities.Note, error) {
	args := m.Called(ctx, userID, in)
	note, _ := args.Get(0).(*entities.Note)
	return note, args.Error(1)
}

func (m *mockNotes) Update(ctx context.Context, userID, noteID string, in entities.NoteInput) (*entities.Note, error) {
	args := m.Called(ctx, userID, noteID, in)
	note, _ := args.Get(0).(*entities.Note)
	return note, args.Error(1)
}

func (m *mockNotes) Delete(ctx context.Context, userID, noteID string) error {
	return m.Called(ctx, userID, noteID).Error(0)
}

type mockCalendar struct{ mock.Mock }

func (m *mockCalendar) DaysWithNotes(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	days, _ := args.Get(0).([]string)
	return days, args.Error(1)
}

type mockTodos struct{ mock.Mock }

func (m *mockTodos) GetOrCreateToday(ctx context.Context, userID string) (*entities.Todo, error) {
	args := m.Called(ctx, userID)
	todo, _ := args.Get(0).(*entities.Todo)
	return todo, args.Error(1)
}

func (m *mockTodos) ListSlots(ctx context.Context, userID string) (entities.Buckets, error) {
	args := m.Called(ctx, userID)
	buckets, _ := args.Get(0).(entities.Buckets)
	return buckets, args.Error(1)
}

func (m *mockTodos) AddSlot(ctx context.Context, userID, todoID string, in entities.SlotInput) (*entities.TimeSlot, error) {
	args := m.Called(ctx, userID, todoID, in)
	slot, _ := args.Get(0).(*entities.TimeSlot)
	return slot, args.Error(1)
}

func (m *mockTodos) ToggleSlot(ctx context.Context, userID, slotID string, current bool) (*entities.TimeSlot, error) {
	args := m.Called(ctx, userID, slotID, current)
	slot, _ := args.Get(0).(*entities.TimeSlot)
	return slot, args.Error(1)
}

func (m *mockTodos) DeleteSlot(ctx context.Context, userID, slotID string) error {
	return m.Called(ctx, userID, slotID).Error(0)
}

type mockProfile struct{ mock.Mock }

func (m *mockProfile) Get(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockProfile) Level(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockProfile) Update(ctx context.Context, userID string, in entities.ProfileInput) error {
	return m.Called(ctx, userID, in).Error(0)
}

func (m *mockProfile) SetNotesVisibility(ctx context.Context, userID string, visible bool) error {
	return m.Called(ctx, userID, visible).Error(0)
}

func (m *mockProfile) SetActivityVisibility(ctx context.Context, userID string, visible bool) error {
	return m.Called(ctx, userID, visible).Error(0)
}

type mockSummary struct{ mock.Mock }

func (m *mockSummary) Today(ctx context.Context, userID string) (*entities.Summary, error) {
	args := m.Called(ctx, userID)
	summary, _ := args.Get(0).(*entities.Summary)
	return summary, args.Error(1)
}
