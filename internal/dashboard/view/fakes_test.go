package view_test

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"daynote/internal/dashboard/app"
	"daynote/internal/dashboard/domain/entities"
)

const userID = "user-1"

// fakeNotes источник заметок с управляемыми ошибками и блокировкой чтения.
type fakeNotes struct {
	mu        sync.Mutex
	seq       int
	notes     []*entities.Note
	listCalls int
	listErr   error
	writeErr  error
	deleteErr error

	// block, если задан, вызывается в начале ListToday с номером вызова.
	block func(call int)
}

func (f *fakeNotes) seed(n int) {
	base := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	for i := range n {
		f.seq++
		f.notes = append(f.notes, &entities.Note{
			ID:        fmt.Sprintf("n%d", f.seq),
			UserID:    userID,
			Title:     fmt.Sprintf("note %d", f.seq),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func (f *fakeNotes) ListToday(_ context.Context, _ string) ([]*entities.Note, error) {
	f.mu.Lock()
	f.listCalls++
	call, block := f.listCalls, f.block
	f.mu.Unlock()

	if block != nil {
		block(call)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := slices.Clone(f.notes)
	slices.SortFunc(out, func(a, b *entities.Note) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (f *fakeNotes) Create(_ context.Context, userID string, in entities.NoteInput) (*entities.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.seq++
	n := &entities.Note{
		ID: fmt.Sprintf("n%d", f.seq), UserID: userID, Title: in.Title, Content: in.Content,
		CreatedAt: time.Date(2026, 3, 14, 9, f.seq, 0, 0, time.UTC),
	}
	f.notes = append(f.notes, n)
	return n, nil
}

func (f *fakeNotes) Update(_ context.Context, _ string, noteID string, in entities.NoteInput) (*entities.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	for _, n := range f.notes {
		if n.ID == noteID {
			n.Title, n.Content = in.Title, in.Content
			return n, nil
		}
	}
	return nil, app.ErrNotFound
}

func (f *fakeNotes) Delete(_ context.Context, _ string, noteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, n := range f.notes {
		if n.ID == noteID {
			f.notes = slices.Delete(f.notes, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("delete %s: %w", noteID, app.ErrNotFound)
}

// fakeTodos источник задач: один агрегат на день, день меняет nextDay.
type fakeTodos struct {
	mu         sync.Mutex
	seq        int
	day        int
	slots      []*entities.TimeSlot
	getCalls   int
	addErr     error
	getErr     error
	toggleArgs []bool
}

func (f *fakeTodos) todayID() string {
	return fmt.Sprintf("todo-%d", f.day+1)
}

// nextDay имитирует наступление локальной полуночи.
func (f *fakeTodos) nextDay() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.day++
}

func (f *fakeTodos) GetOrCreateToday(_ context.Context, _ string) (*entities.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &entities.Todo{ID: f.todayID(), Slots: f.copySlots()}, nil
}

func (f *fakeTodos) copySlots() []*entities.TimeSlot {
	today := f.todayID()
	out := make([]*entities.TimeSlot, 0, len(f.slots))
	for _, s := range f.slots {
		if s.TodoID != today {
			continue
		}
		c := *s
		out = append(out, &c)
	}
	return out
}

func (f *fakeTodos) ListSlots(_ context.Context, _ string) (entities.Buckets, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return entities.NewBuckets(f.copySlots()), nil
}

func (f *fakeTodos) AddSlot(_ context.Context, _ string, todoID string, in entities.SlotInput) (*entities.TimeSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.seq++
	s := &entities.TimeSlot{ID: fmt.Sprintf("s%d", f.seq), TodoID: todoID, Period: in.Period, Text: in.Text}
	f.slots = append(f.slots, s)
	c := *s
	return &c, nil
}

func (f *fakeTodos) ToggleSlot(_ context.Context, _ string, slotID string, current bool) (*entities.TimeSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toggleArgs = append(f.toggleArgs, current)
	for _, s := range f.slots {
		if s.ID == slotID {
			s.Completed = !current
			c := *s
			return &c, nil
		}
	}
	return nil, app.ErrNotFound
}

func (f *fakeTodos) DeleteSlot(_ context.Context, _ string, slotID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.slots {
		if s.ID == slotID {
			f.slots = slices.Delete(f.slots, i, i+1)
			return nil
		}
	}
	return app.ErrNotFound
}
