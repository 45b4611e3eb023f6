package view

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"daynote/internal/dashboard/app"
	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/api"
	"daynote/pkg/logger"
)

// PageSize заметок на странице.
const PageSize = 3

// NotesView список заметок дня с постраничным просмотром.
type NotesView struct {
	loadState

	src    api.NoteUseCase
	userID string
	notes  []*entities.Note
	page   int
}

// NewNotesView создает view для пользователя userID.
func NewNotesView(src api.NoteUseCase, userID string) *NotesView {
	return &NotesView{src: src, userID: userID, notes: []*entities.Note{}}
}

// Load перечитывает заметки дня. При ошибке прежний список остается.
func (v *NotesView) Load(ctx context.Context) error {
	v.mu.Lock()
	seq, ok := v.begin()
	v.mu.Unlock()
	if !ok {
		return ErrClosed
	}

	notes, err := v.src.ListToday(ctx, v.userID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(seq) {
		logger.Log(ctx).Debug(ctx, "dropping stale notes load", zap.Uint64("seq", seq))
		return nil
	}
	v.loading = false
	if err != nil {
		v.err = err
		return err
	}
	v.notes = notes
	v.err = nil
	v.page = clampPage(v.page, len(v.notes))
	return nil
}

// Save создает заметку при пустом noteID, иначе обновляет ее.
// Ошибка записи сохраняется в Err и возвращается вызывающему.
func (v *NotesView) Save(ctx context.Context, noteID string, in entities.NoteInput) (*entities.Note, error) {
	if v.isClosed() {
		return nil, ErrClosed
	}

	var (
		note *entities.Note
		err  error
	)
	if noteID == "" {
		note, err = v.src.Create(ctx, v.userID, in)
	} else {
		note, err = v.src.Update(ctx, v.userID, noteID, in)
	}
	if err != nil {
		v.fail(err)
		return nil, err
	}

	v.refetch(ctx)
	return note, nil
}

// Delete удаляет заметку и перечитывает список. Уже удаленная заметка не ошибка.
func (v *NotesView) Delete(ctx context.Context, noteID string) error {
	if v.isClosed() {
		return ErrClosed
	}

	if err := v.src.Delete(ctx, v.userID, noteID); err != nil && !errors.Is(err, app.ErrNotFound) {
		v.fail(err)
		return err
	}

	v.refetch(ctx)
	return nil
}

func (v *NotesView) refetch(ctx context.Context) {
	if err := v.Load(ctx); err != nil && !errors.Is(err, ErrClosed) {
		logger.Log(ctx).Warn(ctx, "refetch after write failed", zap.Error(err))
	}
}

// Next переходит на следующую страницу; на последней ничего не делает.
func (v *NotesView) Next() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = clampPage(v.page+1, len(v.notes))
}

// Prev переходит на предыдущую страницу; на первой ничего не делает.
func (v *NotesView) Prev() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = clampPage(v.page-1, len(v.notes))
}

// Page номер текущей страницы с нуля.
func (v *NotesView) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// PageCount число страниц; для пустого списка 0.
func (v *NotesView) PageCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return pageCount(len(v.notes))
}

// Visible заметки текущей страницы.
func (v *NotesView) Visible() []*entities.Note {
	v.mu.Lock()
	defer v.mu.Unlock()

	from := v.page * PageSize
	to := min(from+PageSize, len(v.notes))
	if from >= to {
		return []*entities.Note{}
	}
	out := make([]*entities.Note, to-from)
	copy(out, v.notes[from:to])
	return out
}

// Notes все заметки дня.
func (v *NotesView) Notes() []*entities.Note {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]*entities.Note, len(v.notes))
	copy(out, v.notes)
	return out
}

func pageCount(n int) int {
	return (n + PageSize - 1) / PageSize
}

func clampPage(page, n int) int {
	last := max(pageCount(n)-1, 0)
	return max(0, min(page, last))
}
