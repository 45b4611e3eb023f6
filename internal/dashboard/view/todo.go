package view

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"daynote/internal/dashboard/app"
	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/api"
	"daynote/pkg/logger"
)

// TodoView задачи дня, выдвижная панель периода и черновик новой задачи.
type TodoView struct {
	loadState

	src     api.TodoUseCase
	userID  string
	todoID  string
	buckets entities.Buckets
	active  entities.Period
	drawer  bool
	draft   string
}

// NewTodoView создает view для пользователя userID.
func NewTodoView(src api.TodoUseCase, userID string) *TodoView {
	return &TodoView{
		src:     src,
		userID:  userID,
		buckets: entities.NewBuckets(nil),
		active:  entities.PeriodMorning,
	}
}

// Load получает агрегат текущего дня и его задачи. Каждая загрузка заново
// определяет день, поэтому после полуночи view переходит на новый агрегат.
// Без пользователя view остается пустым.
func (v *TodoView) Load(ctx context.Context) error {
	v.mu.Lock()
	seq, ok := v.begin()
	v.mu.Unlock()
	if !ok {
		return ErrClosed
	}

	if v.userID == "" {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.current(seq) {
			v.loading = false
			v.err = nil
			v.todoID = ""
			v.buckets = entities.NewBuckets(nil)
		}
		return nil
	}

	todo, err := v.src.GetOrCreateToday(ctx, v.userID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(seq) {
		logger.Log(ctx).Debug(ctx, "dropping stale todo load", zap.Uint64("seq", seq))
		return nil
	}
	v.loading = false
	if err != nil {
		v.err = err
		return err
	}
	v.todoID = todo.ID
	v.buckets = entities.NewBuckets(todo.Slots)
	v.err = nil
	return nil
}

// Refresh перечитывает агрегат дня, вызывается после каждой мутации.
func (v *TodoView) Refresh(ctx context.Context) error {
	return v.Load(ctx)
}

// Open открывает панель периода. Ввода-вывода нет.
func (v *TodoView) Open(p entities.Period) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", entities.ErrUnknownPeriod, int(p))
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active = p
	v.drawer = true
	return nil
}

// CloseDrawer закрывает панель, черновик сохраняется.
func (v *TodoView) CloseDrawer() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.drawer = false
}

// SetDraft запоминает текст новой задачи.
func (v *TodoView) SetDraft(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft = text
}

// AddDraft добавляет черновик в активный период агрегата, актуального на момент записи.
// Пустой черновик или незагруженный view дают (nil, nil). При ошибке черновик и панель остаются.
func (v *TodoView) AddDraft(ctx context.Context) (*entities.TimeSlot, error) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil, ErrClosed
	}
	text := strings.TrimSpace(v.draft)
	loaded, period := v.todoID != "", v.active
	v.mu.Unlock()

	if text == "" || !loaded {
		return nil, nil
	}

	today, err := v.src.GetOrCreateToday(ctx, v.userID)
	if err != nil {
		v.fail(err)
		return nil, err
	}

	slot, err := v.src.AddSlot(ctx, v.userID, today.ID, entities.SlotInput{Period: period, Text: text})
	if err != nil {
		v.fail(err)
		return nil, err
	}

	v.mu.Lock()
	v.draft = ""
	v.mu.Unlock()

	v.refetch(ctx)
	return slot, nil
}

// Toggle переключает задачу, передавая ее последнее известное состояние.
func (v *TodoView) Toggle(ctx context.Context, slotID string) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	slot, ok := v.buckets.Find(slotID)
	var current bool
	if ok {
		current = slot.Completed
	}
	v.mu.Unlock()

	if !ok {
		return fmt.Errorf("slot %s: %w", slotID, app.ErrNotFound)
	}

	if _, err := v.src.ToggleSlot(ctx, v.userID, slotID, current); err != nil {
		v.fail(err)
		return err
	}

	v.refetch(ctx)
	return nil
}

// Remove удаляет задачу. Уже удаленная задача не ошибка.
func (v *TodoView) Remove(ctx context.Context, slotID string) error {
	if v.isClosed() {
		return ErrClosed
	}

	if err := v.src.DeleteSlot(ctx, v.userID, slotID); err != nil && !errors.Is(err, app.ErrNotFound) {
		v.fail(err)
		return err
	}

	v.refetch(ctx)
	return nil
}

func (v *TodoView) refetch(ctx context.Context) {
	if err := v.Refresh(ctx); err != nil && !errors.Is(err, ErrClosed) {
		logger.Log(ctx).Warn(ctx, "refetch after write failed", zap.Error(err))
	}
}

// Progress выполнено/всего/процент для периода. 0 из 0 дает 0%.
func (v *TodoView) Progress(p entities.Period) (done, total, percent int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return entities.Progress(v.buckets.Get(p))
}

// Buckets текущие задачи по периодам.
func (v *TodoView) Buckets() entities.Buckets {
	v.mu.Lock()
	defer v.mu.Unlock()
	return entities.Buckets{
		Morning: append([]*entities.TimeSlot{}, v.buckets.Morning...),
		Noon:    append([]*entities.TimeSlot{}, v.buckets.Noon...),
		Evening: append([]*entities.TimeSlot{}, v.buckets.Evening...),
	}
}

// TodoID id агрегата дня или "" до загрузки.
func (v *TodoView) TodoID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.todoID
}

// Active активный период.
func (v *TodoView) Active() entities.Period {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

// DrawerOpen открыта ли панель.
func (v *TodoView) DrawerOpen() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.drawer
}

// Draft текущий черновик.
func (v *TodoView) Draft() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}
