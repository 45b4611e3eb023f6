package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"daynote/internal/dashboard/domain/dayscope"
	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/repositories"
	"daynote/internal/dashboard/ports/services"
	"daynote/pkg/logger"
	"daynote/pkg/metrics"
)

const (
	todoCachePrefix = "todo:"

	// headerTimeout ограничивает общий запрос агрегата, который не зависит от отмены вызывающего.
	headerTimeout = 10 * time.Second

	msgCacheReadFailed  = "todo cache read failed"
	msgCacheWriteFailed = "todo cache write failed"
	msgCacheCorrupted   = "todo cache entry is corrupted"
	msgListSlotsFailed  = "listing today's slots failed, returning empty buckets"
	msgCacheDropFailed  = "todo cache invalidation failed"

	errMsgGetOrCreateTodo = "failed to get or create today's todo"
	errMsgListSlots       = "failed to list slots"
	errMsgAddSlot         = "failed to add slot"
	errMsgToggleSlot      = "failed to toggle slot"
	errMsgDeleteSlot      = "failed to delete slot"
)

// TodoUseCase дневной агрегат задач.
type TodoUseCase struct {
	repo    repositories.TodoRepository
	cache   services.Cache
	days    *dayscope.Resolver
	metrics services.Metrics
	group   singleflight.Group
}

// NewTodoUseCase создает TodoUseCase. cache и metrics могут быть nil.
func NewTodoUseCase(
	repo repositories.TodoRepository,
	cache services.Cache,
	days *dayscope.Resolver,
	metrics services.Metrics,
) *TodoUseCase {
	return &TodoUseCase{repo: repo, cache: cache, days: days, metrics: metricsOrNop(metrics)}
}

// GetOrCreateToday возвращает агрегат текущего дня вместе со слотами,
// создавая его при первом обращении за день. Для одного дня id всегда один и тот же.
func (uc *TodoUseCase) GetOrCreateToday(ctx context.Context, userID string) (*entities.Todo, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	today := uc.days.Today()
	todo, err := uc.header(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	slots, err := uc.repo.ListSlots(ctx, todo.ID, userID)
	if err != nil {
		return nil, storeError(errMsgListSlots, err)
	}
	todo.Slots = slots
	return todo, nil
}

// ListSlots раскладывает задачи дня по периодам. При ошибке хранилища
// возвращаются пустые корзины; ошибка только при отмене ctx.
func (uc *TodoUseCase) ListSlots(ctx context.Context, userID string) (entities.Buckets, error) {
	if userID == "" {
		return entities.NewBuckets(nil), nil
	}

	todo, err := uc.GetOrCreateToday(ctx, userID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entities.NewBuckets(nil), ctxErr
		}
		logger.Log(ctx).Error(ctx, msgListSlotsFailed,
			zap.String("method", "TodoUseCase.ListSlots"), zap.Error(err))
		return entities.NewBuckets(nil), nil
	}
	return entities.NewBuckets(todo.Slots), nil
}

// AddSlot добавляет задачу в агрегат пользователя.
func (uc *TodoUseCase) AddSlot(ctx context.Context, userID, todoID string, in entities.SlotInput) (*entities.TimeSlot, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if todoID == "" {
		return nil, fmt.Errorf("%w: %s", ErrValidation, errMsgEmptyID)
	}
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, validationError(err)
	}

	slot := &entities.TimeSlot{TodoID: todoID, Period: in.Period, Text: in.Text}
	err := uc.repo.AddSlot(ctx, userID, slot)
	uc.metrics.ObserveWrite(entitySlot, opCreate, err)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// id агрегата мог прийти из устаревшего кэша
			uc.forget(ctx, userID)
		}
		return nil, storeError(errMsgAddSlot, err)
	}
	return slot, nil
}

// ToggleSlot записывает !current. Последняя запись побеждает.
func (uc *TodoUseCase) ToggleSlot(ctx context.Context, userID, slotID string, current bool) (*entities.TimeSlot, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if slotID == "" {
		return nil, fmt.Errorf("%w: %s", ErrValidation, errMsgEmptyID)
	}

	slot, err := uc.repo.SetSlotCompleted(ctx, slotID, userID, !current)
	uc.metrics.ObserveWrite(entitySlot, opToggle, err)
	if err != nil {
		return nil, storeError(errMsgToggleSlot, err)
	}
	return slot, nil
}

// DeleteSlot удаляет задачу пользователя.
func (uc *TodoUseCase) DeleteSlot(ctx context.Context, userID, slotID string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	if slotID == "" {
		return fmt.Errorf("%w: %s", ErrValidation, errMsgEmptyID)
	}

	err := uc.repo.DeleteSlot(ctx, slotID, userID)
	uc.metrics.ObserveWrite(entitySlot, opDelete, err)
	if err != nil {
		return storeError(errMsgDeleteSlot, err)
	}
	return nil
}

// header возвращает агрегат дня без слотов. Порядок: кэш, поиск, upsert.
// Параллельные вызовы для одного (user, day) схлопываются в один запрос,
// который выполняется без отмены вызывающего; каждый ожидающий уходит по своему ctx.
func (uc *TodoUseCase) header(ctx context.Context, userID string, today dayscope.Boundary) (*entities.Todo, error) {
	day := today.Key()
	key := headerKey(userID, day)

	if todo := uc.cached(ctx, key); todo != nil {
		return todo, nil
	}

	ch := uc.group.DoChan(userID+"|"+day, func() (any, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), headerTimeout)
		defer cancel()

		todo, err := uc.repo.FindByDay(sharedCtx, userID, day)
		if err != nil {
			return nil, err
		}
		if todo == nil {
			todo, err = uc.repo.EnsureForDay(sharedCtx, userID, day)
			uc.metrics.ObserveWrite(entityTodo, opEnsure, err)
			if err != nil {
				return nil, err
			}
		}
		uc.remember(sharedCtx, key, todo, today.Remaining(uc.days.Now()))
		return todo, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, storeError(errMsgGetOrCreateTodo, ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, storeError(errMsgGetOrCreateTodo, res.Err)
	}

	// результат singleflight общий для всех ожидающих
	todo := *res.Val.(*entities.Todo)
	todo.Slots = nil
	return &todo, nil
}

func headerKey(userID, day string) string {
	return todoCachePrefix + userID + ":" + day
}

// forget убирает закэшированный заголовок агрегата дня.
func (uc *TodoUseCase) forget(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	key := headerKey(userID, uc.days.Today().Key())
	if err := uc.cache.Delete(ctx, key); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheDropFailed, zap.String("key", key), zap.Error(err))
	}
}

func (uc *TodoUseCase) cached(ctx context.Context, key string) *entities.Todo {
	if uc.cache == nil {
		return nil
	}
	log := logger.Log(ctx).With(zap.String("method", "TodoUseCase.cached"), zap.String("key", key))

	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.metrics.ObserveCache(metrics.CacheError)
		log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
		return nil
	}
	if raw == "" {
		uc.metrics.ObserveCache(metrics.CacheMiss)
		return nil
	}

	var todo entities.Todo
	if err := json.Unmarshal([]byte(raw), &todo); err != nil || todo.ID == "" {
		uc.metrics.ObserveCache(metrics.CacheError)
		log.Warn(ctx, msgCacheCorrupted, zap.Error(err))
		return nil
	}
	uc.metrics.ObserveCache(metrics.CacheHit)
	return &todo
}

func (uc *TodoUseCase) remember(ctx context.Context, key string, todo *entities.Todo, ttl time.Duration) {
	if uc.cache == nil || ttl <= 0 {
		return
	}
	header := *todo
	header.Slots = nil

	raw, err := json.Marshal(header)
	if err == nil {
		err = uc.cache.Set(ctx, key, string(raw), ttl)
	}
	if err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheWriteFailed, zap.String("key", key), zap.Error(err))
	}
}
