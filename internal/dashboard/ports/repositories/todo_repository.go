package repositories

import (
	"context"

	"daynote/internal/dashboard/domain/entities"
)

// TodoRepository хранилище дневных агрегатов и их задач.
type TodoRepository interface {
	// FindByDay возвращает агрегат без слотов или nil, если его нет.
	FindByDay(ctx context.Context, userID, day string) (*entities.Todo, error)
	// EnsureForDay атомарно создает агрегат (user, day) или возвращает существующий.
	EnsureForDay(ctx context.Context, userID, day string) (*entities.Todo, error)
	// ListSlots задачи агрегата в порядке вставки. ErrNotFound не возвращается,
	// чужой агрегат дает пустой список.
	ListSlots(ctx context.Context, todoID, userID string) ([]*entities.TimeSlot, error)
	// AddSlot добавляет задачу в агрегат пользователя. ErrNotFound для чужого агрегата.
	AddSlot(ctx context.Context, userID string, slot *entities.TimeSlot) error
	// SetSlotCompleted записывает completed и возвращает итоговое состояние слота.
	SetSlotCompleted(ctx context.Context, slotID, userID string, completed bool) (*entities.TimeSlot, error)
	DeleteSlot(ctx context.Context, slotID, userID string) error
}
