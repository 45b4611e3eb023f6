package api

import (
	"context"

	"daynote/internal/dashboard/domain/entities"
)

// TodoUseCase операции над дневным агрегатом задач.
type TodoUseCase interface {
	GetOrCreateToday(ctx context.Context, userID string) (*entities.Todo, error)
	ListSlots(ctx context.Context, userID string) (entities.Buckets, error)
	AddSlot(ctx context.Context, userID, todoID string, in entities.SlotInput) (*entities.TimeSlot, error)
	// ToggleSlot записывает !current.
	ToggleSlot(ctx context.Context, userID, slotID string, current bool) (*entities.TimeSlot, error)
	DeleteSlot(ctx context.Context, userID, slotID string) error
}
