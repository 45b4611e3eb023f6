// Package api определяет порты use case, которые вызывают транспорты и view.
package api

import (
	"context"

	"daynote/internal/dashboard/domain/entities"
)

// NoteUseCase операции над заметками текущего дня.
type NoteUseCase interface {
	ListToday(ctx context.Context, userID string) ([]*entities.Note, error)
	Create(ctx context.Context, userID string, in entities.NoteInput) (*entities.Note, error)
	Update(ctx context.Context, userID, noteID string, in entities.NoteInput) (*entities.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
}

// CalendarUseCase дни, в которые у пользователя есть заметки.
type CalendarUseCase interface {
	DaysWithNotes(ctx context.Context, userID string) ([]string, error)
}
