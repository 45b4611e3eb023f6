package repositories

import (
	"context"
	"time"

	"daynote/internal/dashboard/domain/entities"
)

// NoteRepository хранилище заметок. Все операции ограничены владельцем.
type NoteRepository interface {
	// ListCreatedBetween заметки с created_at в [from, to), новые первыми.
	ListCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]*entities.Note, error)
	// Create вставляет заметку и заполняет ID и временные метки.
	Create(ctx context.Context, note *entities.Note) error
	// Update заменяет title, description, content. ErrNotFound для чужой или удаленной заметки.
	Update(ctx context.Context, note *entities.Note) error
	Delete(ctx context.Context, noteID, userID string) error
	// ListCreatedAt моменты создания всех заметок пользователя по возрастанию.
	ListCreatedAt(ctx context.Context, userID string) ([]time.Time, error)
}
