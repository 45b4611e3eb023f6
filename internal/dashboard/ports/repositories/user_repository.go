package repositories

import (
	"context"

	"daynote/internal/dashboard/domain/entities"
)

// UserRepository хранилище пользователей и их профилей.
type UserRepository interface {
	// Create возвращает ErrDuplicate, если username занят.
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, userID string) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID string, profile entities.ProfileInput) error
	SetNotesVisible(ctx context.Context, userID string, visible bool) error
	SetActivityVisible(ctx context.Context, userID string, visible bool) error
}
