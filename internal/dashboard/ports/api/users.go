package api

import (
	"context"

	"daynote/internal/dashboard/domain/entities"
)

// AuthUseCase регистрация и вход.
type AuthUseCase interface {
	Register(ctx context.Context, in entities.RegisterInput) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// ProfileUseCase профиль текущего пользователя.
type ProfileUseCase interface {
	Get(ctx context.Context, userID string) (*entities.User, error)
	Level(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, userID string, in entities.ProfileInput) error
	SetNotesVisibility(ctx context.Context, userID string, visible bool) error
	SetActivityVisibility(ctx context.Context, userID string, visible bool) error
}

// SummaryUseCase сводка за сегодня.
type SummaryUseCase interface {
	Today(ctx context.Context, userID string) (*entities.Summary, error)
}
