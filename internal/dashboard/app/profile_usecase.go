package app

import (
	"context"
	"errors"
	"strings"

	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/repositories"
	"daynote/internal/dashboard/ports/services"
)

const (
	errMsgGetProfile    = "failed to get profile"
	errMsgGetLevel      = "failed to get level"
	errMsgUpdateProfile = "failed to update profile"
	errMsgSetVisibility = "failed to update visibility"

	opNotesVisibility    = "notes_visibility"
	opActivityVisibility = "activity_visibility"
)

// ProfileUseCase профиль и настройки приватности.
type ProfileUseCase struct {
	users   repositories.UserRepository
	metrics services.Metrics
}

// NewProfileUseCase создает ProfileUseCase.
func NewProfileUseCase(users repositories.UserRepository, metrics services.Metrics) *ProfileUseCase {
	return &ProfileUseCase{users: users, metrics: metricsOrNop(metrics)}
}

// Get возвращает профиль пользователя.
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) (*entities.User, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, storeError(errMsgGetProfile, err)
	}
	return user, nil
}

// Level уровень пользователя; для неизвестного пользователя 0.
func (uc *ProfileUseCase) Level(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, nil
	}
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, nil
		}
		return 0, storeError(errMsgGetLevel, err)
	}
	return user.Level, nil
}

// Update перезаписывает имя, username и punchcard. Занятый username дает ErrConflict.
func (uc *ProfileUseCase) Update(ctx context.Context, userID string, in entities.ProfileInput) error {
	if userID == "" {
		return ErrUnauthorized
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Punchcard = strings.TrimSpace(in.Punchcard)
	if err := in.Validate(); err != nil {
		return validationError(err)
	}

	err := uc.users.UpdateProfile(ctx, userID, in)
	uc.metrics.ObserveWrite(entityProfile, opUpdate, err)
	if err != nil {
		return storeError(errMsgUpdateProfile, err)
	}
	return nil
}

// SetNotesVisibility показывает или скрывает заметки пользователя.
func (uc *ProfileUseCase) SetNotesVisibility(ctx context.Context, userID string, visible bool) error {
	if userID == "" {
		return ErrUnauthorized
	}
	err := uc.users.SetNotesVisible(ctx, userID, visible)
	uc.metrics.ObserveWrite(entityProfile, opNotesVisibility, err)
	if err != nil {
		return storeError(errMsgSetVisibility, err)
	}
	return nil
}

// SetActivityVisibility показывает или скрывает активность пользователя.
func (uc *ProfileUseCase) SetActivityVisibility(ctx context.Context, userID string, visible bool) error {
	if userID == "" {
		return ErrUnauthorized
	}
	err := uc.users.SetActivityVisible(ctx, userID, visible)
	uc.metrics.ObserveWrite(entityProfile, opActivityVisibility, err)
	if err != nil {
		return storeError(errMsgSetVisibility, err)
	}
	return nil
}
