package services

import (
	"context"
	"errors"
)

// PasswordService хэширует и проверяет пароли.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)
	// Verify возвращает false без ошибки при несовпадении.
	Verify(ctx context.Context, password, hash string) (bool, error)
}

// ErrInvalidPassword пустой или слишком короткий пароль.
var ErrInvalidPassword = errors.New("invalid password")
