// Package services определяет интерфейсы внешних сервисов dashboard.
package services

import (
	"context"
	"errors"
)

// TokenService выпускает и проверяет access токены.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID, username string) (string, error)
	// ValidateAccessToken возвращает ID пользователя из валидного токена.
	ValidateAccessToken(ctx context.Context, token string) (string, error)
}

// Ошибки токенов.
var (
	ErrInvalidJWTToken = errors.New("invalid JWT token")
	ErrExpiredJWTToken = errors.New("JWT token has expired")
)
