package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	svc "daynote/internal/dashboard/ports/services"
)

const (
	errMsgHash    = "failed to generate password hash"
	errMsgCompare = "error comparing password with hash"
)

// ServiceBcrypt реализует PasswordService.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает сервис; слишком малая стоимость заменяется на DefaultCost.
func NewBcrypt(cost int) *ServiceBcrypt {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

var _ svc.PasswordService = (*ServiceBcrypt)(nil)

// Hash хэширует пароль.
func (s *ServiceBcrypt) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", svc.ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgHash, err)
	}
	return string(hashed), nil
}

// Verify сравнивает пароль с хэшем.
func (s *ServiceBcrypt) Verify(_ context.Context, password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, svc.ErrInvalidPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", errMsgCompare, err)
	}
	return true, nil
}
