// Package app реализует бизнес-логику сервиса dashboard.
package app

import (
	"errors"
	"fmt"

	"daynote/internal/dashboard/ports/repositories"
	"daynote/internal/dashboard/ports/services"
)

// Ошибки уровня бизнес-логики. Любая возвращаемая ошибка оборачивает одну из них.
var (
	ErrNotFound     = errors.New("not found")
	ErrPersistence  = errors.New("persistence failure")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)

// Сущности и операции для метрик записи.
const (
	entityNote    = "note"
	entityTodo    = "todo"
	entitySlot    = "slot"
	entityProfile = "profile"
	entityUser    = "user"

	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
	opEnsure = "ensure"
	opToggle = "toggle"
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// storeError переводит ошибку хранилища в ошибку use case.
func storeError(msg string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	case errors.Is(err, repositories.ErrDuplicate):
		return fmt.Errorf("%s: %w", msg, ErrConflict)
	default:
		return fmt.Errorf("%s: %w: %w", msg, ErrPersistence, err)
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveWrite(string, string, error) {}
func (nopMetrics) ObserveCache(string)                {}

func metricsOrNop(m services.Metrics) services.Metrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}
