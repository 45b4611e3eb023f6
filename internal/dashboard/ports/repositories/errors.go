// Package repositories определяет интерфейсы хранилища сервиса dashboard.
package repositories

import "errors"

// Ошибки, которые адаптеры хранилища обязаны возвращать через errors.Is.
var (
	// ErrNotFound запись не существует или принадлежит другому пользователю.
	ErrNotFound = errors.New("record not found or not owned by user")
	// ErrDuplicate нарушено ограничение уникальности.
	ErrDuplicate = errors.New("record already exists")
)
