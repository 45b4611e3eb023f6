// Package postgres реализует репозитории dashboard поверх pgx.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"daynote/internal/dashboard/ports/repositories"
)

// Коды ошибок Postgres.
const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

// PgxPoolInterface подмножество pgxpool.Pool, которое нужно репозиториям.
// Ему удовлетворяют и *pgxpool.Pool, и pgxmock.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// RepositoryFactory создает репозитории на общем пуле.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// NoteRepository возвращает репозиторий заметок.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return NewNoteRepository(f.pool)
}

// TodoRepository возвращает репозиторий задач.
func (f *RepositoryFactory) TodoRepository() repositories.TodoRepository {
	return NewTodoRepository(f.pool)
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return NewUserRepository(f.pool)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// isNoRow сообщает, что строки нет. Идентификатор, который не разбирается как uuid,
// тоже не может указывать на строку.
func isNoRow(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || isMalformedID(err)
}

func isMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}
