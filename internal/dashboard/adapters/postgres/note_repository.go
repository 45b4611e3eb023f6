package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/repositories"
	"daynote/pkg/logger"
)

const (
	queryListNotesBetween = `SELECT id, user_id, title, COALESCE(description, ''), content, created_at, updated_at
        FROM notes
        WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
        ORDER BY created_at DESC, id DESC`

	queryCreateNote = `INSERT INTO notes (user_id, title, description, content)
        VALUES ($1, $2, NULLIF($3, ''), $4)
        RETURNING id, created_at, updated_at`

	queryUpdateNote = `UPDATE notes
        SET title = $1, description = NULLIF($2, ''), content = $3, updated_at = NOW()
        WHERE id = $4 AND user_id = $5
        RETURNING created_at, updated_at`

	queryDeleteNote = `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	queryNoteCreatedAt = `SELECT created_at FROM notes WHERE user_id = $1 ORDER BY created_at ASC`
)

// NoteRepository реализует repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// ListCreatedBetween выбирает заметки дня по полуоткрытому интервалу.
func (r *NoteRepository) ListCreatedBetween(ctx context.Context, userID string, from, to time.Time) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListCreatedBetween"))
	log.Debug(ctx, "listing notes", zap.String("userID", userID), zap.Time("from", from), zap.Time("to", to))

	rows, err := r.pool.Query(ctx, queryListNotesBetween, userID, from, to)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var n entities.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Description, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Create вставляет заметку.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID))

	err := r.pool.QueryRow(ctx, queryCreateNote, note.UserID, note.Title, note.Description, note.Content).
		Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", note.ID))
	return nil
}

// Update перезаписывает изменяемые поля заметки владельца.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	err := r.pool.QueryRow(ctx, queryUpdateNote, note.Title, note.Description, note.Content, note.ID, note.UserID).
		Scan(&note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if isNoRow(err) {
			log.Debug(ctx, "note not found or not owned by user")
			return repositories.ErrNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return fmt.Errorf("failed to update note: %w", err)
	}

	return nil
}

// Delete удаляет заметку владельца.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx, queryDeleteNote, noteID, userID)
	if isMalformedID(err) {
		return repositories.ErrNotFound
	}
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return repositories.ErrNotFound
	}

	return nil
}

// ListCreatedAt отдает моменты создания всех заметок пользователя.
func (r *NoteRepository) ListCreatedAt(ctx context.Context, userID string) ([]time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListCreatedAt"))

	rows, err := r.pool.Query(ctx, queryNoteCreatedAt, userID)
	if err != nil {
		log.Error(ctx, "failed to list note timestamps", zap.Error(err))
		return nil, fmt.Errorf("failed to list note timestamps: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("failed to scan note timestamp: %w", err)
		}
		out = append(out, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}
