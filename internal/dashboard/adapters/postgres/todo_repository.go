package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/repositories"
	"daynote/pkg/logger"
)

const (
	queryFindTodoByDay = `SELECT id, user_id, to_char(day, 'YYYY-MM-DD'), created_at, updated_at
        FROM todos
        WHERE user_id = $1 AND day = $2::date`

	// ON CONFLICT ... DO UPDATE нужен, чтобы RETURNING вернул уже существующую строку.
	queryEnsureTodo = `INSERT INTO todos (user_id, day)
        VALUES ($1, $2::date)
        ON CONFLICT (user_id, day) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, to_char(day, 'YYYY-MM-DD'), created_at, updated_at`

	queryListSlots = `SELECT s.id, s.todo_id, s.period, COALESCE(s.text, ''), s.completed, s.created_at
        FROM time_slots s
        JOIN todos t ON t.id = s.todo_id
        WHERE s.todo_id = $1 AND t.user_id = $2
        ORDER BY s.created_at ASC, s.id ASC`

	queryAddSlot = `INSERT INTO time_slots (todo_id, period, text)
        SELECT t.id, $3, $4 FROM todos t WHERE t.id = $1 AND t.user_id = $2
        RETURNING id, completed, created_at`

	querySetSlotCompleted = `UPDATE time_slots s
        SET completed = $3
        FROM todos t
        WHERE s.id = $1 AND s.todo_id = t.id AND t.user_id = $2
        RETURNING s.id, s.todo_id, s.period, COALESCE(s.text, ''), s.completed, s.created_at`

	queryDeleteSlot = `DELETE FROM time_slots s
        USING todos t
        WHERE s.id = $1 AND s.todo_id = t.id AND t.user_id = $2`
)

// TodoRepository реализует repositories.TodoRepository.
type TodoRepository struct {
	pool PgxPoolInterface
}

// NewTodoRepository создает репозиторий задач.
func NewTodoRepository(pool PgxPoolInterface) repositories.TodoRepository {
	return &TodoRepository{pool: pool}
}

// FindByDay ищет агрегат пользователя за день.
func (r *TodoRepository) FindByDay(ctx context.Context, userID, day string) (*entities.Todo, error) {
	log := logger.Log(ctx).With(zap.String("method", "TodoRepository.FindByDay"))
	log.Debug(ctx, "looking up todo", zap.String("userID", userID), zap.String("day", day))

	var todo entities.Todo
	err := r.pool.QueryRow(ctx, queryFindTodoByDay, userID, day).
		Scan(&todo.ID, &todo.UserID, &todo.Day, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		log.Error(ctx, "failed to find todo", zap.Error(err))
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return &todo, nil
}

// EnsureForDay создает агрегат или возвращает существующий одним запросом.
func (r *TodoRepository) EnsureForDay(ctx context.Context, userID, day string) (*entities.Todo, error) {
	log := logger.Log(ctx).With(zap.String("method", "TodoRepository.EnsureForDay"))
	log.Debug(ctx, "ensuring todo", zap.String("userID", userID), zap.String("day", day))

	var todo entities.Todo
	err := r.pool.QueryRow(ctx, queryEnsureTodo, userID, day).
		Scan(&todo.ID, &todo.UserID, &todo.Day, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		log.Error(ctx, "failed to ensure todo", zap.Error(err))
		return nil, fmt.Errorf("failed to ensure todo: %w", err)
	}

	log.Debug(ctx, "todo ready", zap.String("todoID", todo.ID))
	return &todo, nil
}

// ListSlots отдает задачи агрегата.
func (r *TodoRepository) ListSlots(ctx context.Context, todoID, userID string) ([]*entities.TimeSlot, error) {
	log := logger.Log(ctx).With(zap.String("method", "TodoRepository.ListSlots"))

	rows, err := r.pool.Query(ctx, queryListSlots, todoID, userID)
	if err != nil {
		log.Error(ctx, "failed to list slots", zap.Error(err))
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer rows.Close()

	slots := make([]*entities.TimeSlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			log.Error(ctx, "failed to scan slot", zap.Error(err))
			return nil, err
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return slots, nil
}

// AddSlot вставляет задачу, только если агрегат принадлежит пользователю.
func (r *TodoRepository) AddSlot(ctx context.Context, userID string, slot *entities.TimeSlot) error {
	log := logger.Log(ctx).With(zap.String("method", "TodoRepository.AddSlot"))
	log.Debug(ctx, "adding slot", zap.String("todoID", slot.TodoID), zap.Stringer("period", slot.Period))

	err := r.pool.QueryRow(ctx, queryAddSlot, slot.TodoID, userID, slot.Period.StorageValue(), slot.Text).
		Scan(&slot.ID, &slot.Completed, &slot.CreatedAt)
	if err != nil {
		if isNoRow(err) {
			log.Debug(ctx, "todo not found or not owned by user")
			return repositories.ErrNotFound
		}
		log.Error(ctx, "failed to add slot", zap.Error(err))
		return fmt.Errorf("failed to add slot: %w", err)
	}
	return nil
}

// SetSlotCompleted записывает состояние задачи. Последняя запись побеждает.
func (r *TodoRepository) SetSlotCompleted(ctx context.Context, slotID, userID string, completed bool) (*entities.TimeSlot, error) {
	log := logger.Log(ctx).With(zap.String("method", "TodoRepository.SetSlotCompleted"))
	log.Debug(ctx, "setting slot state", zap.String("slotID", slotID), zap.Bool("completed", completed))

	slot, err := scanSlot(r.pool.QueryRow(ctx, querySetSlotCompleted, slotID, userID, completed))
	if err != nil {
		if isNoRow(err) {
			log.Debug(ctx, "slot not found or not owned by user")
			return nil, repositories.ErrNotFound
		}
		log.Error(ctx, "failed to update slot", zap.Error(err))
		return nil, fmt.Errorf("failed to update slot: %w", err)
	}
	return slot, nil
}

// DeleteSlot удаляет задачу пользователя.
func (r *TodoRepository) DeleteSlot(ctx context.Context, slotID, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "TodoRepository.DeleteSlot"))
	log.Debug(ctx, "deleting slot", zap.String("slotID", slotID))

	result, err := r.pool.Exec(ctx, queryDeleteSlot, slotID, userID)
	if isMalformedID(err) {
		return repositories.ErrNotFound
	}
	if err != nil {
		log.Error(ctx, "failed to delete slot", zap.Error(err))
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	if result.RowsAffected() == 0 {
		log.Debug(ctx, "slot not found or not owned by user")
		return repositories.ErrNotFound
	}
	return nil
}

// scanSlot читает строку слота и переводит период из значения хранилища.
func scanSlot(row pgx.Row) (*entities.TimeSlot, error) {
	var (
		slot   entities.TimeSlot
		period string
	)
	if err := row.Scan(&slot.ID, &slot.TodoID, &period, &slot.Text, &slot.Completed, &slot.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan slot: %w", err)
	}

	p, err := entities.PeriodFromStorage(period)
	if err != nil {
		return nil, fmt.Errorf("failed to scan slot %s: %w", slot.ID, err)
	}
	slot.Period = p
	return &slot, nil
}
