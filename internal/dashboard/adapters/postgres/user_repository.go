package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/repositories"
	"daynote/pkg/logger"
)

const userColumns = `id, username, password_hash, name, punchcard, level, notes_visible, activity_visible, created_at, updated_at`

const (
	queryCreateUser = `INSERT INTO users (username, password_hash, name)
        VALUES ($1, $2, $3)
        RETURNING id, level, notes_visible, activity_visible, created_at, updated_at`

	queryUserByID       = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	queryUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	queryUpdateProfile = `UPDATE users
        SET name = $1, username = $2, punchcard = $3, updated_at = NOW()
        WHERE id = $4`

	querySetNotesVisible    = `UPDATE users SET notes_visible = $1, updated_at = NOW() WHERE id = $2`
	querySetActivityVisible = `UPDATE users SET activity_visible = $1, updated_at = NOW() WHERE id = $2`
)

// UserRepository реализует repositories.UserRepository.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// Create сохраняет нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	err := r.pool.QueryRow(ctx, queryCreateUser, user.Username, user.PasswordHash, user.Name).Scan(
		&user.ID, &user.Level, &user.NotesVisible, &user.ActivityVisible, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "username already taken", zap.String("username", user.Username))
			return repositories.ErrDuplicate
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*entities.User, error) {
	return r.findOne(ctx, "FindByID", queryUserByID, userID)
}

// FindByUsername находит пользователя по username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "FindByUsername", queryUserByUsername, username)
}

func (r *UserRepository) findOne(ctx context.Context, method, query, arg string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	var u entities.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Punchcard, &u.Level,
		&u.NotesVisible, &u.ActivityVisible, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRow(err) {
			log.Debug(ctx, "user not found")
			return nil, repositories.ErrNotFound
		}
		log.Error(ctx, "error querying user", zap.Error(err))
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return &u, nil
}

// UpdateProfile перезаписывает имя, username и punchcard.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, profile entities.ProfileInput) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "UpdateProfile"))

	result, err := r.pool.Exec(ctx, queryUpdateProfile, profile.Name, profile.Username, profile.Punchcard, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.ErrDuplicate
		}
		log.Error(ctx, "error updating profile", zap.Error(err))
		return fmt.Errorf("error updating profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// SetNotesVisible меняет видимость заметок.
func (r *UserRepository) SetNotesVisible(ctx context.Context, userID string, visible bool) error {
	return r.setFlag(ctx, "SetNotesVisible", querySetNotesVisible, userID, visible)
}

// SetActivityVisible меняет видимость активности.
func (r *UserRepository) SetActivityVisible(ctx context.Context, userID string, visible bool) error {
	return r.setFlag(ctx, "SetActivityVisible", querySetActivityVisible, userID, visible)
}

func (r *UserRepository) setFlag(ctx context.Context, method, query, userID string, value bool) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	result, err := r.pool.Exec(ctx, query, value, userID)
	if err != nil {
		log.Error(ctx, "error updating visibility", zap.Error(err))
		return fmt.Errorf("error updating visibility: %w", err)
	}
	if result.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
