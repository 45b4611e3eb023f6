package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"daynote/internal/dashboard/domain/dayscope"
	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/repositories"
	"daynote/internal/dashboard/ports/services"
	"daynote/pkg/logger"
)

const (
	msgListNotesFailed = "listing today's notes failed, returning empty list"

	errMsgCreateNote = "failed to create note"
	errMsgUpdateNote = "failed to update note"
	errMsgDeleteNote = "failed to delete note"
	errMsgEmptyID    = "empty id"
)

// NoteUseCase заметки текущего дня.
type NoteUseCase struct {
	repo    repositories.NoteRepository
	days    *dayscope.Resolver
	metrics services.Metrics
}

// NewNoteUseCase создает NoteUseCase. metrics может быть nil.
func NewNoteUseCase(repo repositories.NoteRepository, days *dayscope.Resolver, metrics services.Metrics) *NoteUseCase {
	return &NoteUseCase{repo: repo, days: days, metrics: metricsOrNop(metrics)}
}

// ListToday возвращает заметки, созданные сегодня, новые первыми.
// Ошибка хранилища не пробрасывается: результатом будет пустой список.
// Ошибка возвращается только при отмене ctx.
func (uc *NoteUseCase) ListToday(ctx context.Context, userID string) ([]*entities.Note, error) {
	if userID == "" {
		return []*entities.Note{}, nil
	}

	today := uc.days.Today()
	log := logger.Log(ctx).With(zap.String("method", "NoteUseCase.ListToday"), zap.String("day", today.Key()))

	notes, err := uc.repo.ListCreatedBetween(ctx, userID, today.Start, today.End)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Error(ctx, msgListNotesFailed, zap.Error(err))
		return []*entities.Note{}, nil
	}

	result := make([]*entities.Note, 0, len(notes))
	for _, n := range notes {
		if today.Contains(n.CreatedAt) {
			result = append(result, n)
		}
	}
	return result, nil
}

// Create проверяет ввод и сохраняет новую заметку.
func (uc *NoteUseCase) Create(ctx context.Context, userID string, in entities.NoteInput) (*entities.Note, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, validationError(err)
	}

	note := entities.NewNote(userID, in)
	err := uc.repo.Create(ctx, note)
	uc.metrics.ObserveWrite(entityNote, opCreate, err)
	if err != nil {
		return nil, storeError(errMsgCreateNote, err)
	}

	logger.Log(ctx).Debug(ctx, "note created", zap.String("noteID", note.ID))
	return note, nil
}

// Update заменяет title, description и content заметки владельца.
func (uc *NoteUseCase) Update(ctx context.Context, userID, noteID string, in entities.NoteInput) (*entities.Note, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	if noteID == "" {
		return nil, fmt.Errorf("%w: %s", ErrValidation, errMsgEmptyID)
	}
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, validationError(err)
	}

	note := entities.NewNote(userID, in)
	note.ID = noteID

	err := uc.repo.Update(ctx, note)
	uc.metrics.ObserveWrite(entityNote, opUpdate, err)
	if err != nil {
		return nil, storeError(errMsgUpdateNote, err)
	}
	return note, nil
}

// Delete удаляет заметку владельца. Повторное удаление дает ErrNotFound.
func (uc *NoteUseCase) Delete(ctx context.Context, userID, noteID string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	if noteID == "" {
		return fmt.Errorf("%w: %s", ErrValidation, errMsgEmptyID)
	}

	err := uc.repo.Delete(ctx, noteID, userID)
	uc.metrics.ObserveWrite(entityNote, opDelete, err)
	if err != nil {
		return storeError(errMsgDeleteNote, err)
	}
	return nil
}
