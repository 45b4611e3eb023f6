package app

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"daynote/internal/dashboard/domain/dayscope"
	"daynote/internal/dashboard/ports/repositories"
	"daynote/pkg/logger"
)

// CalendarUseCase календарь активности.
type CalendarUseCase struct {
	repo repositories.NoteRepository
	days *dayscope.Resolver
}

// NewCalendarUseCase создает CalendarUseCase.
func NewCalendarUseCase(repo repositories.NoteRepository, days *dayscope.Resolver) *CalendarUseCase {
	return &CalendarUseCase{repo: repo, days: days}
}

// DaysWithNotes уникальные локальные дни (YYYY-MM-DD) с заметками, по возрастанию.
func (uc *CalendarUseCase) DaysWithNotes(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return []string{}, nil
	}

	created, err := uc.repo.ListCreatedAt(ctx, userID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Log(ctx).Error(ctx, "listing note days failed",
			zap.String("method", "CalendarUseCase.DaysWithNotes"), zap.Error(err))
		return []string{}, nil
	}

	days := make([]string, 0, len(created))
	for _, ts := range created {
		days = append(days, uc.days.DayKey(ts))
	}
	slices.Sort(days)
	return slices.Compact(days), nil
}
