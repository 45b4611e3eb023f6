package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"daynote/internal/dashboard/domain/dayscope"
	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/api"
)

const errMsgSummary = "failed to build today's summary"

// SummaryUseCase собирает сводку дня из трех независимых чтений.
type SummaryUseCase struct {
	notes   api.NoteUseCase
	todos   api.TodoUseCase
	profile api.ProfileUseCase
	days    *dayscope.Resolver
}

// NewSummaryUseCase создает SummaryUseCase.
func NewSummaryUseCase(notes api.NoteUseCase, todos api.TodoUseCase, profile api.ProfileUseCase, days *dayscope.Resolver) *SummaryUseCase {
	return &SummaryUseCase{notes: notes, todos: todos, profile: profile, days: days}
}

// Today параллельно загружает заметки, задачи и уровень.
func (uc *SummaryUseCase) Today(ctx context.Context, userID string) (*entities.Summary, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}

	summary := &entities.Summary{Day: uc.days.Today().Key()}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		notes, err := uc.notes.ListToday(gctx, userID)
		summary.Notes = notes
		return err
	})
	g.Go(func() error {
		todo, err := uc.todos.GetOrCreateToday(gctx, userID)
		if err != nil {
			return err
		}
		summary.TodoID = todo.ID
		summary.Buckets = entities.NewBuckets(todo.Slots)
		return nil
	})
	g.Go(func() error {
		level, err := uc.profile.Level(gctx, userID)
		summary.Level = level
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", errMsgSummary, err)
	}
	return summary, nil
}
