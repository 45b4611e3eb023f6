package postgres_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daynote/internal/dashboard/adapters/postgres"
	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/ports/repositories"
)

const day = "2026-03-14"

var (
	todoColumns = []string{"id", "user_id", "day", "created_at", "updated_at"}
	slotColumns = []string{"id", "todo_id", "period", "text", "completed", "created_at"}
)

func TestTodoRepository_FindByDay(t *testing.T) {
	ctx := testContext(t)
	ts := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)

	t.Run("existing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("WHERE user_id = $1 AND day = $2::date")).
			WithArgs(userID, day).
			WillReturnRows(pgxmock.NewRows(todoColumns).AddRow("t1", userID, day, ts, ts))

		todo, err := postgres.NewTodoRepository(mock).FindByDay(ctx, userID, day)

		require.NoError(t, err)
		require.NotNil(t, todo)
		assert.Equal(t, "t1", todo.ID)
		assert.Equal(t, day, todo.Day)
	})

	t.Run("absent", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("FROM todos")).
			WithArgs(userID, day).
			WillReturnRows(pgxmock.NewRows(todoColumns))

		todo, err := postgres.NewTodoRepository(mock).FindByDay(ctx, userID, day)

		require.NoError(t, err)
		assert.Nil(t, todo)
	})
}

func TestTodoRepository_EnsureForDay(t *testing.T) {
	ctx := testContext(t)
	ts := time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC)

	t.Run("upsert returns the single row for the day", func(t *testing.T) {
		mock := newMock(t)
		repo := postgres.NewTodoRepository(mock)

		for range 2 {
			mock.ExpectQuery(q("ON CONFLICT (user_id, day) DO UPDATE")).
				WithArgs(userID, day).
				WillReturnRows(pgxmock.NewRows(todoColumns).AddRow("t1", userID, day, ts, ts))
		}

		first, err := repo.EnsureForDay(ctx, userID, day)
		require.NoError(t, err)
		second, err := repo.EnsureForDay(ctx, userID, day)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("INSERT INTO todos")).
			WithArgs(userID, day).
			WillReturnError(errDatabaseConnection)

		todo, err := postgres.NewTodoRepository(mock).EnsureForDay(ctx, userID, day)

		require.ErrorIs(t, err, errDatabaseConnection)
		assert.Nil(t, todo)
	})
}

func TestTodoRepository_ListSlots(t *testing.T) {
	ctx := testContext(t)
	ts := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	t.Run("maps storage periods", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("JOIN todos t ON t.id = s.todo_id")).
			WithArgs("t1", userID).
			WillReturnRows(pgxmock.NewRows(slotColumns).
				AddRow("s1", "t1", "Morning", "Review PR", false, ts).
				AddRow("s2", "t1", "Evening", "", true, ts.Add(time.Minute)))

		slots, err := postgres.NewTodoRepository(mock).ListSlots(ctx, "t1", userID)

		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, entities.PeriodMorning, slots[0].Period)
		assert.Equal(t, "Review PR", slots[0].Text)
		assert.Equal(t, entities.PeriodEvening, slots[1].Period)
		assert.True(t, slots[1].Completed)
	})

	t.Run("unknown stored period fails the read", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("FROM time_slots")).
			WithArgs("t1", userID).
			WillReturnRows(pgxmock.NewRows(slotColumns).AddRow("s1", "t1", "Night", "x", false, ts))

		slots, err := postgres.NewTodoRepository(mock).ListSlots(ctx, "t1", userID)

		require.ErrorIs(t, err, entities.ErrUnknownPeriod)
		assert.Nil(t, slots)
	})
}

func TestTodoRepository_AddSlot(t *testing.T) {
	ctx := testContext(t)
	ts := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	t.Run("stores the storage casing", func(t *testing.T) {
		mock := newMock(t)
		slot := &entities.TimeSlot{TodoID: "t1", Period: entities.PeriodNoon, Text: "Lunch"}

		mock.ExpectQuery(q("INSERT INTO time_slots (todo_id, period, text)")).
			WithArgs("t1", userID, "Noon", "Lunch").
			WillReturnRows(pgxmock.NewRows([]string{"id", "completed", "created_at"}).AddRow("s9", false, ts))

		require.NoError(t, postgres.NewTodoRepository(mock).AddSlot(ctx, userID, slot))
		assert.Equal(t, "s9", slot.ID)
		assert.False(t, slot.Completed)
	})

	t.Run("foreign todo", func(t *testing.T) {
		mock := newMock(t)
		slot := &entities.TimeSlot{TodoID: "t1", Period: entities.PeriodNoon, Text: "Lunch"}

		mock.ExpectQuery(q("WHERE t.id = $1 AND t.user_id = $2")).
			WithArgs("t1", otherID, "Noon", "Lunch").
			WillReturnRows(pgxmock.NewRows([]string{"id", "completed", "created_at"}))

		err := postgres.NewTodoRepository(mock).AddSlot(ctx, otherID, slot)
		require.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestTodoRepository_SetSlotCompleted(t *testing.T) {
	ctx := testContext(t)
	ts := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	t.Run("returns the stored state", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("UPDATE time_slots s")).
			WithArgs("s1", userID, true).
			WillReturnRows(pgxmock.NewRows(slotColumns).AddRow("s1", "t1", "Morning", "Review PR", true, ts))

		slot, err := postgres.NewTodoRepository(mock).SetSlotCompleted(ctx, "s1", userID, true)

		require.NoError(t, err)
		assert.True(t, slot.Completed)
		assert.Equal(t, entities.PeriodMorning, slot.Period)
	})

	t.Run("foreign slot", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(q("UPDATE time_slots s")).
			WithArgs("s1", otherID, true).
			WillReturnRows(pgxmock.NewRows(slotColumns))

		slot, err := postgres.NewTodoRepository(mock).SetSlotCompleted(ctx, "s1", otherID, true)

		require.ErrorIs(t, err, repositories.ErrNotFound)
		assert.Nil(t, slot)
	})
}

func TestTodoRepository_DeleteSlot(t *testing.T) {
	ctx := testContext(t)

	t.Run("deleted", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(q("DELETE FROM time_slots s")).
			WithArgs("s1", userID).
			WillReturnResult(pgconn.NewCommandTag("DELETE 1"))

		require.NoError(t, postgres.NewTodoRepository(mock).DeleteSlot(ctx, "s1", userID))
	})

	t.Run("nothing deleted", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(q("USING todos t")).
			WithArgs("s1", userID).
			WillReturnResult(pgconn.NewCommandTag("DELETE 0"))

		err := postgres.NewTodoRepository(mock).DeleteSlot(ctx, "s1", userID)
		require.ErrorIs(t, err, repositories.ErrNotFound)
	})
}
