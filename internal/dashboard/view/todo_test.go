package view_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daynote/internal/dashboard/app"
	"daynote/internal/dashboard/domain/entities"
	"daynote/internal/dashboard/view"
)

func loadedTodoView(t *testing.T, src *fakeTodos) *view.TodoView {
	t.Helper()
	v := view.NewTodoView(src, userID)
	require.NoError(t, v.Load(context.Background()))
	return v
}

func TestTodoView_Load(t *testing.T) {
	src := &fakeTodos{}
	v := loadedTodoView(t, src)

	assert.Equal(t, "todo-1", v.TodoID())
	b := v.Buckets()
	assert.NotNil(t, b.Morning)
	assert.NotNil(t, b.Noon)
	assert.NotNil(t, b.Evening)
	assert.False(t, v.DrawerOpen())
	assert.Equal(t, entities.PeriodMorning, v.Active())
}

func TestTodoView_LoadWithoutUser(t *testing.T) {
	src := &fakeTodos{}
	v := view.NewTodoView(src, "")

	require.NoError(t, v.Load(context.Background()))
	assert.NoError(t, v.Err())
	assert.Empty(t, v.TodoID())
	assert.Zero(t, src.getCalls)

	b := v.Buckets()
	assert.NotNil(t, b.Morning)
	assert.Empty(t, b.Morning)
	assert.NotNil(t, b.Noon)
	assert.NotNil(t, b.Evening)
	assert.False(t, v.Loading())
}

func TestTodoView_LoadFailure(t *testing.T) {
	src := &fakeTodos{getErr: app.ErrPersistence}
	v := view.NewTodoView(src, userID)

	require.ErrorIs(t, v.Load(context.Background()), app.ErrPersistence)
	assert.ErrorIs(t, v.Err(), app.ErrPersistence)
	assert.Empty(t, v.TodoID())
	assert.False(t, v.Loading())
}

func TestTodoView_OpenIsPureState(t *testing.T) {
	src := &fakeTodos{}
	v := loadedTodoView(t, src)
	calls := src.getCalls

	require.NoError(t, v.Open(entities.PeriodEvening))
	assert.True(t, v.DrawerOpen())
	assert.Equal(t, entities.PeriodEvening, v.Active())
	assert.Equal(t, calls, src.getCalls)

	require.ErrorIs(t, v.Open(entities.PeriodUnknown), entities.ErrUnknownPeriod)
	assert.Equal(t, entities.PeriodEvening, v.Active())

	v.CloseDrawer()
	assert.False(t, v.DrawerOpen())
}

func TestTodoView_AddDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("blank draft is ignored", func(t *testing.T) {
		src := &fakeTodos{}
		v := loadedTodoView(t, src)
		v.SetDraft("   ")

		slot, err := v.AddDraft(ctx)
		require.NoError(t, err)
		assert.Nil(t, slot)
		assert.Empty(t, src.slots)
	})

	t.Run("not loaded yet", func(t *testing.T) {
		src := &fakeTodos{}
		v := view.NewTodoView(src, userID)
		v.SetDraft("Review PR")

		slot, err := v.AddDraft(ctx)
		require.NoError(t, err)
		assert.Nil(t, slot)
	})

	t.Run("adds to the active period and clears the draft", func(t *testing.T) {
		src := &fakeTodos{}
		v := loadedTodoView(t, src)
		require.NoError(t, v.Open(entities.PeriodNoon))
		v.SetDraft("  Lunch with team ")

		slot, err := v.AddDraft(ctx)
		require.NoError(t, err)
		require.NotNil(t, slot)

		assert.Equal(t, "Lunch with team", slot.Text)
		assert.Empty(t, v.Draft())
		require.Len(t, v.Buckets().Noon, 1)
		assert.True(t, v.DrawerOpen())
	})

	t.Run("failure keeps draft and surfaces error", func(t *testing.T) {
		src := &fakeTodos{addErr: app.ErrPersistence}
		v := loadedTodoView(t, src)
		require.NoError(t, v.Open(entities.PeriodMorning))
		v.SetDraft("Review PR")

		_, err := v.AddDraft(ctx)
		require.ErrorIs(t, err, app.ErrPersistence)
		assert.Equal(t, "Review PR", v.Draft())
		assert.True(t, v.DrawerOpen())
		assert.ErrorIs(t, v.Err(), app.ErrPersistence)
	})
}

func TestTodoView_AddDraftAfterMidnight(t *testing.T) {
	ctx := context.Background()
	src := &fakeTodos{}
	v := loadedTodoView(t, src)
	require.Equal(t, "todo-1", v.TodoID())

	src.nextDay()
	v.SetDraft("Review PR")
	slot, err := v.AddDraft(ctx)
	require.NoError(t, err)
	require.NotNil(t, slot)

	assert.Equal(t, "todo-2", slot.TodoID)
	assert.Equal(t, "todo-2", v.TodoID())
	require.Len(t, v.Buckets().Morning, 1)
	assert.Equal(t, "Review PR", v.Buckets().Morning[0].Text)
}

func TestTodoView_RefreshFollowsDay(t *testing.T) {
	ctx := context.Background()
	src := &fakeTodos{}
	v := loadedTodoView(t, src)
	v.SetDraft("Yesterday")
	_, err := v.AddDraft(ctx)
	require.NoError(t, err)
	require.Len(t, v.Buckets().Morning, 1)

	src.nextDay()
	require.NoError(t, v.Refresh(ctx))

	assert.Equal(t, "todo-2", v.TodoID())
	assert.Empty(t, v.Buckets().Morning)
}

func TestTodoView_ToggleUsesKnownState(t *testing.T) {
	ctx := context.Background()
	src := &fakeTodos{}
	v := loadedTodoView(t, src)
	v.SetDraft("Stretch")
	slot, err := v.AddDraft(ctx)
	require.NoError(t, err)

	require.NoError(t, v.Toggle(ctx, slot.ID))
	assert.True(t, v.Buckets().Morning[0].Completed)

	require.NoError(t, v.Toggle(ctx, slot.ID))
	assert.False(t, v.Buckets().Morning[0].Completed)

	assert.Equal(t, []bool{false, true}, src.toggleArgs)

	require.ErrorIs(t, v.Toggle(ctx, "unknown"), app.ErrNotFound)
}

func TestTodoView_Progress(t *testing.T) {
	ctx := context.Background()
	src := &fakeTodos{}
	v := loadedTodoView(t, src)

	done, total, percent := v.Progress(entities.PeriodEvening)
	assert.Zero(t, done)
	assert.Zero(t, total)
	assert.Zero(t, percent, "0 of 0 is 0%")

	for _, text := range []string{"a", "b", "c"} {
		v.SetDraft(text)
		_, err := v.AddDraft(ctx)
		require.NoError(t, err)
	}
	require.NoError(t, v.Toggle(ctx, v.Buckets().Morning[0].ID))

	done, total, percent = v.Progress(entities.PeriodMorning)
	assert.Equal(t, 1, done)
	assert.Equal(t, 3, total)
	assert.Equal(t, 33, percent)
}

func TestTodoView_Scenario(t *testing.T) {
	ctx := context.Background()
	src := &fakeTodos{}
	v := loadedTodoView(t, src)
	require.Empty(t, v.Buckets().Morning)

	require.NoError(t, v.Open(entities.PeriodMorning))
	v.SetDraft("Review PR")
	s1, err := v.AddDraft(ctx)
	require.NoError(t, err)
	assert.False(t, s1.Completed)

	require.NoError(t, v.Toggle(ctx, s1.ID))
	assert.True(t, v.Buckets().Morning[0].Completed)

	require.NoError(t, v.Remove(ctx, s1.ID))
	assert.Empty(t, v.Buckets().Morning)

	require.NoError(t, v.Remove(ctx, s1.ID), "already removed is a no-op")
}

func TestTodoView_Closed(t *testing.T) {
	ctx := context.Background()
	v := loadedTodoView(t, &fakeTodos{})
	v.Close()

	require.ErrorIs(t, v.Load(ctx), view.ErrClosed)
	require.ErrorIs(t, v.Refresh(ctx), view.ErrClosed)
	_, err := v.AddDraft(ctx)
	require.ErrorIs(t, err, view.ErrClosed)
	require.ErrorIs(t, v.Toggle(ctx, "s1"), view.ErrClosed)
	require.ErrorIs(t, v.Remove(ctx, "s1"), view.ErrClosed)
}
