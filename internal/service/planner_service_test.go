package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/notify"
	"github.com/alexanderramin/bluecal/internal/store"
	"github.com/alexanderramin/bluecal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPlannerService(t *testing.T) (PlannerService, *store.ItemStore, *notify.Recorder) {
	t.Helper()
	ctx := context.Background()
	backend := testutil.NewTestKV(t)

	items, err := store.NewItemStore(ctx, backend)
	require.NoError(t, err)
	settings, err := store.NewSettingsStore(ctx, backend)
	require.NoError(t, err)

	rec := &notify.Recorder{}
	return NewPlannerService(items, settings, rec), items, rec
}

func TestPlannerService_CreateAndGet(t *testing.T) {
	svc, _, _ := setupPlannerService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, testutil.NewTestItem("Write report"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Write report", got.Title)
}

func TestPlannerService_GetUnknownID(t *testing.T) {
	svc, _, _ := setupPlannerService(t)

	_, err := svc.Get(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPlannerService_ToggleComplete(t *testing.T) {
	svc, _, rec := setupPlannerService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, testutil.NewTestItem("Stretch"))
	require.NoError(t, err)

	got, err := svc.ToggleComplete(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.Len(t, rec.Events, 1)
	assert.Equal(t, "Task completed", rec.Events[0].Title)

	got, err = svc.ToggleComplete(ctx, id)
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Len(t, rec.Events, 1, "un-completing should not notify")
}

func TestPlannerService_ToggleComplete_NotificationsOff(t *testing.T) {
	ctx := context.Background()
	backend := testutil.NewTestKV(t)
	items, err := store.NewItemStore(ctx, backend)
	require.NoError(t, err)
	settings, err := store.NewSettingsStore(ctx, backend)
	require.NoError(t, err)

	cfg := settings.Get()
	cfg.NotifyTaskStart = false
	require.NoError(t, settings.Save(ctx, cfg))

	rec := &notify.Recorder{}
	svc := NewPlannerService(items, settings, rec)

	id, err := svc.Create(ctx, testutil.NewTestItem("Quiet task"))
	require.NoError(t, err)
	_, err = svc.ToggleComplete(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, rec.Events)
}

func TestPlannerService_Day_LaysOutScheduledItems(t *testing.T) {
	svc, _, _ := setupPlannerService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, testutil.NewTestItem("Deep work",
		testutil.WithDate("2026-03-02"), testutil.WithSchedule("09:00", 60)))
	require.NoError(t, err)
	b, err := svc.Create(ctx, testutil.NewTestItem("Standup",
		testutil.WithDate("2026-03-02"), testutil.WithSchedule("09:30", 30)))
	require.NoError(t, err)
	_, err = svc.Create(ctx, testutil.NewTestItem("Other day",
		testutil.WithDate("2026-03-03"), testutil.WithSchedule("09:00", 30)))
	require.NoError(t, err)

	view, err := svc.Day(ctx, "2026-03-02")
	require.NoError(t, err)
	assert.Len(t, view.Items, 2)
	assert.Empty(t, view.Skipped)

	pa, pb := view.Placements[a], view.Placements[b]
	assert.NotEqual(t, pa.Column, pb.Column, "overlapping items share a column")
	assert.Equal(t, 2, pa.Columns)
}

func TestPlannerService_Day_MaterializesRecurringInstances(t *testing.T) {
	svc, items, _ := setupPlannerService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testutil.NewTestItem("Morning run",
		testutil.WithType(domain.TypeHabit), testutil.WithRepeat(domain.RepeatDaily),
		testutil.WithSchedule("07:00", 30)))
	require.NoError(t, err)

	view, err := svc.Day(ctx, "2026-03-05")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Morning run", view.Items[0].Title)
	assert.Equal(t, "2026-03-05", view.Items[0].Date)

	// Second render of the same day must not duplicate the instance.
	view, err = svc.Day(ctx, "2026-03-05")
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 2, items.Len(), "template plus one instance")
}

func TestPlannerService_SidebarFilters(t *testing.T) {
	svc, _, _ := setupPlannerService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testutil.NewTestItem("Backlog task"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, testutil.NewTestItem("Scheduled task",
		testutil.WithDate("2026-03-02"), testutil.WithSchedule("10:00", 30)))
	require.NoError(t, err)
	_, err = svc.Create(ctx, testutil.NewTestItem("Done task", testutil.WithCompleted()))
	require.NoError(t, err)
	_, err = svc.Create(ctx, testutil.NewTestItem("Meditate", testutil.WithType(domain.TypeHabit)))
	require.NoError(t, err)
	_, err = svc.Create(ctx, testutil.NewTestItem("Kitchen remodel", testutil.WithType(domain.TypeProject)))
	require.NoError(t, err)

	backlog, err := svc.Backlog(ctx)
	require.NoError(t, err)
	require.Len(t, backlog, 1)
	assert.Equal(t, "Backlog task", backlog[0].Title)

	habits, err := svc.Habits(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, "Meditate", habits[0].Title)

	projects, err := svc.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Kitchen remodel", projects[0].Title)
}

func TestPlannerService_SweepMissed(t *testing.T) {
	svc, _, rec := setupPlannerService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	id, err := svc.Create(ctx, testutil.NewTestItem("Overdue",
		testutil.WithDate("2026-03-08"), testutil.WithSchedule("09:00", 30)))
	require.NoError(t, err)

	moved, err := svc.SweepMissed(ctx, now)
	require.NoError(t, err)
	require.Len(t, moved, 1)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-11", got.Date)
	assert.True(t, got.Rescheduled)
	require.Len(t, rec.Events, 1)
	assert.Equal(t, "Missed task", rec.Events[0].Title)
}

func TestPlannerService_CreateFromTranscript(t *testing.T) {
	svc, _, rec := setupPlannerService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	it, ok, err := svc.CreateFromTranscript(ctx, "dentist tomorrow at 3pm for 1 hour", "2026-03-02", now)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dentist", it.Title)
	assert.Equal(t, "2026-03-03", it.Date)
	assert.Equal(t, "15:00", it.StartTime)
	assert.Equal(t, 60, it.Duration)
	assert.Equal(t, "mic", it.Icon)
	assert.Contains(t, it.Notes, "dentist tomorrow at 3pm for 1 hour")

	got, err := svc.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, it.Title, got.Title)
	require.Len(t, rec.Events, 1)
	assert.Equal(t, "Task created", rec.Events[0].Title)
}

func TestPlannerService_CreateFromTranscript_NoTitle(t *testing.T) {
	svc, items, _ := setupPlannerService(t)
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	_, ok, err := svc.CreateFromTranscript(context.Background(), "tomorrow at 3pm", "2026-03-02", now)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, items.Len())
}
