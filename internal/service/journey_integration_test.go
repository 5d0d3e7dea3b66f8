package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/bluecal/internal/notify"
	"github.com/alexanderramin/bluecal/internal/store"
	"github.com/alexanderramin/bluecal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full user journey: capture a note, promote it, schedule it, render the
// day, miss it, sweep it forward, then back everything up and restore.
func TestJourney_CaptureToBackup(t *testing.T) {
	ctx := context.Background()
	backend := testutil.NewTestKV(t)

	items, err := store.NewItemStore(ctx, backend)
	require.NoError(t, err)
	inbox, err := store.NewInboxStore(ctx, backend)
	require.NoError(t, err)
	settings, err := store.NewSettingsStore(ctx, backend)
	require.NoError(t, err)

	rec := &notify.Recorder{}
	planner := NewPlannerService(items, settings, rec)
	inboxSvc := NewInboxService(inbox, items)
	backupSvc := NewBackupService(items, inbox, settings, rec)

	// Capture and promote.
	require.NoError(t, inboxSvc.Add(ctx, "prepare quarterly review"))
	task, err := inboxSvc.Promote(ctx, 0)
	require.NoError(t, err)

	backlog, err := planner.Backlog(ctx)
	require.NoError(t, err)
	require.Len(t, backlog, 1)

	// Schedule it onto a day and render the timeline.
	require.NoError(t, planner.Update(ctx, task.ID, store.Patch{
		Date:      store.StrPtr("2026-03-02"),
		StartTime: store.StrPtr("14:00"),
		Duration:  store.IntPtr(90),
	}))

	view, err := planner.Day(ctx, "2026-03-02")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 14.0, view.Placements[task.ID].StartHour)

	backlog, err = planner.Backlog(ctx)
	require.NoError(t, err)
	assert.Empty(t, backlog, "scheduling removes the task from the backlog")

	// The day passes without completion; the sweep moves it forward.
	now := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	moved, err := planner.SweepMissed(ctx, now)
	require.NoError(t, err)
	require.Len(t, moved, 1)

	got, err := planner.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", got.Date)
	assert.True(t, got.Rescheduled)

	// Complete it, export, and restore into a fresh planner.
	_, err = planner.ToggleComplete(ctx, task.ID)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "journey.json")
	_, err = backupSvc.Export(ctx, path)
	require.NoError(t, err)

	backend2 := testutil.NewTestKV(t)
	items2, err := store.NewItemStore(ctx, backend2)
	require.NoError(t, err)
	inbox2, err := store.NewInboxStore(ctx, backend2)
	require.NoError(t, err)
	settings2, err := store.NewSettingsStore(ctx, backend2)
	require.NoError(t, err)
	restoreSvc := NewBackupService(items2, inbox2, settings2, &notify.Recorder{})

	require.NoError(t, restoreSvc.Import(ctx, path))
	restored, ok := items2.Find(task.ID)
	require.True(t, ok)
	assert.True(t, restored.Completed)
	assert.Equal(t, "2026-03-04", restored.Date)
}
