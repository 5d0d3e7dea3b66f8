package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/focus"
	"github.com/alexanderramin/bluecal/internal/notify"
	"github.com/alexanderramin/bluecal/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pressKey(t *testing.T, m appModel, key string) (appModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(keyMsg(key))
	next, ok := updated.(appModel)
	require.True(t, ok)
	return next, cmd
}

func TestAppModel_DayNavigation(t *testing.T) {
	m := newAppModel(setupApp(t))
	m.activeDate = "2026-03-02"

	m, cmd := pressKey(t, m, "l")
	assert.Equal(t, "2026-03-03", m.activeDate)
	assert.NotNil(t, cmd, "day change reloads the timeline")

	m, _ = pressKey(t, m, "h")
	m, _ = pressKey(t, m, "h")
	assert.Equal(t, "2026-03-01", m.activeDate)

	m, _ = pressKey(t, m, "t")
	assert.Equal(t, time.Now().Format(domain.DateLayout), m.activeDate)
}

func TestAppModel_PaneCycle(t *testing.T) {
	m := newAppModel(setupApp(t))
	require.Equal(t, paneTimeline, m.activePane)

	var updated tea.Model
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(appModel)
	assert.Equal(t, paneSidebar, m.activePane)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(appModel)
	assert.Equal(t, paneInbox, m.activePane)
}

func TestAppModel_SelectionClamped(t *testing.T) {
	m := newAppModel(setupApp(t))
	m.activePane = paneSidebar
	m.sidebar = []domain.Item{{ID: "a", Title: "One"}, {ID: "b", Title: "Two"}}

	m, _ = pressKey(t, m, "j")
	m, _ = pressKey(t, m, "j")
	m, _ = pressKey(t, m, "j")
	assert.Equal(t, 1, m.selected, "cursor stops at the last item")

	m, _ = pressKey(t, m, "k")
	m, _ = pressKey(t, m, "k")
	m, _ = pressKey(t, m, "k")
	assert.Equal(t, 0, m.selected)
}

func TestAppModel_FocusTimerKeys(t *testing.T) {
	m := newAppModel(setupApp(t))
	require.Equal(t, focus.Idle, m.timer.State())

	m, cmd := pressKey(t, m, "s")
	assert.Equal(t, focus.Running, m.timer.State())
	assert.NotNil(t, cmd, "starting schedules the first tick")

	m, _ = pressKey(t, m, "s")
	assert.Equal(t, focus.Paused, m.timer.State())

	m, _ = pressKey(t, m, "r")
	assert.Equal(t, focus.Idle, m.timer.State())
	assert.Equal(t, focus.DefaultPresetMin*60, m.timer.Remaining())
}

func TestAppModel_StaleFocusTickIgnored(t *testing.T) {
	m := newAppModel(setupApp(t))

	run := m.timer.Start()
	m.timer.Pause()

	before := m.timer.Remaining()
	updated, _ := m.Update(focusTickMsg{run: run})
	m = updated.(appModel)
	assert.Equal(t, before, m.timer.Remaining(), "tick from a superseded run is dropped")
}

func TestAppModel_FocusTickCountsDown(t *testing.T) {
	m := newAppModel(setupApp(t))
	run := m.timer.Start()

	updated, cmd := m.Update(focusTickMsg{run: run})
	m = updated.(appModel)
	assert.Equal(t, focus.DefaultPresetMin*60-1, m.timer.Remaining())
	assert.NotNil(t, cmd, "a running timer schedules the next tick")
}

func TestAppModel_FocusCompletionNotifies(t *testing.T) {
	app := setupApp(t)
	rec := &notify.Recorder{}
	app.Notifier = rec

	m := newAppModel(app)
	m.timer.SetPreset(1)
	run := m.timer.Start()

	var model tea.Model = m
	for i := 0; i < 60; i++ {
		model, _ = model.(appModel).Update(focusTickMsg{run: run})
	}
	m = model.(appModel)

	assert.Equal(t, focus.Idle, m.timer.State())
	assert.Contains(t, m.status, "complete")
	require.Len(t, rec.Events, 1)
	assert.Equal(t, "Focus complete", rec.Events[0].Title)
}

func TestAppModel_DayLoadedErrorShownInStatus(t *testing.T) {
	m := newAppModel(setupApp(t))

	updated, _ := m.Update(dayLoadedMsg{err: context.DeadlineExceeded})
	m = updated.(appModel)
	assert.Contains(t, m.status, "deadline")
}

func TestAppModel_FormOpenAndAbort(t *testing.T) {
	m := newAppModel(setupApp(t))

	m, _ = pressKey(t, m, "n")
	require.NotNil(t, m.form)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(appModel)
	assert.Nil(t, m.form, "esc closes the form without creating")
}

func TestAppModel_ViewRendersPanes(t *testing.T) {
	app := setupApp(t)
	_, err := app.Planner.Create(context.Background(), testutil.NewTestItem("Visible task"))
	require.NoError(t, err)

	m := newAppModel(app)
	view, err := app.Planner.Day(context.Background(), m.activeDate)
	require.NoError(t, err)
	m.day = view
	backlog, err := app.Planner.Backlog(context.Background())
	require.NoError(t, err)
	m.sidebar = backlog

	out := m.View()
	assert.Contains(t, out, "Visible task")
	assert.Contains(t, out, "Backlog")
	assert.Contains(t, out, "FOCUS")
	assert.Contains(t, out, "q: quit")
}

func TestAppModel_SweptRefreshesDay(t *testing.T) {
	m := newAppModel(setupApp(t))

	updated, cmd := m.Update(sweptMsg{moved: 2})
	m = updated.(appModel)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.status, "moved")
}
