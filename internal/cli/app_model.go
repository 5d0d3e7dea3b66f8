package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/bluecal/internal/cli/formatter"
	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/focus"
	"github.com/alexanderramin/bluecal/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pane identifies which part of the screen owns key input.
type pane int

const (
	paneTimeline pane = iota
	paneSidebar
	paneInbox
	paneFocus
)

// sidebarTab selects which collection the sidebar lists.
type sidebarTab int

const (
	tabBacklog sidebarTab = iota
	tabHabits
	tabProjects
)

var sidebarTabNames = []string{"Backlog", "Habits", "Projects"}

type dayLoadedMsg struct {
	view *service.DayView
	err  error
}

type sidebarLoadedMsg struct {
	items []domain.Item
	err   error
}

type inboxLoadedMsg struct {
	notes []domain.InboxNote
	err   error
}

type sweptMsg struct {
	moved int
	err   error
}

type focusTickMsg struct {
	run int
}

type clockTickMsg struct {
	at time.Time
}

// appModel is the root bubbletea Model for the TUI.
type appModel struct {
	app *App

	width, height int
	activeDate    string
	activePane    pane
	tab           sidebarTab
	quitting      bool
	status        string

	day      *service.DayView
	sidebar  []domain.Item
	inbox    []domain.InboxNote
	selected int

	timer *focus.Timer
	keys  keyMap

	form *taskForm
}

func newAppModel(app *App) appModel {
	return appModel{
		app:        app,
		activeDate: time.Now().Format(domain.DateLayout),
		activePane: paneTimeline,
		timer:      focus.New(),
		keys:       defaultKeyMap(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadDay(),
		m.loadSidebar(),
		m.loadInbox(),
		m.sweep(),
		clockTick(),
	)
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) loadDay() tea.Cmd {
	app, date := m.app, m.activeDate
	return func() tea.Msg {
		view, err := app.Planner.Day(context.Background(), date)
		return dayLoadedMsg{view: view, err: err}
	}
}

func (m appModel) loadSidebar() tea.Cmd {
	app, tab := m.app, m.tab
	return func() tea.Msg {
		ctx := context.Background()
		var items []domain.Item
		var err error
		switch tab {
		case tabHabits:
			items, err = app.Planner.Habits(ctx)
		case tabProjects:
			items, err = app.Planner.Projects(ctx)
		default:
			items, err = app.Planner.Backlog(ctx)
		}
		return sidebarLoadedMsg{items: items, err: err}
	}
}

func (m appModel) loadInbox() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		notes, err := app.Inbox.Notes(context.Background())
		return inboxLoadedMsg{notes: notes, err: err}
	}
}

func (m appModel) sweep() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		moved, err := app.Planner.SweepMissed(context.Background(), time.Now())
		return sweptMsg{moved: len(moved), err: err}
	}
}

func focusTick(run int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return focusTickMsg{run: run}
	})
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return clockTickMsg{at: t}
	})
}

// ── update ───────────────────────────────────────────────────────────────────

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case dayLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.day = msg.view
		return m, nil

	case sidebarLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.sidebar = msg.items
		m.clampSelection()
		return m, nil

	case inboxLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.inbox = msg.notes
		m.clampSelection()
		return m, nil

	case sweptMsg:
		if msg.err == nil && msg.moved > 0 {
			m.status = "moved missed tasks forward"
			return m, m.loadDay()
		}
		return m, nil

	case focusTickMsg:
		if completed := m.timer.Tick(msg.run); completed {
			m.status = "focus session complete"
			if m.app.Notifier != nil {
				m.app.Notifier.Notify("Focus complete", "Time for a break")
			}
			return m, nil
		}
		if m.timer.State() == focus.Running {
			return m, focusTick(msg.run)
		}
		return m, nil

	case clockTickMsg:
		// A minute rolled over: rerun the sweep (a new day may have
		// started) and refresh the timeline's now marker.
		return m, tea.Batch(m.sweep(), m.loadDay(), clockTick())
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextPane):
		m.activePane = (m.activePane + 1) % 4
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.PrevDay):
		return m.shiftDay(-1)
	case key.Matches(msg, m.keys.NextDay):
		return m.shiftDay(1)
	case key.Matches(msg, m.keys.Today):
		m.activeDate = time.Now().Format(domain.DateLayout)
		return m, m.loadDay()

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.selected++
		m.clampSelection()
		return m, nil

	case msg.String() == "1" || msg.String() == "2" || msg.String() == "3":
		if m.activePane == paneSidebar {
			m.tab = sidebarTab(int(msg.String()[0] - '1'))
			m.selected = 0
			return m, m.loadSidebar()
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.form = newTaskForm(m.activeDate)
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Toggle):
		return m.toggleSelected()

	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()

	case key.Matches(msg, m.keys.Promote):
		if m.activePane == paneInbox && m.selected < len(m.inbox) {
			app, idx := m.app, m.selected
			return m, func() tea.Msg {
				if _, err := app.Inbox.Promote(context.Background(), idx); err != nil {
					return inboxLoadedMsg{err: err}
				}
				notes, err := app.Inbox.Notes(context.Background())
				return inboxLoadedMsg{notes: notes, err: err}
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.FocusRun):
		if m.timer.State() == focus.Running {
			m.timer.Pause()
			return m, nil
		}
		run := m.timer.Start()
		return m, focusTick(run)
	case key.Matches(msg, m.keys.FocusStop):
		m.timer.Reset()
		return m, nil
	case key.Matches(msg, m.keys.MoreTime):
		m.timer.SetPreset(m.presetMinutes() + 5)
		return m, nil
	case key.Matches(msg, m.keys.LessTime):
		if min := m.presetMinutes() - 5; min >= 5 {
			m.timer.SetPreset(min)
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) shiftDay(days int) (tea.Model, tea.Cmd) {
	t, err := time.Parse(domain.DateLayout, m.activeDate)
	if err != nil {
		t = time.Now()
	}
	m.activeDate = t.AddDate(0, 0, days).Format(domain.DateLayout)
	return m, m.loadDay()
}

func (m appModel) toggleSelected() (tea.Model, tea.Cmd) {
	it, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	app, id := m.app, it.ID
	return m, tea.Sequence(
		func() tea.Msg {
			_, err := app.Planner.ToggleComplete(context.Background(), id)
			if err != nil {
				return dayLoadedMsg{err: err}
			}
			return nil
		},
		m.loadDay(),
		m.loadSidebar(),
	)
}

func (m appModel) deleteSelected() (tea.Model, tea.Cmd) {
	if m.activePane == paneInbox {
		if m.selected >= len(m.inbox) {
			return m, nil
		}
		app, idx := m.app, m.selected
		return m, func() tea.Msg {
			if err := app.Inbox.Delete(context.Background(), idx); err != nil {
				return inboxLoadedMsg{err: err}
			}
			notes, err := app.Inbox.Notes(context.Background())
			return inboxLoadedMsg{notes: notes, err: err}
		}
	}

	it, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	app, id := m.app, it.ID
	return m, tea.Sequence(
		func() tea.Msg {
			if err := app.Planner.Delete(context.Background(), id); err != nil {
				return dayLoadedMsg{err: err}
			}
			return nil
		},
		m.loadDay(),
		m.loadSidebar(),
	)
}

// selectedItem returns the item under the cursor in the active pane.
func (m appModel) selectedItem() (domain.Item, bool) {
	var items []domain.Item
	switch m.activePane {
	case paneTimeline:
		if m.day != nil {
			items = m.day.Items
		}
	case paneSidebar:
		items = m.sidebar
	default:
		return domain.Item{}, false
	}
	if m.selected < 0 || m.selected >= len(items) {
		return domain.Item{}, false
	}
	return items[m.selected], true
}

func (m *appModel) clampSelection() {
	var n int
	switch m.activePane {
	case paneTimeline:
		if m.day != nil {
			n = len(m.day.Items)
		}
	case paneSidebar:
		n = len(m.sidebar)
	case paneInbox:
		n = len(m.inbox)
	}
	if n == 0 {
		m.selected = 0
	} else if m.selected >= n {
		m.selected = n - 1
	}
}

func (m appModel) presetMinutes() int {
	if m.timer.State() == focus.Idle {
		return m.timer.Remaining() / 60
	}
	return focus.DefaultPresetMin
}

// ── form handling ────────────────────────────────────────────────────────────

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyEsc {
		m.form = nil
		return m, nil
	}

	done, cmd := m.form.Update(msg)
	if !done {
		return m, cmd
	}

	it, ok := m.form.Result()
	m.form = nil
	if !ok {
		return m, nil
	}

	app := m.app
	return m, tea.Sequence(
		func() tea.Msg {
			if _, err := app.Planner.Create(context.Background(), it); err != nil {
				return dayLoadedMsg{err: err}
			}
			return nil
		},
		m.loadDay(),
		m.loadSidebar(),
	)
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	if m.form != nil {
		return m.form.View()
	}

	now := time.Now()

	timelinePane := m.renderTimeline(now)
	side := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSidebar(now),
		m.renderInbox(now),
		m.renderFocus(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, timelinePane, " ", side)

	sections := []string{m.renderWeekBar(now), body, m.renderStatusBar()}
	return strings.Join(sections, "\n")
}

func (m appModel) renderTimeline(now time.Time) string {
	if m.day == nil {
		return formatter.RenderBox("Timeline", formatter.Dim("Loading..."))
	}
	return formatter.FormatDayTimeline(m.day.Date, m.day.Items, m.day.Placements, now)
}

func (m appModel) renderSidebar(now time.Time) string {
	var tabs []string
	for i, name := range sidebarTabNames {
		if sidebarTab(i) == m.tab {
			tabs = append(tabs, formatter.Bold(name))
		} else {
			tabs = append(tabs, formatter.Dim(name))
		}
	}
	header := strings.Join(tabs, formatter.Dim(" · "))

	var b strings.Builder
	b.WriteString(header + "\n\n")
	if len(m.sidebar) == 0 {
		b.WriteString(formatter.Dim("Nothing here."))
	}
	for i, it := range m.sidebar {
		cursor := "  "
		if m.activePane == paneSidebar && i == m.selected {
			cursor = formatter.Bold("> ")
		}
		mark := formatter.Dim("○")
		if it.Completed {
			mark = formatter.Dim("✔")
		}
		b.WriteString(cursor + mark + " " + it.Title + "\n")
	}
	return formatter.RenderBox("", strings.TrimRight(b.String(), "\n"))
}

func (m appModel) renderInbox(now time.Time) string {
	var b strings.Builder
	if len(m.inbox) == 0 {
		b.WriteString(formatter.Dim("Inbox is empty."))
	}
	for i, n := range m.inbox {
		cursor := "  "
		if m.activePane == paneInbox && i == m.selected {
			cursor = formatter.Bold("> ")
		}
		b.WriteString(cursor + n.Text + " " + formatter.Dim(formatter.HumanTimestamp(n.Timestamp, now)) + "\n")
	}
	return formatter.RenderBox("Inbox", strings.TrimRight(b.String(), "\n"))
}

func (m appModel) renderFocus() string {
	var label string
	switch m.timer.State() {
	case focus.Running:
		label = "focusing"
	case focus.Paused:
		label = "paused"
	default:
		label = "s to start"
	}
	bar := formatter.RenderCountdown(1-m.timer.Progress(), 16, m.timer.Display())
	return formatter.RenderBox("Focus", bar+"\n"+formatter.Dim(label))
}

// renderWeekBar shows the active date inside its week, Monday first.
func (m appModel) renderWeekBar(now time.Time) string {
	active, err := time.Parse(domain.DateLayout, m.activeDate)
	if err != nil {
		active = now
	}

	// Walk back to Monday.
	start := active
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, -1)
	}

	var cells []string
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		label := d.Format("Mon 2")
		switch {
		case d.Format(domain.DateLayout) == m.activeDate:
			cells = append(cells, formatter.StyleHeader.Render(label))
		case d.Format(domain.DateLayout) == now.Format(domain.DateLayout):
			cells = append(cells, formatter.StyleGreen.Render(label))
		default:
			cells = append(cells, formatter.Dim(label))
		}
	}
	return " " + strings.Join(cells, formatter.Dim("  |  "))
}

func (m appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.keys.helpBindings() {
		hints = append(hints, b.Help().Key+": "+b.Help().Desc)
	}
	bar := formatter.Dim(strings.Join(hints, "  "))
	if m.status != "" {
		bar += "  " + formatter.StyleYellow.Render(m.status)
	}
	return bar
}
