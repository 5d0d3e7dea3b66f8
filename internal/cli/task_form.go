package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/bluecal/internal/cli/formatter"
	"github.com/alexanderramin/bluecal/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// taskForm wraps a huh form for creating an item from inside the TUI.
type taskForm struct {
	form *huh.Form

	title    string
	typeStr  string
	date     string
	at       string
	duration string
	repeat   string
}

func newTaskForm(activeDate string) *taskForm {
	f := &taskForm{
		typeStr: string(domain.TypeTask),
		date:    activeDate,
		repeat:  string(domain.RepeatNone),
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Task", string(domain.TypeTask)),
					huh.NewOption("Habit", string(domain.TypeHabit)),
					huh.NewOption("Project", string(domain.TypeProject)),
				).
				Value(&f.typeStr),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD, blank for backlog").
				Value(&f.date).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Start time").
				Placeholder("HH:MM, blank for all-day").
				Value(&f.at).
				Validate(validateOptionalClock),
			huh.NewInput().
				Title("Minutes").
				Placeholder("30").
				Value(&f.duration).
				Validate(validateOptionalInt),
			huh.NewSelect[string]().
				Title("Repeat").
				Options(
					huh.NewOption("None", string(domain.RepeatNone)),
					huh.NewOption("Daily", string(domain.RepeatDaily)),
					huh.NewOption("Weekly", string(domain.RepeatWeekly)),
					huh.NewOption("Weekdays", string(domain.RepeatWeekday)),
				).
				Value(&f.repeat),
		),
	).WithTheme(bluecalHuhTheme()).WithShowHelp(false)

	return f
}

func (f *taskForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update feeds a message to the form; done reports whether the form has
// finished (submitted or aborted).
func (f *taskForm) Update(msg tea.Msg) (done bool, cmd tea.Cmd) {
	model, cmd := f.form.Update(msg)
	if fm, ok := model.(*huh.Form); ok {
		f.form = fm
	}
	return f.form.State == huh.StateCompleted || f.form.State == huh.StateAborted, cmd
}

// Result builds the item from the submitted values. ok is false when the
// form was aborted.
func (f *taskForm) Result() (domain.Item, bool) {
	if f.form.State != huh.StateCompleted {
		return domain.Item{}, false
	}

	duration := 0
	if f.duration != "" {
		duration, _ = strconv.Atoi(f.duration)
	}
	if f.at != "" && duration == 0 {
		duration = 30
	}

	return domain.Item{
		Type:      domain.ItemType(f.typeStr),
		Title:     f.title,
		Date:      f.date,
		StartTime: f.at,
		Duration:  duration,
		Repeat:    domain.Repeat(f.repeat),
	}, true
}

func (f *taskForm) View() string {
	return formatter.RenderBox("New item", f.form.View())
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("expected a positive number")
	}
	return nil
}

func bluecalHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
