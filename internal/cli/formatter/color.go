package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TypeBadge returns a colored label for an item type.
func TypeBadge(t domain.ItemType) string {
	switch t {
	case domain.TypeTask:
		return StyleBlue.Render("task")
	case domain.TypeHabit:
		return StyleGreen.Render("habit")
	case domain.TypeProject:
		return StylePurple.Render("project")
	default:
		return StyleDim.Render(string(t))
	}
}

// CompletionPill returns a colored completion indicator.
func CompletionPill(completed bool) string {
	if completed {
		return StyleDim.Render("✔ Done")
	}
	return StyleBlue.Render("○ Open")
}

// RepeatBadge returns a dim recurrence label, or "" for one-off items.
func RepeatBadge(r domain.Repeat) string {
	if r == domain.RepeatNone || r == "" {
		return ""
	}
	return StyleDim.Render("↻ " + string(r))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
