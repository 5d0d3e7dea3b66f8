package service

import (
	"context"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/store"
	"github.com/alexanderramin/bluecal/internal/timeline"
)

// DayView is everything the timeline pane needs for one date: the
// scheduled items, their lane placements, and the items the layout had
// to skip.
type DayView struct {
	Date       string
	Items      []domain.Item
	Placements map[string]timeline.Placement
	Skipped    []timeline.Skipped
}

type PlannerService interface {
	Create(ctx context.Context, it domain.Item) (string, error)
	Get(ctx context.Context, id string) (domain.Item, error)
	Update(ctx context.Context, id string, patch store.Patch) error
	Delete(ctx context.Context, id string) error
	ToggleComplete(ctx context.Context, id string) (domain.Item, error)

	// Day materializes recurring instances for date, then lays out its
	// scheduled items. Called on every active-date change.
	Day(ctx context.Context, date string) (*DayView, error)

	List(ctx context.Context) ([]domain.Item, error)
	Backlog(ctx context.Context) ([]domain.Item, error)
	Habits(ctx context.Context) ([]domain.Item, error)
	Projects(ctx context.Context) ([]domain.Item, error)

	// SweepMissed applies the missed-task reschedule policy.
	SweepMissed(ctx context.Context, now time.Time) ([]domain.Item, error)

	// CreateFromTranscript parses a voice transcript into a task.
	// ok=false means no usable title remained and nothing was created.
	CreateFromTranscript(ctx context.Context, transcript, activeDate string, now time.Time) (domain.Item, bool, error)
}

type InboxService interface {
	Add(ctx context.Context, text string) error
	Notes(ctx context.Context) ([]domain.InboxNote, error)
	Delete(ctx context.Context, idx int) error

	// Promote removes the note and creates an unscheduled task from it.
	Promote(ctx context.Context, idx int) (domain.Item, error)
}

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

type BackupService interface {
	// Export writes a snapshot and returns the path written.
	Export(ctx context.Context, path string) (string, error)

	// Import replaces tasks, inbox, and settings wholesale from path.
	Import(ctx context.Context, path string) error
}
