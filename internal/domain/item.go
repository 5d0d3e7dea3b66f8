package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrEmptyTitle rejects a save with a blank title. Callers treat it as a
// silent abort: no item is created or mutated.
var ErrEmptyTitle = errors.New("item title must not be empty")

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)
)

// DateLayout is the calendar-date format used everywhere an item carries a date.
const DateLayout = "2006-01-02"

// Subtask is one checklist entry on a project item.
type Subtask struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Item is a task, habit, or project. Scheduled items carry a date and a
// start time; items without a start time live in the sidebar backlog.
// An item with a non-none Repeat is a template: the recurrence expander
// materializes one concrete instance of it per matching date.
type Item struct {
	ID        string    `json:"id"`
	Type      ItemType  `json:"type"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	Date      string    `json:"date,omitempty"`
	StartTime string    `json:"startTime,omitempty"`
	Duration  int       `json:"duration,omitempty"`
	Completed bool      `json:"completed"`
	Repeat    Repeat    `json:"repeat,omitempty"`
	Reminder  Reminder  `json:"reminder,omitempty"`
	Color     string    `json:"color,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	Subtasks  []Subtask `json:"subtasks,omitempty"`

	// Rescheduled marks an item the missed-task sweep moved off a past date.
	Rescheduled bool `json:"rescheduled,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks the invariants every stored item must satisfy:
// non-empty title, well-formed date and start time, and a positive
// duration whenever a start time is present.
func (it *Item) Validate() error {
	if strings.TrimSpace(it.Title) == "" {
		return ErrEmptyTitle
	}
	if it.Date != "" && !datePattern.MatchString(it.Date) {
		return fmt.Errorf("item date %q is not YYYY-MM-DD", it.Date)
	}
	if it.StartTime != "" {
		if !clockPattern.MatchString(it.StartTime) {
			return fmt.Errorf("item start time %q is not HH:MM", it.StartTime)
		}
		if it.Duration <= 0 {
			return fmt.Errorf("scheduled item %q needs a positive duration, got %d", it.Title, it.Duration)
		}
	}
	return nil
}

// IsTemplate reports whether the item is the source of a recurring series.
func (it *Item) IsTemplate() bool {
	return it.Repeat != "" && it.Repeat != RepeatNone
}

// Scheduled reports whether the item appears on the timeline for its date.
func (it *Item) Scheduled() bool {
	return it.StartTime != ""
}

// Instantiate produces the concrete instance of a template for date.
// The copy gets the given fresh id, the target date, a cleared completion
// flag, and no repeat rule, so instances are never re-expanded.
func (it *Item) Instantiate(id, date string) Item {
	inst := *it
	inst.ID = id
	inst.Date = date
	inst.Completed = false
	inst.Repeat = RepeatNone
	inst.Rescheduled = false
	inst.Subtasks = append([]Subtask(nil), it.Subtasks...)
	return inst
}

// SubtaskProgress returns completed and total subtask counts.
func (it *Item) SubtaskProgress() (done, total int) {
	for _, st := range it.Subtasks {
		if st.Completed {
			done++
		}
	}
	return done, len(it.Subtasks)
}

// DisplayID returns a short identifier for listings.
func (it *Item) DisplayID() string {
	if len(it.ID) >= 8 {
		return it.ID[:8]
	}
	return it.ID
}
