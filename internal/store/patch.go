package store

import "github.com/alexanderramin/bluecal/internal/domain"

// Patch is a partial item update. Nil fields keep the item's current
// value; non-nil fields replace it, including replacement with the zero
// value (e.g. clearing a start time unschedules the item).
type Patch struct {
	Title       *string
	Notes       *string
	Date        *string
	StartTime   *string
	Duration    *int
	Completed   *bool
	Repeat      *domain.Repeat
	Reminder    *domain.Reminder
	Color       *string
	Icon        *string
	Subtasks    *[]domain.Subtask
	Rescheduled *bool
}

// ApplyTo merges the patch into a copy of it and returns the result.
func (p Patch) ApplyTo(it domain.Item) domain.Item {
	it.Title = strFromPtr(it.Title, p.Title)
	it.Notes = strFromPtr(it.Notes, p.Notes)
	it.Date = strFromPtr(it.Date, p.Date)
	it.StartTime = strFromPtr(it.StartTime, p.StartTime)
	if p.Duration != nil {
		it.Duration = *p.Duration
	}
	if p.Completed != nil {
		it.Completed = *p.Completed
	}
	if p.Repeat != nil {
		it.Repeat = *p.Repeat
	}
	if p.Reminder != nil {
		it.Reminder = *p.Reminder
	}
	it.Color = strFromPtr(it.Color, p.Color)
	it.Icon = strFromPtr(it.Icon, p.Icon)
	if p.Subtasks != nil {
		it.Subtasks = append([]domain.Subtask(nil), (*p.Subtasks)...)
	}
	if p.Rescheduled != nil {
		it.Rescheduled = *p.Rescheduled
	}
	return it
}

func strFromPtr(current string, p *string) string {
	if p != nil {
		return *p
	}
	return current
}

// StrPtr, IntPtr, and BoolPtr build patch fields from literals.
func StrPtr(s string) *string { return &s }
func IntPtr(i int) *int       { return &i }
func BoolPtr(b bool) *bool    { return &b }
