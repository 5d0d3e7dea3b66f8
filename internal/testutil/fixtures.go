package testutil

import (
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/google/uuid"
)

// Item options
type ItemOption func(*domain.Item)

func WithType(t domain.ItemType) ItemOption {
	return func(it *domain.Item) {
		it.Type = t
	}
}

func WithDate(date string) ItemOption {
	return func(it *domain.Item) {
		it.Date = date
	}
}

func WithSchedule(start string, durationMin int) ItemOption {
	return func(it *domain.Item) {
		it.StartTime = start
		it.Duration = durationMin
	}
}

func WithRepeat(r domain.Repeat) ItemOption {
	return func(it *domain.Item) {
		it.Repeat = r
	}
}

func WithCompleted() ItemOption {
	return func(it *domain.Item) {
		it.Completed = true
	}
}

func WithSubtasks(titles ...string) ItemOption {
	return func(it *domain.Item) {
		for _, title := range titles {
			it.Subtasks = append(it.Subtasks, domain.Subtask{Title: title})
		}
	}
}

func WithNotes(notes string) ItemOption {
	return func(it *domain.Item) {
		it.Notes = notes
	}
}

func NewTestItem(title string, opts ...ItemOption) domain.Item {
	now := time.Now().UTC()
	it := domain.Item{
		ID:        uuid.New().String(),
		Type:      domain.TypeTask,
		Title:     title,
		Repeat:    domain.RepeatNone,
		Reminder:  domain.ReminderNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// NewTestNote builds an inbox note with a fixed capture time.
func NewTestNote(text string) domain.InboxNote {
	return domain.InboxNote{Text: text, Timestamp: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
}
