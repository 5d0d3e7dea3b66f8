// Package reschedule moves missed scheduled items forward: anything
// dated before today, not completed, and carrying a start time is pushed
// to tomorrow and flagged.
package reschedule

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/notify"
	"github.com/alexanderramin/bluecal/internal/store"
)

// Sweeper applies the missed-task policy on a periodic trigger.
type Sweeper struct {
	items    *store.ItemStore
	settings *store.SettingsStore
	notifier notify.Notifier
}

// NewSweeper creates a Sweeper.
func NewSweeper(items *store.ItemStore, settings *store.SettingsStore, notifier notify.Notifier) *Sweeper {
	return &Sweeper{items: items, settings: settings, notifier: notifier}
}

// Sweep reschedules every missed item to tomorrow. Runs only when the
// auto-reschedule setting is on. Moving an already-future item never
// happens because of the date comparison, so repeated sweeps are safe.
// Returns the items it moved.
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) ([]domain.Item, error) {
	cfg := s.settings.Get()
	if !cfg.AutoReschedule {
		return nil, nil
	}

	today := now.Format(domain.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(domain.DateLayout)

	missed := s.items.Query(func(it domain.Item) bool {
		return it.Date != "" && it.Date < today && !it.Completed && it.Scheduled()
	})

	var moved []domain.Item
	for _, it := range missed {
		patch := store.Patch{
			Date:        store.StrPtr(tomorrow),
			Rescheduled: store.BoolPtr(true),
		}
		if err := s.items.Update(ctx, it.ID, patch); err != nil {
			return moved, fmt.Errorf("rescheduling %q: %w", it.Title, err)
		}
		it.Date = tomorrow
		it.Rescheduled = true
		moved = append(moved, it)

		if cfg.NotifyMissedTasks {
			s.notifier.Notify("Missed task", fmt.Sprintf("%q was rescheduled to tomorrow", it.Title))
		}
	}
	return moved, nil
}
