// Package recur materializes recurring templates into concrete per-date
// instances. Expansion is idempotent for a given date and runs whenever
// the active date changes.
package recur

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/store"
	"github.com/google/uuid"
)

// Expander appends template instances to the item store.
type Expander struct {
	items *store.ItemStore
}

// NewExpander creates an Expander over the given store.
func NewExpander(items *store.ItemStore) *Expander {
	return &Expander{items: items}
}

// Expand ensures every template due on date has a concrete instance.
// An item with the same title already on that date suppresses the
// template, so repeated calls for one date are no-ops. Returns the
// instances it created.
func (e *Expander) Expand(ctx context.Context, date string) ([]domain.Item, error) {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("expanding recurring items: %w", err)
	}
	weekday := day.Weekday()

	templates := e.items.Query(func(it domain.Item) bool { return it.IsTemplate() })

	var created []domain.Item
	for _, tmpl := range templates {
		title := tmpl.Title
		exists := e.items.Query(func(it domain.Item) bool {
			return it.Title == title && it.Date == date
		})
		if len(exists) > 0 {
			continue
		}
		if !due(tmpl, weekday) {
			continue
		}

		inst := tmpl.Instantiate(uuid.New().String(), date)
		if _, err := e.items.Create(ctx, inst); err != nil {
			return created, fmt.Errorf("materializing %q for %s: %w", tmpl.Title, date, err)
		}
		created = append(created, inst)
	}
	return created, nil
}

// due reports whether a template's rule matches the given weekday.
// A weekly template without a reference date never matches.
func due(tmpl domain.Item, weekday time.Weekday) bool {
	switch tmpl.Repeat {
	case domain.RepeatDaily:
		return true
	case domain.RepeatWeekly:
		if tmpl.Date == "" {
			return false
		}
		ref, err := time.Parse(domain.DateLayout, tmpl.Date)
		if err != nil {
			return false
		}
		return ref.Weekday() == weekday
	case domain.RepeatWeekday:
		return weekday >= time.Monday && weekday <= time.Friday
	default:
		return false
	}
}
