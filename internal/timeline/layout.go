// Package timeline lays a day's scheduled items out into non-overlapping
// visual columns. The packing is deterministic: it depends only on each
// item's (start, duration) pair and, for identical pairs, on input order.
package timeline

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidSchedule marks an item whose start time or duration cannot
// be laid out. The item is skipped; the rest of the day still renders.
var ErrInvalidSchedule = errors.New("invalid schedule")

// ScheduledItem is the layout engine's view of an item: identity plus
// the two fields the packing depends on.
type ScheduledItem struct {
	ID        string
	StartTime string
	Duration  int
}

// Placement is one item's computed lane assignment. Columns is the
// day-wide lane count, shared by every placed item; lane width is
// 100/Columns percent.
type Placement struct {
	Column    int
	Columns   int
	StartHour float64
	EndHour   float64
}

// Skipped records an item the layout rejected and why.
type Skipped struct {
	ID  string
	Err error
}

type span struct {
	id         string
	start, end float64
}

// Layout assigns each schedulable item a column so that no two items in
// the same column overlap in time. Items are sorted by start (stable, so
// equal starts keep input order) and packed greedily into the first
// column whose last occupant ends at or before the item's start.
func Layout(items []ScheduledItem) (map[string]Placement, []Skipped) {
	spans := make([]span, 0, len(items))
	var skipped []Skipped
	for _, it := range items {
		h, m, err := ParseClock(it.StartTime)
		if err != nil {
			skipped = append(skipped, Skipped{ID: it.ID, Err: fmt.Errorf("%w: %v", ErrInvalidSchedule, err)})
			continue
		}
		if it.Duration <= 0 {
			skipped = append(skipped, Skipped{ID: it.ID, Err: fmt.Errorf("%w: duration %d", ErrInvalidSchedule, it.Duration)})
			continue
		}
		start := float64(h) + float64(m)/60
		spans = append(spans, span{id: it.ID, start: start, end: start + float64(it.Duration)/60})
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	// Greedy first-fit: columns remember only their last occupant's end.
	// Back-to-back items (end == next start) share a column.
	type col struct {
		end  float64
		rows []span
	}
	var cols []col
	colOf := make(map[string]int, len(spans))
	for _, sp := range spans {
		placed := false
		for i := range cols {
			if sp.start >= cols[i].end {
				cols[i].rows = append(cols[i].rows, sp)
				cols[i].end = sp.end
				colOf[sp.id] = i
				placed = true
				break
			}
		}
		if !placed {
			cols = append(cols, col{end: sp.end, rows: []span{sp}})
			colOf[sp.id] = len(cols) - 1
		}
	}

	placements := make(map[string]Placement, len(spans))
	for _, sp := range spans {
		placements[sp.id] = Placement{
			Column:    colOf[sp.id],
			Columns:   len(cols),
			StartHour: sp.start,
			EndHour:   sp.end,
		}
	}
	return placements, skipped
}
