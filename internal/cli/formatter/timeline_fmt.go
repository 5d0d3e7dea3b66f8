package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/timeline"
)

// Default visible day window when nothing is scheduled outside it.
const (
	dayWindowStart = 7.0
	dayWindowEnd   = 19.0

	slotHours = 0.5
	laneWidth = 20
)

var laneStyles = []func(string) string{
	func(s string) string { return StyleBlue.Render(s) },
	func(s string) string { return StyleGreen.Render(s) },
	func(s string) string { return StylePurple.Render(s) },
	func(s string) string { return StyleYellow.Render(s) },
}

// FormatDayTimeline renders a day's scheduled items as an hour grid.
// Overlapping items occupy side-by-side lanes; the current time is
// marked when the rendered date is today.
func FormatDayTimeline(date string, items []domain.Item, placements map[string]timeline.Placement, now time.Time) string {
	if len(placements) == 0 {
		return RenderBox(HumanDate(date, now), Dim("Nothing scheduled."))
	}

	byID := make(map[string]domain.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	lanes := 1
	first, last := dayWindowStart, dayWindowEnd
	for _, p := range placements {
		if p.Columns > lanes {
			lanes = p.Columns
		}
		if p.StartHour < first {
			first = math.Floor(p.StartHour)
		}
		if p.EndHour > last {
			last = math.Ceil(p.EndHour)
		}
	}

	nowOffset := -1.0
	if date == now.Format(domain.DateLayout) {
		nowOffset = timeline.NowOffset(now)
	}

	var b strings.Builder
	for slot := first; slot < last; slot += slotHours {
		b.WriteString(slotLabel(slot))
		for lane := 0; lane < lanes; lane++ {
			b.WriteString(laneCell(slot, lane, placements, byID))
		}
		if nowOffset >= slot && nowOffset < slot+slotHours {
			b.WriteString(StyleRed.Render(" ◀ now"))
		}
		b.WriteString("\n")
	}

	return RenderBox(HumanDate(date, now), strings.TrimRight(b.String(), "\n"))
}

// slotLabel renders the clock column; only full hours get a label.
func slotLabel(slot float64) string {
	if slot != math.Trunc(slot) {
		return StyleDim.Render("      ")
	}
	return StyleDim.Render(fmt.Sprintf("%02d:00 ", int(slot)))
}

// laneCell renders one lane's cell for one slot: the item title on its
// first slot, a continuation bar while it runs, blanks otherwise.
func laneCell(slot float64, lane int, placements map[string]timeline.Placement, byID map[string]domain.Item) string {
	style := laneStyles[lane%len(laneStyles)]

	for id, p := range placements {
		if p.Column != lane || slot < p.StartHour-slotHours/2 || slot >= p.EndHour {
			continue
		}
		if d := slot - p.StartHour; d >= -slotHours/2 && d < slotHours/2 {
			it := byID[id]
			title := it.Title
			if it.Completed {
				title = "✔ " + title
			}
			return style("▐ ") + padCell(title, laneWidth-2, it.Completed)
		}
		return style("▐ ") + strings.Repeat(" ", laneWidth-2)
	}
	return strings.Repeat(" ", laneWidth)
}

func padCell(title string, width int, dim bool) string {
	runes := []rune(title)
	if len(runes) > width {
		runes = append(runes[:width-1], '…')
	}
	cell := string(runes) + strings.Repeat(" ", width-len(runes))
	if dim {
		return StyleDim.Render(cell)
	}
	return StyleFg.Render(cell)
}
