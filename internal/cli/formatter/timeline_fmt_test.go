package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDayTimeline_Empty(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	out := FormatDayTimeline("2026-03-02", nil, nil, now)
	assert.Contains(t, out, "Nothing scheduled.")
}

func TestFormatDayTimeline_OverlapRendersSideBySide(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 40, 0, 0, time.UTC)
	items := []domain.Item{
		{ID: "a", Title: "Deep work", StartTime: "09:00", Duration: 60},
		{ID: "b", Title: "Standup", StartTime: "09:30", Duration: 30},
	}
	scheduled := []timeline.ScheduledItem{
		{ID: "a", StartTime: "09:00", Duration: 60},
		{ID: "b", StartTime: "09:30", Duration: 30},
	}
	placements, skipped := timeline.Layout(scheduled)
	require.Empty(t, skipped)

	out := FormatDayTimeline("2026-03-02", items, placements, now)
	assert.Contains(t, out, "Deep work")
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "◀ now")

	// Both titles share the 09:30 row, one per lane.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Standup") {
			assert.NotContains(t, line, "Deep work")
		}
	}
}

func TestFormatDayTimeline_NoNowMarkerOnOtherDays(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 40, 0, 0, time.UTC)
	items := []domain.Item{{ID: "a", Title: "Deep work", StartTime: "09:00", Duration: 60}}
	placements, _ := timeline.Layout([]timeline.ScheduledItem{{ID: "a", StartTime: "09:00", Duration: 60}})

	out := FormatDayTimeline("2026-03-05", items, placements, now)
	assert.NotContains(t, out, "◀ now")
}

func TestFormatDayTimeline_ExpandsWindowForEarlyItems(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	items := []domain.Item{{ID: "a", Title: "Red-eye flight", StartTime: "04:30", Duration: 120}}
	placements, _ := timeline.Layout([]timeline.ScheduledItem{{ID: "a", StartTime: "04:30", Duration: 120}})

	out := FormatDayTimeline("2026-03-02", items, placements, now)
	assert.Contains(t, out, "04:00")
}

func TestRenderProgress(t *testing.T) {
	out := RenderProgress(0.5, 8)
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, filledBlock)
	assert.Contains(t, out, emptyBlock)
}

func TestRenderCountdown(t *testing.T) {
	out := RenderCountdown(0.75, 8, "18:45")
	assert.Contains(t, out, "18:45")
}
