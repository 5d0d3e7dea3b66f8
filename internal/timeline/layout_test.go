package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, start string, duration int) ScheduledItem {
	return ScheduledItem{ID: id, StartTime: start, Duration: duration}
}

func TestLayout_SingleItem(t *testing.T) {
	placements, skipped := Layout([]ScheduledItem{item("a", "09:00", 60)})

	require.Empty(t, skipped)
	require.Len(t, placements, 1)
	p := placements["a"]
	assert.Equal(t, 0, p.Column)
	assert.Equal(t, 1, p.Columns)
	assert.InDelta(t, 9.0, p.StartHour, 1e-9)
	assert.InDelta(t, 10.0, p.EndHour, 1e-9)
}

func TestLayout_OverlapOpensSecondColumn(t *testing.T) {
	// 09:00-10:00, 09:30-10:00 overlapping, 10:00-10:30 back-to-back
	// with the first: two columns total, third item reuses column 0.
	placements, skipped := Layout([]ScheduledItem{
		item("one", "09:00", 60),
		item("two", "09:30", 30),
		item("three", "10:00", 30),
	})

	require.Empty(t, skipped)
	assert.Equal(t, 0, placements["one"].Column)
	assert.Equal(t, 1, placements["two"].Column)
	assert.Equal(t, 0, placements["three"].Column, "end == start shares a lane")
	for _, p := range placements {
		assert.Equal(t, 2, p.Columns)
	}
}

func TestLayout_ColumnCountStableUnderPermutation(t *testing.T) {
	base := []ScheduledItem{
		item("a", "08:00", 90),
		item("b", "08:30", 60),
		item("c", "09:00", 120),
		item("d", "11:00", 30),
		item("e", "11:15", 45),
	}
	perms := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
	}

	want := -1
	for _, perm := range perms {
		shuffled := make([]ScheduledItem, len(base))
		for i, j := range perm {
			shuffled[i] = base[j]
		}
		placements, skipped := Layout(shuffled)
		require.Empty(t, skipped)
		count := placements["a"].Columns
		if want == -1 {
			want = count
		}
		assert.Equal(t, want, count, "column count must not depend on input order")
	}
}

func TestLayout_IdenticalSpansKeepInputOrder(t *testing.T) {
	placements, skipped := Layout([]ScheduledItem{
		item("first", "09:00", 30),
		item("second", "09:00", 30),
		item("third", "09:00", 30),
	})

	require.Empty(t, skipped)
	assert.Equal(t, 0, placements["first"].Column)
	assert.Equal(t, 1, placements["second"].Column)
	assert.Equal(t, 2, placements["third"].Column)
}

func TestLayout_OverlapInvariant(t *testing.T) {
	items := []ScheduledItem{
		item("a", "07:00", 45),
		item("b", "07:15", 90),
		item("c", "07:45", 30),
		item("d", "08:00", 120),
		item("e", "08:45", 15),
		item("f", "09:00", 60),
	}
	placements, skipped := Layout(items)
	require.Empty(t, skipped)

	for id1, p1 := range placements {
		for id2, p2 := range placements {
			if id1 >= id2 || p1.Column != p2.Column {
				continue
			}
			disjoint := p1.EndHour <= p2.StartHour || p2.EndHour <= p1.StartHour
			assert.True(t, disjoint, "items %s and %s overlap in column %d", id1, id2, p1.Column)
		}
	}
}

func TestLayout_SkipsMalformedWithoutAborting(t *testing.T) {
	placements, skipped := Layout([]ScheduledItem{
		item("good", "09:00", 60),
		item("bad-clock", "9am", 30),
		item("bad-duration", "10:00", 0),
	})

	require.Len(t, placements, 1)
	require.Len(t, skipped, 2)
	for _, sk := range skipped {
		assert.ErrorIs(t, sk.Err, ErrInvalidSchedule)
	}
	assert.Equal(t, 1, placements["good"].Columns)
}

func TestLayout_Empty(t *testing.T) {
	placements, skipped := Layout(nil)
	assert.Empty(t, placements)
	assert.Empty(t, skipped)
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("07:30")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 30, m)

	for _, bad := range []string{"24:00", "12:60", "noon", "7", "-1:00", "aa:bb"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, "clock %q should not parse", bad)
	}
}
