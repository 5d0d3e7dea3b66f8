package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyTitle(t *testing.T) {
	it := &Item{Type: TypeTask, Title: "   "}
	err := it.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestValidate_ScheduledNeedsDuration(t *testing.T) {
	it := &Item{Type: TypeTask, Title: "Gym", Date: "2026-03-02", StartTime: "07:30"}
	err := it.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")
}

func TestValidate_BadClock(t *testing.T) {
	it := &Item{Type: TypeTask, Title: "Gym", StartTime: "25:00", Duration: 30}
	require.Error(t, it.Validate())
}

func TestValidate_BadDate(t *testing.T) {
	it := &Item{Type: TypeTask, Title: "Gym", Date: "03/02/2026"}
	require.Error(t, it.Validate())
}

func TestValidate_BacklogItemWithoutSchedule(t *testing.T) {
	it := &Item{Type: TypeTask, Title: "Read inbox zero article"}
	assert.NoError(t, it.Validate())
}

func TestIsTemplate(t *testing.T) {
	cases := []struct {
		repeat   Repeat
		template bool
	}{
		{"", false},
		{RepeatNone, false},
		{RepeatDaily, true},
		{RepeatWeekly, true},
		{RepeatWeekday, true},
	}
	for _, tc := range cases {
		it := &Item{Repeat: tc.repeat}
		assert.Equal(t, tc.template, it.IsTemplate(), "repeat=%s", tc.repeat)
	}
}

func TestInstantiate_FreshCopy(t *testing.T) {
	tmpl := &Item{
		ID:        "tmpl-1",
		Type:      TypeHabit,
		Title:     "Morning run",
		Date:      "2026-03-02",
		StartTime: "07:00",
		Duration:  45,
		Completed: true,
		Repeat:    RepeatDaily,
		Color:     "#54a0ff",
		Icon:      "circle",
	}

	inst := tmpl.Instantiate("inst-1", "2026-03-12")

	assert.Equal(t, "inst-1", inst.ID)
	assert.Equal(t, "2026-03-12", inst.Date)
	assert.False(t, inst.Completed)
	assert.Equal(t, RepeatNone, inst.Repeat)
	assert.False(t, inst.IsTemplate(), "instance must not be re-expanded")
	assert.Equal(t, tmpl.StartTime, inst.StartTime)
	assert.Equal(t, tmpl.Duration, inst.Duration)
	assert.Equal(t, tmpl.Color, inst.Color)
}

func TestInstantiate_SubtasksNotShared(t *testing.T) {
	tmpl := &Item{
		ID:       "tmpl-2",
		Type:     TypeProject,
		Title:    "Tax return",
		Repeat:   RepeatWeekly,
		Subtasks: []Subtask{{Title: "Collect receipts"}, {Title: "File", Completed: true}},
	}

	inst := tmpl.Instantiate("inst-2", "2026-03-13")
	inst.Subtasks[0].Completed = true

	assert.False(t, tmpl.Subtasks[0].Completed, "template subtasks must stay untouched")
}

func TestSubtaskProgress(t *testing.T) {
	it := &Item{Subtasks: []Subtask{
		{Title: "a", Completed: true},
		{Title: "b"},
		{Title: "c", Completed: true},
	}}
	done, total := it.SubtaskProgress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 3, total)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.NotifyTaskStart)
	assert.True(t, s.NotifyMissedTasks)
	assert.True(t, s.AutoReschedule)
	assert.Equal(t, "realtime", s.NotificationFrequency)
}
