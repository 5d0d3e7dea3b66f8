package domain

type ItemType string

const (
	TypeTask    ItemType = "task"
	TypeHabit   ItemType = "habit"
	TypeProject ItemType = "project"
)

// ValidItemTypes is the canonical set of accepted item type strings.
var ValidItemTypes = map[string]bool{
	"task": true, "habit": true, "project": true,
}

type Repeat string

const (
	RepeatNone    Repeat = "none"
	RepeatDaily   Repeat = "daily"
	RepeatWeekly  Repeat = "weekly"
	RepeatWeekday Repeat = "weekday"
)

// ValidRepeats is the canonical set of accepted repeat rule strings.
var ValidRepeats = map[string]bool{
	"none": true, "daily": true, "weekly": true, "weekday": true,
}

type Reminder string

const (
	ReminderNone    Reminder = "none"
	ReminderAtStart Reminder = "atstart"
	Reminder5Min    Reminder = "5min"
	Reminder15Min   Reminder = "15min"
)
