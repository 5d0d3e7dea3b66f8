package timeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses an "HH:MM" 24-hour string into hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("clock %q is not HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("clock %q has a non-numeric hour", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("clock %q has a non-numeric minute", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock %q is out of range", s)
	}
	return hour, minute, nil
}

// NowOffset returns the fractional-hour position of t within its day,
// used to place the "now" marker on the timeline.
func NowOffset(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}
