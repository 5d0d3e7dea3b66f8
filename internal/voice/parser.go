// Package voice turns a final speech transcript into task fields.
// Parsing is an ordered list of (pattern, extractor) rules; each rule
// fires at most once and its matched text is stripped from the title.
package voice

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
)

// Fields are the task attributes extracted from one transcript.
type Fields struct {
	Title     string
	Date      string
	StartTime string
	Duration  int
}

const (
	defaultStart    = "08:00"
	defaultDuration = 30
)

type rule struct {
	pattern *regexp.Regexp
	apply   func(m []string, f *Fields, now time.Time)
}

// rules run in order: relative days first so "tomorrow at 5pm" resolves
// the day before the clock rule consumes "5pm".
var rules = []rule{
	{
		pattern: regexp.MustCompile(`(?i)\btomorrow\b`),
		apply: func(_ []string, f *Fields, now time.Time) {
			f.Date = now.AddDate(0, 0, 1).Format(domain.DateLayout)
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\btoday\b`),
		apply: func(_ []string, f *Fields, now time.Time) {
			f.Date = now.Format(domain.DateLayout)
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`),
		apply: func(m []string, f *Fields, _ time.Time) {
			hour, _ := strconv.Atoi(m[1])
			minute := 0
			if m[2] != "" {
				minute, _ = strconv.Atoi(m[2])
			}
			if strings.EqualFold(m[3], "pm") && hour < 12 {
				hour += 12
			}
			if strings.EqualFold(m[3], "am") && hour == 12 {
				hour = 0
			}
			if hour > 23 || minute > 59 {
				return
			}
			f.StartTime = formatClock(hour, minute)
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b(?:at\s+)?(\d{1,2})\s+o'?clock\b`),
		apply: func(m []string, f *Fields, _ time.Time) {
			if f.StartTime != defaultStart {
				return
			}
			hour, _ := strconv.Atoi(m[1])
			if hour > 23 {
				return
			}
			f.StartTime = formatClock(hour, 0)
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\bfor\s+(\d+)\s+hours?\b`),
		apply: func(m []string, f *Fields, _ time.Time) {
			n, _ := strconv.Atoi(m[1])
			f.Duration = n * 60
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\bfor\s+(\d+)\s+min(?:ute)?s?\b`),
		apply: func(m []string, f *Fields, _ time.Time) {
			n, _ := strconv.Atoi(m[1])
			f.Duration = n
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\bfor\s+half\s+an\s+hour\b`),
		apply: func(_ []string, f *Fields, _ time.Time) {
			f.Duration = 30
		},
	},
}

// Parse extracts task fields from transcript. activeDate is used when no
// relative-day keyword appears. Returns ok=false when nothing usable
// remains for a title after the rules strip their matches.
func Parse(transcript, activeDate string, now time.Time) (Fields, bool) {
	f := Fields{
		Date:      activeDate,
		StartTime: defaultStart,
		Duration:  defaultDuration,
	}

	remaining := transcript
	for _, r := range rules {
		loc := r.pattern.FindStringSubmatchIndex(remaining)
		if loc == nil {
			continue
		}
		m := matchStrings(remaining, loc)
		r.apply(m, &f, now)
		remaining = remaining[:loc[0]] + " " + remaining[loc[1]:]
	}

	f.Title = cleanTitle(remaining)
	if f.Title == "" {
		return Fields{}, false
	}
	return f, true
}

func matchStrings(s string, loc []int) []string {
	out := make([]string, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			out = append(out, "")
			continue
		}
		out = append(out, s[loc[i]:loc[i+1]])
	}
	return out
}

var (
	fillerPattern = regexp.MustCompile(`(?i)\b(?:at|on|in)\s*$`)
	spacesPattern = regexp.MustCompile(`\s+`)
)

func cleanTitle(s string) string {
	s = spacesPattern.ReplaceAllString(s, " ")
	s = strings.Trim(s, " ,.")
	s = fillerPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func formatClock(hour, minute int) string {
	return padTwo(hour) + ":" + padTwo(minute)
}

func padTwo(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
