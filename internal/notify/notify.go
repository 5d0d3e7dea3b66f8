// Package notify is the port to the user-facing notification collaborator.
// Delivery is fire-and-forget; the planner never blocks on or inspects a
// notification's fate.
package notify

import (
	"fmt"
	"io"
	"time"
)

// Notifier delivers a short user-facing notification.
type Notifier interface {
	Notify(title, body string)
}

// LogNotifier writes notifications to an io.Writer, one line each.
type LogNotifier struct {
	w io.Writer
}

// NewLogNotifier creates a Notifier that writes to w.
func NewLogNotifier(w io.Writer) *LogNotifier {
	return &LogNotifier{w: w}
}

func (n *LogNotifier) Notify(title, body string) {
	ts := time.Now().Format("15:04")
	fmt.Fprintf(n.w, "[%s] %s: %s\n", ts, title, body)
}

// NoopNotifier discards all notifications. Useful for tests.
type NoopNotifier struct{}

func (NoopNotifier) Notify(string, string) {}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	Events []Event
}

// Event is one recorded notification.
type Event struct {
	Title, Body string
}

func (r *Recorder) Notify(title, body string) {
	r.Events = append(r.Events, Event{Title: title, Body: body})
}
