package domain

import "time"

// Settings are the user-tunable behavior switches, persisted as one JSON
// object under the "settings" key.
type Settings struct {
	NotifyTaskStart       bool   `json:"notifyTaskStart"`
	NotifyMissedTasks     bool   `json:"notifyMissedTasks"`
	AutoReschedule        bool   `json:"autoReschedule"`
	NotificationFrequency string `json:"notificationFrequency"`
}

// DefaultSettings returns the settings used when nothing is stored yet.
func DefaultSettings() Settings {
	return Settings{
		NotifyTaskStart:       true,
		NotifyMissedTasks:     true,
		AutoReschedule:        true,
		NotificationFrequency: "realtime",
	}
}

// InboxNote is a quick capture: free text plus the moment it was taken.
type InboxNote struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
