// Package kv is the persistence collaborator: an opaque key→string store.
// The planner keeps whole collections serialized under fixed keys and
// rewrites them after every mutation.
package kv

import "context"

// Well-known keys. Each holds the full JSON payload for its collection.
const (
	KeyTasks    = "tasks"
	KeyInbox    = "inbox"
	KeySettings = "settings"
	KeyTheme    = "theme"
)

// Store is a key→string get/set store. Get reports ok=false for an
// absent key; callers fall back to an empty collection or defaults.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
