package testutil

import (
	"testing"

	"github.com/alexanderramin/bluecal/internal/kv"
)

// NewTestKV creates an in-memory SQLite key-value store with migrations
// applied. The store is closed when the test completes.
func NewTestKV(t *testing.T) *kv.SQLiteStore {
	t.Helper()
	store, err := kv.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
