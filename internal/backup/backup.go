// Package backup serializes the planner's state to a single JSON
// document and restores it wholesale.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// ErrImportParse marks a backup document the importer could not use.
// Import fails before any collection is touched.
var ErrImportParse = errors.New("malformed backup document")

// Snapshot is the export document shape.
type Snapshot struct {
	Tasks      []domain.Item      `json:"tasks"`
	Inbox      []domain.InboxNote `json:"inbox"`
	Settings   domain.Settings    `json:"settings"`
	ExportDate time.Time          `json:"exportDate"`
}

// NewSnapshot assembles a snapshot with the current export timestamp.
func NewSnapshot(tasks []domain.Item, inbox []domain.InboxNote, settings domain.Settings) Snapshot {
	if tasks == nil {
		tasks = []domain.Item{}
	}
	if inbox == nil {
		inbox = []domain.InboxNote{}
	}
	return Snapshot{
		Tasks:      tasks,
		Inbox:      inbox,
		Settings:   settings,
		ExportDate: time.Now().UTC(),
	}
}

// DefaultFilename returns the conventional backup filename for a day.
func DefaultFilename(now time.Time) string {
	return "bluecal-backup-" + now.Format(domain.DateLayout) + ".json"
}

// WriteFile writes the snapshot to path atomically, so a crash mid-write
// never leaves a truncated backup behind.
func WriteFile(path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing backup %s: %w", path, err)
	}
	return nil
}

// ReadFile loads and parses a backup document from path.
func ReadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading backup %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a backup document. Hand-edited backups with comments or
// trailing commas are tolerated via hujson standardization; anything
// else malformed fails with ErrImportParse and no state is mutated.
func Parse(data []byte) (Snapshot, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrImportParse, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(standardized, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrImportParse, err)
	}

	for i := range snap.Tasks {
		if err := snap.Tasks[i].Validate(); err != nil {
			return Snapshot{}, fmt.Errorf("%w: task %d: %v", ErrImportParse, i, err)
		}
	}
	return snap, nil
}
