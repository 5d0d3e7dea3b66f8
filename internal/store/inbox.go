package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/kv"
)

// InboxStore owns the quick-capture notes, persisted like the item
// collection: load once, rewrite in full after every mutation.
type InboxStore struct {
	backend kv.Store
	notes   []domain.InboxNote
}

// NewInboxStore loads the inbox from backend.
func NewInboxStore(ctx context.Context, backend kv.Store) (*InboxStore, error) {
	raw, ok, err := backend.Get(ctx, kv.KeyInbox)
	if err != nil {
		return nil, fmt.Errorf("loading inbox: %w", err)
	}
	s := &InboxStore{backend: backend}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.notes); err != nil {
			return nil, fmt.Errorf("decoding stored inbox: %w", err)
		}
	}
	return s, nil
}

// Add appends a note with the current capture timestamp.
func (s *InboxStore) Add(ctx context.Context, text string) error {
	note := domain.InboxNote{Text: text, Timestamp: time.Now().UTC()}
	next := append(append([]domain.InboxNote(nil), s.notes...), note)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.notes = next
	return nil
}

// Delete removes the note at idx. Out-of-range indexes are a no-op.
func (s *InboxStore) Delete(ctx context.Context, idx int) error {
	if idx < 0 || idx >= len(s.notes) {
		return nil
	}
	next := append([]domain.InboxNote(nil), s.notes[:idx]...)
	next = append(next, s.notes[idx+1:]...)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.notes = next
	return nil
}

// Take removes and returns the note at idx, for promotion into a task.
func (s *InboxStore) Take(ctx context.Context, idx int) (domain.InboxNote, error) {
	if idx < 0 || idx >= len(s.notes) {
		return domain.InboxNote{}, fmt.Errorf("taking inbox note %d: %w", idx, ErrNotFound)
	}
	note := s.notes[idx]
	if err := s.Delete(ctx, idx); err != nil {
		return domain.InboxNote{}, err
	}
	return note, nil
}

// Notes returns a copy of the inbox in capture order.
func (s *InboxStore) Notes() []domain.InboxNote {
	return append([]domain.InboxNote(nil), s.notes...)
}

// Replace swaps in a whole new inbox, persisting it. Used by import.
func (s *InboxStore) Replace(ctx context.Context, notes []domain.InboxNote) error {
	next := append([]domain.InboxNote(nil), notes...)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.notes = next
	return nil
}

func (s *InboxStore) persist(ctx context.Context, notes []domain.InboxNote) error {
	if notes == nil {
		notes = []domain.InboxNote{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encoding inbox: %w", err)
	}
	if err := s.backend.Set(ctx, kv.KeyInbox, string(data)); err != nil {
		return fmt.Errorf("persisting inbox: %w", err)
	}
	return nil
}
