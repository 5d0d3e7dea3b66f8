package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/kv"
	"github.com/google/uuid"
)

// ItemStore owns the item collection for the app lifetime. It loads once
// from the persistence collaborator and rewrites the full collection
// synchronously after every mutation, so a mutation that returned is
// never lost.
type ItemStore struct {
	backend kv.Store
	items   []domain.Item
}

// NewItemStore loads the item collection from backend. An absent key
// yields an empty collection.
func NewItemStore(ctx context.Context, backend kv.Store) (*ItemStore, error) {
	raw, ok, err := backend.Get(ctx, kv.KeyTasks)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	s := &ItemStore{backend: backend}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.items); err != nil {
			return nil, fmt.Errorf("decoding stored items: %w", err)
		}
	}
	return s, nil
}

// Create validates the item, assigns a fresh id if it has none, appends
// and persists, and returns the id.
func (s *ItemStore) Create(ctx context.Context, it domain.Item) (string, error) {
	if err := it.Validate(); err != nil {
		return "", err
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now
	if it.Repeat == "" {
		it.Repeat = domain.RepeatNone
	}
	if it.Reminder == "" {
		it.Reminder = domain.ReminderNone
	}

	next := append(append([]domain.Item(nil), s.items...), it)
	if err := s.persist(ctx, next); err != nil {
		return "", err
	}
	s.items = next
	return it.ID, nil
}

// Update merges patch into the item with the given id. Fields the patch
// leaves nil keep their current value. Returns ErrNotFound for a stale id.
func (s *ItemStore) Update(ctx context.Context, id string, patch Patch) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("updating item %s: %w", id, ErrNotFound)
	}

	next := append([]domain.Item(nil), s.items...)
	merged := patch.ApplyTo(next[idx])
	if err := merged.Validate(); err != nil {
		return err
	}
	merged.UpdatedAt = time.Now().UTC()
	next[idx] = merged

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// Delete removes the item if present. Deleting an absent id is a no-op.
func (s *ItemStore) Delete(ctx context.Context, id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	next := append([]domain.Item(nil), s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// Find returns the item with the given id.
func (s *ItemStore) Find(id string) (domain.Item, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Item{}, false
	}
	return s.items[idx], true
}

// Query returns every item the predicate accepts, in stored order.
func (s *ItemStore) Query(pred func(domain.Item) bool) []domain.Item {
	var out []domain.Item
	for _, it := range s.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// All returns a copy of the full collection.
func (s *ItemStore) All() []domain.Item {
	return append([]domain.Item(nil), s.items...)
}

// Len returns the number of stored items.
func (s *ItemStore) Len() int {
	return len(s.items)
}

// Replace swaps in a whole new collection, persisting it. Used by import.
func (s *ItemStore) Replace(ctx context.Context, items []domain.Item) error {
	next := append([]domain.Item(nil), items...)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

func (s *ItemStore) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *ItemStore) persist(ctx context.Context, items []domain.Item) error {
	// Persist "[]" rather than "null" for an empty collection.
	if items == nil {
		items = []domain.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	if err := s.backend.Set(ctx, kv.KeyTasks, string(data)); err != nil {
		return fmt.Errorf("persisting items: %w", err)
	}
	return nil
}
