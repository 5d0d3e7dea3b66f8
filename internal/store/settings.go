package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/kv"
)

// SettingsStore holds the settings object and the theme name.
type SettingsStore struct {
	backend  kv.Store
	settings domain.Settings
	theme    string
}

// NewSettingsStore loads settings and theme, falling back to defaults
// when nothing is stored.
func NewSettingsStore(ctx context.Context, backend kv.Store) (*SettingsStore, error) {
	s := &SettingsStore{backend: backend, settings: domain.DefaultSettings(), theme: "dark"}

	raw, ok, err := backend.Get(ctx, kv.KeySettings)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.settings); err != nil {
			return nil, fmt.Errorf("decoding stored settings: %w", err)
		}
	}

	theme, ok, err := backend.Get(ctx, kv.KeyTheme)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	if ok && theme != "" {
		s.theme = theme
	}
	return s, nil
}

// Get returns the current settings.
func (s *SettingsStore) Get() domain.Settings {
	return s.settings
}

// Save persists new settings.
func (s *SettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.backend.Set(ctx, kv.KeySettings, string(data)); err != nil {
		return fmt.Errorf("persisting settings: %w", err)
	}
	s.settings = settings
	return nil
}

// Theme returns the active theme name.
func (s *SettingsStore) Theme() string {
	return s.theme
}

// SetTheme persists a new theme name.
func (s *SettingsStore) SetTheme(ctx context.Context, theme string) error {
	if err := s.backend.Set(ctx, kv.KeyTheme, theme); err != nil {
		return fmt.Errorf("persisting theme: %w", err)
	}
	s.theme = theme
	return nil
}
