package service

import (
	"context"

	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/alexanderramin/bluecal/internal/store"
)

type settingsService struct {
	settings *store.SettingsStore
}

// NewSettingsService creates a SettingsService over the settings store.
func NewSettingsService(settings *store.SettingsStore) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(_ context.Context) (domain.Settings, error) {
	return s.settings.Get(), nil
}

func (s *settingsService) Save(ctx context.Context, cfg domain.Settings) error {
	return s.settings.Save(ctx, cfg)
}

func (s *settingsService) Theme(_ context.Context) (string, error) {
	return s.settings.Theme(), nil
}

func (s *settingsService) SetTheme(ctx context.Context, theme string) error {
	return s.settings.SetTheme(ctx, theme)
}
