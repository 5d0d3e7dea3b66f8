package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/bluecal/internal/backup"
	"github.com/alexanderramin/bluecal/internal/notify"
	"github.com/alexanderramin/bluecal/internal/store"
)

type backupService struct {
	items    *store.ItemStore
	inbox    *store.InboxStore
	settings *store.SettingsStore
	notifier notify.Notifier
}

// NewBackupService creates a BackupService over all three stores.
func NewBackupService(items *store.ItemStore, inbox *store.InboxStore, settings *store.SettingsStore, notifier notify.Notifier) BackupService {
	return &backupService{items: items, inbox: inbox, settings: settings, notifier: notifier}
}

func (s *backupService) Export(_ context.Context, path string) (string, error) {
	if path == "" {
		path = backup.DefaultFilename(time.Now())
	}
	snap := backup.NewSnapshot(s.items.All(), s.inbox.Notes(), s.settings.Get())
	if err := backup.WriteFile(path, snap); err != nil {
		return "", err
	}
	s.notifier.Notify("Backup complete", fmt.Sprintf("exported %d tasks to %s", len(snap.Tasks), path))
	return path, nil
}

func (s *backupService) Import(ctx context.Context, path string) error {
	snap, err := backup.ReadFile(path)
	if err != nil {
		return err
	}

	// Parse validated everything up front, so state is only touched on
	// a usable document.
	if err := s.items.Replace(ctx, snap.Tasks); err != nil {
		return err
	}
	if err := s.inbox.Replace(ctx, snap.Inbox); err != nil {
		return err
	}
	if err := s.settings.Save(ctx, snap.Settings); err != nil {
		return err
	}

	s.notifier.Notify("Import complete", fmt.Sprintf("restored %d tasks from %s", len(snap.Tasks), path))
	return nil
}
