package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/bluecal/internal/cli"
	"github.com/alexanderramin/bluecal/internal/kv"
	"github.com/alexanderramin/bluecal/internal/notify"
	"github.com/alexanderramin/bluecal/internal/service"
	"github.com/alexanderramin/bluecal/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Determine DB path: env var or default ~/.bluecal/bluecal.db
	dbPath := os.Getenv("BLUECAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".bluecal", "bluecal.db")
	}

	backend, err := kv.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer backend.Close()

	items, err := store.NewItemStore(ctx, backend)
	if err != nil {
		return err
	}
	inbox, err := store.NewInboxStore(ctx, backend)
	if err != nil {
		return err
	}
	settings, err := store.NewSettingsStore(ctx, backend)
	if err != nil {
		return err
	}

	notifier := notify.NewLogNotifier(os.Stderr)

	app := &cli.App{
		Planner:  service.NewPlannerService(items, settings, notifier),
		Inbox:    service.NewInboxService(inbox, items),
		Settings: service.NewSettingsService(settings),
		Backup:   service.NewBackupService(items, inbox, settings, notifier),
		Notifier: notifier,
	}

	// Detect interactive terminal for the TUI-by-default entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
