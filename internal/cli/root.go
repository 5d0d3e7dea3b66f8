package cli

import (
	"github.com/alexanderramin/bluecal/internal/notify"
	"github.com/alexanderramin/bluecal/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Planner  service.PlannerService
	Inbox    service.InboxService
	Settings service.SettingsService
	Backup   service.BackupService

	// Notifier receives session-level events the services do not own,
	// like focus timer completion. Nil means no notifications.
	Notifier notify.Notifier

	// IsInteractive reports whether stdin is a terminal. When true and
	// no subcommand is given, the TUI is launched instead of help.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "bluecal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "bluecal",
		Short: "Terminal day planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newDayCmd(app),
		newShowCmd(app),
		newDoneCmd(app),
		newRemoveCmd(app),
		newInboxCmd(app),
		newSayCmd(app),
		newSweepCmd(app),
		newBackupCmd(app),
		newSettingsCmd(app),
		newThemeCmd(app),
		newTuiCmd(app),
	)

	return root
}
