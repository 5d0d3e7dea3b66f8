package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/bluecal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change planner settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(app)
		},
	}

	cmd.AddCommand(newSettingsSetCmd(app))

	return cmd
}

func showSettings(app *App) error {
	ctx := context.Background()
	cfg, err := app.Settings.Get(ctx)
	if err != nil {
		return err
	}
	theme, err := app.Settings.Theme(ctx)
	if err != nil {
		return err
	}
	fmt.Println(formatter.FormatSettings(cfg, theme))
	return nil
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var notifyStart, notifyMissed, autoResched bool
	var frequency string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("notify-start") {
				cfg.NotifyTaskStart = notifyStart
			}
			if cmd.Flags().Changed("notify-missed") {
				cfg.NotifyMissedTasks = notifyMissed
			}
			if cmd.Flags().Changed("auto-reschedule") {
				cfg.AutoReschedule = autoResched
			}
			if cmd.Flags().Changed("frequency") {
				cfg.NotificationFrequency = frequency
			}

			if err := app.Settings.Save(ctx, cfg); err != nil {
				return err
			}
			return showSettings(app)
		},
	}

	cmd.Flags().BoolVar(&notifyStart, "notify-start", true, "Notify when a task starts or completes")
	cmd.Flags().BoolVar(&notifyMissed, "notify-missed", true, "Notify when a missed task is rescheduled")
	cmd.Flags().BoolVar(&autoResched, "auto-reschedule", true, "Move missed tasks to the next day")
	cmd.Flags().StringVar(&frequency, "frequency", "realtime", "Notification frequency (realtime|hourly|daily)")

	return cmd
}

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [NAME]",
		Short: "Show or set the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 0 {
				theme, err := app.Settings.Theme(ctx)
				if err != nil {
					return err
				}
				fmt.Println(theme)
				return nil
			}
			if err := app.Settings.SetTheme(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Theme set to %s\n", args[0])
			return nil
		},
	}
}
