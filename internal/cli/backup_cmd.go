package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import planner data",
	}

	cmd.AddCommand(newBackupExportCmd(app), newBackupImportCmd(app))

	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all planner data to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Backup.Export(context.Background(), out)
			if err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default bluecal-backup-<date>.json)")

	return cmd
}

func newBackupImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all planner data from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Backup.Import(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Imported %s\n", args[0])
			return nil
		},
	}
}
