package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/bluecal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInboxCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Quick-capture notes",
	}

	cmd.AddCommand(
		newInboxAddCmd(app),
		newInboxListCmd(app),
		newInboxRemoveCmd(app),
		newInboxPromoteCmd(app),
	)

	return cmd
}

func newInboxAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Capture a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if err := app.Inbox.Add(context.Background(), text); err != nil {
				return err
			}
			fmt.Printf("Captured %q\n", text)
			return nil
		},
	}
}

func newInboxListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List captured notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.Inbox.Notes(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatInboxList(notes, time.Now()))
			return nil
		},
	}
}

func newInboxRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm INDEX",
		Short: "Discard a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			if err := app.Inbox.Delete(context.Background(), idx); err != nil {
				return err
			}
			fmt.Printf("Discarded note %d\n", idx)
			return nil
		},
	}
}

func newInboxPromoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "promote INDEX",
		Short: "Turn a note into a backlog task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			it, err := app.Inbox.Promote(context.Background(), idx)
			if err != nil {
				return err
			}
			fmt.Printf("Promoted %q to task [%s]\n", it.Title, it.ID[:8])
			return nil
		},
	}
}
