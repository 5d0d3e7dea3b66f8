package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bluecal/internal/cli/formatter"
	"github.com/alexanderramin/bluecal/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var typeStr, date, at, repeat, notes string
	var durationMin int

	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Create a task, habit, or project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidItemTypes[typeStr] {
				return fmt.Errorf("invalid type %q (task|habit|project)", typeStr)
			}
			if !domain.ValidRepeats[repeat] {
				return fmt.Errorf("invalid repeat %q (none|daily|weekly|weekday)", repeat)
			}

			it := domain.Item{
				Type:      domain.ItemType(typeStr),
				Title:     strings.Join(args, " "),
				Notes:     notes,
				Date:      date,
				StartTime: at,
				Duration:  durationMin,
				Repeat:    domain.Repeat(repeat),
			}
			if at != "" && durationMin == 0 {
				it.Duration = 30
			}

			id, err := app.Planner.Create(context.Background(), it)
			if err != nil {
				return err
			}

			fmt.Printf("Created %s %s [%s]\n", typeStr, it.Title, id[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", "task", "Item type (task|habit|project)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "at", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&durationMin, "for", 0, "Duration in minutes")
	cmd.Flags().StringVar(&repeat, "repeat", "none", "Recurrence (none|daily|weekly|weekday)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var habits, projects, all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List backlog tasks, habits, or projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now()

			switch {
			case all:
				items, err := app.Planner.List(ctx)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatItemList("All items", items, now))
			case habits:
				items, err := app.Planner.Habits(ctx)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatItemList("Habits", items, now))
			case projects:
				items, err := app.Planner.Projects(ctx)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatItemList("Projects", items, now))
			default:
				items, err := app.Planner.Backlog(ctx)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatItemList("Backlog", items, now))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&habits, "habits", false, "List habits")
	cmd.Flags().BoolVar(&projects, "projects", false, "List projects")
	cmd.Flags().BoolVar(&all, "all", false, "List every item")

	return cmd
}

func newDayCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the timeline for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if date == "" {
				date = now.Format(domain.DateLayout)
			}

			view, err := app.Planner.Day(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatDayTimeline(view.Date, view.Items, view.Placements, now))
			for _, sk := range view.Skipped {
				fmt.Printf("%s\n", formatter.Dim(fmt.Sprintf("skipped %s: %v", sk.ID[:8], sk.Err)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to show (YYYY-MM-DD, default today)")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Planner.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatItemDetail(it, time.Now()))
			return nil
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Toggle an item's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Planner.ToggleComplete(ctx, id)
			if err != nil {
				return err
			}
			if it.Completed {
				fmt.Printf("Completed %s\n", it.Title)
			} else {
				fmt.Printf("Reopened %s\n", it.Title)
			}
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Planner.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", id[:8])
			return nil
		},
	}
}

func newSweepCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Move yesterday's unfinished tasks forward",
		RunE: func(cmd *cobra.Command, args []string) error {
			moved, err := app.Planner.SweepMissed(context.Background(), time.Now())
			if err != nil {
				return err
			}
			if len(moved) == 0 {
				fmt.Println("Nothing to reschedule.")
				return nil
			}
			for _, it := range moved {
				fmt.Printf("Moved %s to %s\n", it.Title, it.Date)
			}
			return nil
		},
	}
}

func newSayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "say TRANSCRIPT...",
		Short: "Create a task from a spoken-style phrase",
		Long:  `Parses a phrase like "dentist tomorrow at 3pm for 1 hour" into a scheduled task.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			transcript := strings.Join(args, " ")

			it, ok, err := app.Planner.CreateFromTranscript(context.Background(), transcript, now.Format(domain.DateLayout), now)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Could not hear a task in that.")
				return nil
			}
			fmt.Printf("Created %s on %s at %s (%s)\n",
				it.Title, it.Date, it.StartTime, formatter.FormatMinutes(it.Duration))
			return nil
		},
	}
}
