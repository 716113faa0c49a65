package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/engine"
	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newAddCmd() *cobra.Command {
	var day string
	var pillar string
	var start string
	var end string
	var duration int
	var tags []string
	var notes string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the weekly grid",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := engine.ParseDay(day)
			if err != nil {
				return err
			}

			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := a.svc.CreateTask(engine.TaskDraft{
				Title:           args[0],
				Day:             d,
				PillarID:        pillar,
				StartTime:       start,
				EndTime:         end,
				DurationMinutes: duration,
				Tags:            tags,
				Notes:           notes,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s–%s (%dm) [%s]\n",
				ui.Good.Render("Added"), t.Title, ui.Muted.Render(string(t.Day)),
				t.StartTime, t.EndTime, t.DurationMinutes, ui.Muted.Render(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Day of week (mon..sun)")
	cmd.Flags().StringVarP(&pillar, "pillar", "p", "", "Pillar id (see 'pt pillars')")
	cmd.Flags().StringVarP(&start, "start", "s", "09:00", "Start time (HH:MM)")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End time (HH:MM)")
	cmd.Flags().IntVarP(&duration, "duration", "m", 0, "Duration in minutes (alternative to --end)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Tags")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("pillar")

	return cmd
}
