package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/engine"
	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newEditCmd() *cobra.Command {
	var title string
	var day string
	var pillar string
	var start string
	var end string
	var tags []string
	var notes string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task in place",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			var patch engine.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("day") {
				d, err := engine.ParseDay(day)
				if err != nil {
					return err
				}
				patch.Day = &d
			}
			if cmd.Flags().Changed("pillar") {
				patch.PillarID = &pillar
			}
			if cmd.Flags().Changed("start") {
				patch.StartTime = &start
			}
			if cmd.Flags().Changed("end") {
				patch.EndTime = &end
			}
			if cmd.Flags().Changed("tags") {
				patch.Tags = &tags
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}

			a.svc.UpdateTask(args[0], patch)
			if t, ok := a.svc.Task(args[0]); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s–%s (%dm)\n",
					ui.Good.Render("Updated"), t.Title, ui.Muted.Render(string(t.Day)),
					t.StartTime, t.EndTime, t.DurationMinutes)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No task with that id; nothing changed."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&day, "day", "d", "", "Move to day (mon..sun)")
	cmd.Flags().StringVarP(&pillar, "pillar", "p", "", "New pillar id")
	cmd.Flags().StringVarP(&start, "start", "s", "", "New start time (HH:MM)")
	cmd.Flags().StringVarP(&end, "end", "e", "", "New end time (HH:MM)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Replace tags")
	cmd.Flags().StringVar(&notes, "notes", "", "Replace notes")

	return cmd
}
