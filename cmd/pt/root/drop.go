package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/engine"
	"github.com/seant15/gamify-timesheet/internal/ui"
)

// drop mirrors the drag-and-drop gesture: a pillar released on a day column
// at a vertical pixel offset. The start time comes from the grid mapper and
// the end time defaults to one hour later.
func newDropCmd() *cobra.Command {
	var day string
	var title string

	cmd := &cobra.Command{
		Use:   "drop <pillar-id> <offset-px>",
		Short: "Place a pillar block by grid offset, like a drag release",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("pillar id and pixel offset are required")
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
				return errors.New("offset must be a number of pixels")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := engine.ParseDay(day)
			if err != nil {
				return err
			}
			offset, _ := strconv.ParseFloat(args[1], 64)
			if offset < 0 {
				return errors.New("offset must be >= 0")
			}

			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			draft, err := a.svc.DraftFromDrop(args[0], d, offset)
			if err != nil {
				return err
			}
			if title != "" {
				draft.Title = title
			}
			t, err := a.svc.CreateTask(draft)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s–%s (%dm) [%s]\n",
				ui.Good.Render("Placed"), t.Title, ui.Muted.Render(string(t.Day)),
				t.StartTime, t.EndTime, t.DurationMinutes, ui.Muted.Render(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&day, "day", "d", "", "Day of week (mon..sun)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Override the default \"<pillar> Block\" title")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}
