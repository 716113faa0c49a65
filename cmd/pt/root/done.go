package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
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

			a.svc.ToggleCompletion(args[0])
			t, ok := a.svc.Task(args[0])
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No task with that id; nothing changed."))
				return nil
			}
			if t.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s  pending on %s: %d %s\n",
					ui.IconDone, ui.Good.Render("Done"), t.Title,
					t.Day, a.svc.PendingCredits(t.Day), ui.IconCredit)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render("Reopened"), t.Title)
			}
			return nil
		},
	}

	return cmd
}
