package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
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

			t, ok := a.svc.Task(args[0])
			a.svc.DeleteTask(args[0])
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", ui.Good.Render("Deleted"), t.Title, t.Day)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No task with that id; nothing changed."))
			}
			return nil
		},
	}

	return cmd
}
