package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/engine"
	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newAdviseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advise <day>",
		Short: "Get coaching advice for a day",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("day is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := engine.ParseDay(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			pillar := a.svc.FocusPillar(day)
			summary := a.adviceClient().DailySummary(ctx, day, pillar, a.svc.TasksForDay(day))

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconAdvice, fmt.Sprintf("%s — %s", day, pillar.Title)))
			fmt.Fprintln(cmd.OutOrStdout(), summary.FocusAdvice)
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Suggested"))
			for _, s := range summary.SuggestedTasks {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", s)
			}
			return nil
		},
	}

	return cmd
}
