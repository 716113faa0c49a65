package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/engine"
	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show balance, level and per-day pending credits",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			stats := a.svc.Stats()
			toNext := engine.CreditsPerLevel - stats.LifetimeEarnings%engine.CreditsPerLevel

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "PillarTrack Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", fmt.Sprintf("%d %s", stats.TotalCredits, ui.IconCredit)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Lifetime", stats.LifetimeEarnings))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", fmt.Sprintf("%d (%d to next)", stats.Level, toNext)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Week"))
			for _, day := range engine.WeekDays {
				tasks := a.svc.TasksForDay(day)
				done := 0
				for _, t := range tasks {
					if t.Completed {
						done++
					}
				}
				state := fmt.Sprintf("%s %d pending", ui.IconCredit, a.svc.PendingCredits(day))
				if a.svc.DayClaimed(day) {
					state = ui.BadgeClaimed
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %-9s %d/%d done  %s\n", day, done, len(tasks), state)
			}
			return nil
		},
	}

	return cmd
}
