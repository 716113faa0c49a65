package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/engine"
	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [day]",
		Short: "List tasks for a day, or the whole week",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := engine.WeekDays
			if len(args) == 1 {
				day, err := engine.ParseDay(args[0])
				if err != nil {
					return err
				}
				days = []engine.Day{day}
			}

			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			for _, day := range days {
				tasks := a.svc.TasksForDay(day)
				if len(tasks) == 0 && len(days) > 1 {
					continue
				}
				header := string(day)
				if a.svc.DayClaimed(day) {
					header += "  " + ui.BadgeClaimed
				} else if pending := a.svc.PendingCredits(day); pending > 0 {
					header += fmt.Sprintf("  %s %d pending", ui.IconCredit, pending)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(header))
				if len(tasks) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("  (empty)"))
					continue
				}
				for _, t := range tasks {
					pillarTitle := "?"
					if p, ok := a.svc.Pillar(t.PillarID); ok {
						pillarTitle = p.Title
					}
					line := fmt.Sprintf("  %s %s–%s %-14s %s (%dm) [%s]",
						ui.Checkbox(t.Completed), t.StartTime, t.EndTime,
						pillarTitle, t.Title, t.DurationMinutes, t.ID)
					if len(t.Tags) > 0 {
						line += " " + ui.Muted.Render("#"+strings.Join(t.Tags, " #"))
					}
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}

	return cmd
}
