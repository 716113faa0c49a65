package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/engine"
	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim <day>",
		Short: "Claim a day's pending credits",
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

			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			res := a.svc.Claim(day)
			if !res.Claimed {
				if a.svc.DayClaimed(day) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s already claimed; edit or complete a task on it to unlock again.\n", day)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Nothing to claim on %s.\n", day)
				}
				return nil
			}

			stats := a.svc.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s +%d %s  balance %d, lifetime %d\n",
				ui.IconClaim, ui.Gold.Render("Claimed "+string(day)), res.Awarded, ui.IconCredit,
				stats.TotalCredits, stats.LifetimeEarnings)
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s → level %d\n", ui.IconLevel, ui.BadgeLevelUp, res.LevelAfter)
			}
			return nil
		},
	}

	return cmd
}
