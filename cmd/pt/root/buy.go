package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <reward-id>",
		Short: "Spend credits on a reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reward id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			res := a.svc.Purchase(args[0])
			if !res.Purchased {
				r, ok := a.svc.RewardByID(args[0])
				switch {
				case !ok:
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No reward with that id; nothing changed."))
				case r.Claimed:
					fmt.Fprintf(cmd.OutOrStdout(), "%s is still marked claimed; try again in a moment.\n", r.Title)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "Not enough credits for %s %s: need %d, have %d.\n",
						r.Icon, r.Title, r.Cost, res.Remaining)
				}
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s  -%d %s, %d left\n",
				ui.IconReward, ui.Gold.Render("Enjoy"), res.Reward.Icon, res.Reward.Title,
				res.Reward.Cost, ui.IconCredit, res.Remaining)

			// The claimed flag is display-only and must revert before this
			// process exits, or the persisted snapshot would keep the reward
			// blocked forever.
			delay := time.Duration(a.cfg.Rewards.RevertDelaySeconds) * time.Second
			time.Sleep(delay + 100*time.Millisecond)
			return nil
		},
	}

	return cmd
}
