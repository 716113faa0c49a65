package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newRewardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "List the reward store",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			balance := a.svc.Stats().TotalCredits
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconReward, fmt.Sprintf("Rewards (balance %d %s)", balance, ui.IconCredit)))
			for _, r := range a.svc.Rewards() {
				cost := fmt.Sprintf("%d", r.Cost)
				if r.Cost > balance {
					cost = ui.Muted.Render(cost)
				} else {
					cost = ui.Gold.Render(cost)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s  %s %s [%s]\n",
					r.Icon, r.Title, claimedBadge(r.Claimed), cost, ui.IconCredit, ui.Muted.Render(r.ID))
			}
			return nil
		},
	}

	cmd.AddCommand(newRewardsAddCmd(), newRewardsRmCmd())
	return cmd
}

func claimedBadge(claimed bool) string {
	if claimed {
		return ui.BadgeClaimed
	}
	return ""
}

func newRewardsAddCmd() *cobra.Command {
	var cost int
	var icon string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reward to the store",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			r, ok := a.svc.AddReward(args[0], cost, icon)
			if !ok {
				return errors.New("a reward needs a title and a non-negative cost")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s  %d %s [%s]\n",
				ui.Good.Render("Added"), r.Icon, r.Title, r.Cost, ui.IconCredit, ui.Muted.Render(r.ID))
			return nil
		},
	}

	cmd.Flags().IntVarP(&cost, "cost", "c", 0, "Cost in credits")
	cmd.Flags().StringVarP(&icon, "icon", "i", "", "Display icon")
	_ = cmd.MarkFlagRequired("cost")

	return cmd
}

func newRewardsRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a reward from the store",
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

			r, ok := a.svc.RewardByID(args[0])
			a.svc.DeleteReward(args[0])
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render("Removed"), r.Icon, r.Title)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No reward with that id; nothing changed."))
			}
			return nil
		},
	}

	return cmd
}
