package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/ui"
)

const Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "pt",
	Short:         "PillarTrack — weekly time grid with credits and rewards",
	Long:          "PillarTrack schedules time-boxed tasks on a weekly grid, turns completed hours into claimable credits per pillar, and spends them in a reward store.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.gamify-timesheet.yaml)")

	rootCmd.AddCommand(
		newAddCmd(),
		newDropCmd(),
		newEditCmd(),
		newRmCmd(),
		newDoneCmd(),
		newClaimCmd(),
		newListCmd(),
		newStatusCmd(),
		newPillarsCmd(),
		newRewardsCmd(),
		newBuyCmd(),
		newAdviseCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
