package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive week board",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(a.svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
