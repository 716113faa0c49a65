package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seant15/gamify-timesheet/internal/engine"
	"github.com/seant15/gamify-timesheet/internal/ui"
)

func newPillarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pillars",
		Short: "List the pillar catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGrid, "Pillars"))
			for _, p := range a.svc.Pillars() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s  %d/h  %s\n",
					ui.Muted.Render(p.ID), ui.PillarStyle(p.Color).Render(p.Title),
					ui.Muted.Render("("+p.Category+")"), p.PointsPerHour,
					ui.Muted.Render(p.Description))
			}
			return nil
		},
	}

	cmd.AddCommand(newPillarsSetCmd())
	return cmd
}

func newPillarsSetCmd() *cobra.Command {
	var title string
	var category string
	var description string
	var color string
	var rate int

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Edit a pillar definition",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("pillar id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(context.Background())
			if err != nil {
				return err
			}
			defer cleanup()

			var patch engine.PillarPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("rate") {
				patch.PointsPerHour = &rate
			}

			a.svc.UpdatePillar(args[0], patch)
			if p, ok := a.svc.Pillar(args[0]); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %d/h\n", ui.Good.Render("Updated"),
					ui.PillarStyle(p.Color).Render(p.Title), p.PointsPerHour)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No pillar with that id; nothing changed."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&category, "category", "", "New category label")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&color, "color", "", "New color key")
	cmd.Flags().IntVar(&rate, "rate", 0, "New credits per hour (negative clamps to 0)")

	return cmd
}
