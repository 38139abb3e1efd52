package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/taskplan/internal/app"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `taskplan` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	var budget int

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive planner",
		Long:  `Launch the interactive terminal user interface for adding and scheduling tasks.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyBudget(cmd, c, budget); err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}

	cmd.Flags().IntVarP(&budget, "budget", "b", 0, "Available time in minutes (default from config)")

	return cmd
}
