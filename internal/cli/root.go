// Package cli provides the command-line interface for taskplan.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/taskplan/internal/app"
	"github.com/runoshun/taskplan/internal/tui"
	"github.com/runoshun/taskplan/internal/usecase"
)

// Command group IDs.
const (
	groupPlan  = "plan"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskplan.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var budget int

	root := &cobra.Command{
		Use:   "taskplan",
		Short: "Plan tasks into a fixed time budget",
		Long: `taskplan picks tasks that fit into the time you have.

Add tasks with a duration and a priority, then schedule: the most important
task goes first, shorter tasks break ties, and selection stops at the first
task that no longer fits (use "taskplan schedule --policy skip" or set
[schedule] policy = "skip" to keep looking).

Running taskplan without a subcommand opens the interactive planner.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyBudget(cmd, c, budget); err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}

	root.Flags().IntVarP(&budget, "budget", "b", 0, "Available time in minutes (default from config)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupPlan, Title: "Planning Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupPlan

	scheduleCmd := newScheduleCommand(c)
	scheduleCmd.GroupID = groupPlan

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		tuiCmd,
		scheduleCmd,
		configCmd,
	)

	return root
}

// applyBudget sets the session budget when the flag was given.
func applyBudget(cmd *cobra.Command, c *app.Container, budget int) error {
	if c == nil || !cmd.Flags().Changed("budget") {
		return nil
	}
	_, err := c.SetBudgetUseCase().Execute(cmd.Context(), usecase.SetBudgetInput{Budget: budget})
	return err
}

// launchTUI runs the interactive planner on the container's session.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
