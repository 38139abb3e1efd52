package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task management
	Add      key.Binding // Open add form
	Remove   key.Binding // Remove selected task
	Clear    key.Binding // Remove all tasks
	Schedule key.Binding // Run the scheduler

	// Budget
	Budget     key.Binding // Edit budget
	BudgetUp   key.Binding // +1 minute
	BudgetDown key.Binding // -1 minute

	// Form
	NextField    key.Binding
	PrevField    key.Binding
	PriorityUp   key.Binding // Towards High
	PriorityDown key.Binding // Towards Low
	Submit       key.Binding

	// General
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add task"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "remove"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Schedule: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "schedule"),
		),
		Budget: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "set time"),
		),
		BudgetUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "time +1"),
		),
		BudgetDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "time -1"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		PriorityUp: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "higher"),
		),
		PriorityDown: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "lower"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Schedule, k.Remove, k.Budget, k.BudgetUp, k.BudgetDown, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},                              // Navigation
		{k.Add, k.Remove, k.Clear, k.Schedule},      // Tasks
		{k.Budget, k.BudgetUp, k.BudgetDown},        // Time
		{k.NextField, k.PriorityUp, k.PriorityDown}, // Add form
		{k.Help, k.Escape, k.Quit},                  // General
	}
}
