package domain

import (
	"time"
)

// TaskRepository owns the task list and budget of one session.
type TaskRepository interface {
	// Add validates and appends a task. Returns *ValidationError or
	// *BudgetExceededError without changing the repository.
	Add(name string, duration int, priority Priority) (Task, error)

	// Get retrieves a task by ID. Returns ErrTaskNotFound if missing.
	Get(id int) (Task, error)

	// Remove deletes a task by ID. Returns ErrTaskNotFound if missing.
	Remove(id int) error

	// Clear removes all tasks and returns how many were removed.
	Clear() (int, error)

	// State returns a consistent copy of the tasks and budget.
	State() (StoreState, error)

	// SetBudget changes the budget without touching stored tasks.
	SetBudget(budget int) error
}

// StoreState is a point-in-time copy of a task repository.
type StoreState struct {
	Tasks  []Task
	Budget int
}

// Total returns the sum of task durations.
func (s StoreState) Total() int {
	return TotalDuration(s.Tasks)
}

// Remaining returns the budget left, possibly negative.
func (s StoreState) Remaining() int {
	return s.Budget - s.Total()
}

// DisplayRemaining is Remaining floored at zero.
func (s StoreState) DisplayRemaining() int {
	return max(0, s.Remaining())
}

// Overcommitted reports whether the tasks exceed the budget.
func (s StoreState) Overcommitted() bool {
	return s.Remaining() < 0
}

// TaskFileParser decodes task files.
type TaskFileParser interface {
	// Parse decodes content into a task file.
	Parse(content []byte) (*TaskFile, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the config template to the global path.
	InitGlobalConfig(force bool) (string, error)

	// InitLocalConfig writes the config template to the local path.
	InitLocalConfig(force bool) (string, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger writes operational log entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
