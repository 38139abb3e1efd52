// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the urgency rank of a task. Lower values are more urgent.
type Priority int

// Priority levels.
const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// AllPriorities returns the valid priorities, most urgent first.
func AllPriorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid reports whether p is one of the known priority levels.
func (p Priority) IsValid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// Label returns the human-readable name of the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	}
	return "Unknown"
}

// String returns the selector form, e.g. "1 - High".
func (p Priority) String() string {
	return fmt.Sprintf("%d - %s", int(p), p.Label())
}

// Task is a unit of work competing for the time budget.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created  time.Time `json:"created" yaml:"created"`
	Name     string    `json:"name" yaml:"name"`
	ID       int       `json:"id" yaml:"id"`
	Duration int       `json:"duration" yaml:"duration"` // Minutes
	Priority Priority  `json:"priority" yaml:"priority"`
}

// NewTask validates the fields and builds a task.
// The name is trimmed; ID and Created are left for the store to assign.
func NewTask(name string, duration int, priority Priority) (Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if duration < 1 {
		return Task{}, &ValidationError{Field: "duration", Reason: "must be at least 1 minute"}
	}
	if !priority.IsValid() {
		return Task{}, &ValidationError{Field: "priority", Reason: fmt.Sprintf("must be 1, 2 or 3 (got %d)", int(priority))}
	}
	return Task{Name: name, Duration: duration, Priority: priority}, nil
}

// Line formats the task as a numbered schedule entry.
func (t Task) Line(index int) string {
	return fmt.Sprintf("%d. %s - %d min - Priority: %d", index, t.Name, t.Duration, int(t.Priority))
}

// TotalDuration sums the durations of tasks.
func TotalDuration(tasks []Task) int {
	total := 0
	for _, t := range tasks {
		total += t.Duration
	}
	return total
}
