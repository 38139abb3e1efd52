package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TaskDraft is a task that has not been added to a store yet.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	Name     string   `json:"name" yaml:"name"`
	Duration int      `json:"duration" yaml:"duration"`
	Priority Priority `json:"priority" yaml:"priority"`
}

// TaskFile is the decoded form of a task file.
type TaskFile struct {
	Tasks  []TaskDraft `json:"tasks" yaml:"tasks"`
	Budget int         `json:"budget,omitempty" yaml:"budget,omitempty"` // 0 = not set
}

// ParseTaskSpec parses the "name:duration:priority" form used on the command
// line. "name:duration" defaults the priority to Medium. With three or more
// fields the last one is always the priority, so a name containing colons
// needs an explicit priority ("Meeting: prep:30:2").
func ParseTaskSpec(s string) (TaskDraft, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return TaskDraft{}, &ValidationError{Field: "task", Reason: fmt.Sprintf("%q: want name:duration[:priority]", s)}
	}

	priority := PriorityMedium
	if len(parts) >= 3 {
		last := strings.TrimSpace(parts[len(parts)-1])
		p, err := strconv.Atoi(last)
		if err != nil || !Priority(p).IsValid() {
			return TaskDraft{}, &ValidationError{Field: "priority", Reason: fmt.Sprintf("%q is not 1, 2 or 3 (names containing ':' need an explicit priority)", last)}
		}
		priority = Priority(p)
		parts = parts[:len(parts)-1]
	}

	duration, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return TaskDraft{}, &ValidationError{Field: "duration", Reason: fmt.Sprintf("%q is not a number", parts[len(parts)-1])}
	}
	name := strings.Join(parts[:len(parts)-1], ":")

	draft := TaskDraft{Name: name, Duration: duration, Priority: priority}
	if _, err := NewTask(draft.Name, draft.Duration, draft.Priority); err != nil {
		return TaskDraft{}, err
	}
	return draft, nil
}
