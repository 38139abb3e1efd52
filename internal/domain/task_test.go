package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name      string
		taskName  string
		duration  int
		priority  Priority
		wantField string
		wantName  string
	}{
		{name: "valid", taskName: "Write report", duration: 30, priority: PriorityHigh, wantName: "Write report"},
		{name: "trims name", taskName: "  Email  ", duration: 5, priority: PriorityLow, wantName: "Email"},
		{name: "empty name", taskName: "", duration: 5, priority: PriorityHigh, wantField: "name"},
		{name: "whitespace name", taskName: " \t ", duration: 5, priority: PriorityHigh, wantField: "name"},
		{name: "zero duration", taskName: "x", duration: 0, priority: PriorityHigh, wantField: "duration"},
		{name: "negative duration", taskName: "x", duration: -3, priority: PriorityHigh, wantField: "duration"},
		{name: "priority zero", taskName: "x", duration: 1, priority: 0, wantField: "priority"},
		{name: "priority four", taskName: "x", duration: 1, priority: 4, wantField: "priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.taskName, tt.duration, tt.priority)
			if tt.wantField != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantField, verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, task.Name)
			assert.Equal(t, tt.duration, task.Duration)
			assert.Equal(t, tt.priority, task.Priority)
		})
	}
}

func TestPriority_String(t *testing.T) {
	assert.Equal(t, "1 - High", PriorityHigh.String())
	assert.Equal(t, "2 - Medium", PriorityMedium.String())
	assert.Equal(t, "3 - Low", PriorityLow.String())
	assert.Equal(t, "Unknown", Priority(7).Label())
}

func TestTask_Line(t *testing.T) {
	task := Task{Name: "Review PR", Duration: 15, Priority: PriorityMedium}
	assert.Equal(t, "3. Review PR - 15 min - Priority: 2", task.Line(3))
}

func TestTotalDuration(t *testing.T) {
	assert.Equal(t, 0, TotalDuration(nil))
	assert.Equal(t, 17, TotalDuration([]Task{{Duration: 5}, {Duration: 12}}))
}
