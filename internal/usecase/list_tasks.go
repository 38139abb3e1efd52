package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskplan/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	WithScores bool // Compute Evaluate scores for each task
}

// ListTasksOutput contains the current session state.
// Fields are ordered to minimize memory padding.
type ListTasksOutput struct {
	Tasks            []domain.Task   // Insertion order
	Scores           map[int]float64 // Task ID -> score (only WithScores)
	Budget           int
	Total            int
	Remaining        int // May be negative
	DisplayRemaining int // Remaining floored at zero
	Overcommitted    bool
}

// ListTasks is the use case for reading the task list and budget.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute returns the tasks together with budget figures.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	state, err := uc.tasks.State()
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	out := &ListTasksOutput{
		Tasks:            state.Tasks,
		Budget:           state.Budget,
		Total:            state.Total(),
		Remaining:        state.Remaining(),
		DisplayRemaining: state.DisplayRemaining(),
		Overcommitted:    state.Overcommitted(),
	}

	if in.WithScores {
		out.Scores = make(map[int]float64, len(state.Tasks))
		for _, t := range state.Tasks {
			out.Scores[t.ID] = domain.Evaluate(t, state.Budget)
		}
	}

	return out, nil
}
