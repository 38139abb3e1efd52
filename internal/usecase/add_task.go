// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/taskplan/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Name     string          // Task name (required, trimmed)
	Duration int             // Minutes (>= 1)
	Priority domain.Priority // 1=High, 2=Medium, 3=Low
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task      domain.Task // The stored task
	Remaining int         // Budget left after the insertion
}

// AddTask is the use case for adding a task to the session.
type AddTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute validates and stores a task. Validation and budget failures are
// returned unwrapped so callers can match them with errors.As.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task, err := uc.tasks.Add(in.Name, in.Duration, in.Priority)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrBudgetExceeded) {
			if uc.logger != nil {
				uc.logger.Warn("task", fmt.Sprintf("rejected %q: %v", in.Name, err))
			}
			return nil, err
		}
		return nil, fmt.Errorf("add task: %w", err)
	}

	state, err := uc.tasks.State()
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added #%d %q (%d min, priority %d)", task.ID, task.Name, task.Duration, int(task.Priority)))
	}

	return &AddTaskOutput{Task: task, Remaining: state.Remaining()}, nil
}
