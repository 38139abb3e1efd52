package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskplan/internal/domain"
)

// ClearTasksInput contains the parameters for clearing tasks.
type ClearTasksInput struct{}

// ClearTasksOutput contains the result of clearing tasks.
type ClearTasksOutput struct {
	Cleared int // Number of tasks removed
}

// ClearTasks is the use case for emptying the task list.
type ClearTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewClearTasks creates a new ClearTasks use case.
func NewClearTasks(tasks domain.TaskRepository, logger domain.Logger) *ClearTasks {
	return &ClearTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes every task. The budget is left as is.
func (uc *ClearTasks) Execute(_ context.Context, _ ClearTasksInput) (*ClearTasksOutput, error) {
	n, err := uc.tasks.Clear()
	if err != nil {
		return nil, fmt.Errorf("clear tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("cleared %d tasks", n))
	}

	return &ClearTasksOutput{Cleared: n}, nil
}
