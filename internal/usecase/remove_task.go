package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskplan/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	TaskID int // Task ID to remove
}

// RemoveTaskOutput contains the result of removing a task.
type RemoveTaskOutput struct {
	Task domain.Task // The removed task
}

// RemoveTask is the use case for removing a single task.
type RemoveTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(tasks domain.TaskRepository, logger domain.Logger) *RemoveTask {
	return &RemoveTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the task with the given ID.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task #%d: %w", in.TaskID, err)
	}

	if err := uc.tasks.Remove(in.TaskID); err != nil {
		return nil, fmt.Errorf("remove task #%d: %w", in.TaskID, err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("removed #%d %q", task.ID, task.Name))
	}

	return &RemoveTaskOutput{Task: task}, nil
}
