package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskplan/internal/domain"
)

// ImportTasksInput contains the parameters for importing a task file.
type ImportTasksInput struct {
	Content       []byte // Raw task file
	UseFileBudget bool   // Apply the file's budget, if it sets one, before adding
}

// ImportTasksOutput contains the result of an import.
type ImportTasksOutput struct {
	Added  []domain.Task
	Budget int // Budget after the import
}

// ImportTasks is the use case for adding every task of a task file.
type ImportTasks struct {
	tasks  domain.TaskRepository
	parser domain.TaskFileParser
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, parser domain.TaskFileParser, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		tasks:  tasks,
		parser: parser,
		logger: logger,
	}
}

// Execute parses the file and adds its tasks in order. It stops at the first
// task the store rejects; tasks added before it are kept.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	file, err := uc.parser.Parse(in.Content)
	if err != nil {
		return nil, err
	}

	if in.UseFileBudget && file.Budget > 0 {
		if err := uc.tasks.SetBudget(file.Budget); err != nil {
			return nil, fmt.Errorf("set budget: %w", err)
		}
	}

	added := make([]domain.Task, 0, len(file.Tasks))
	for i, d := range file.Tasks {
		task, err := uc.tasks.Add(d.Name, d.Duration, d.Priority)
		if err != nil {
			if uc.logger != nil {
				uc.logger.Warn("import", fmt.Sprintf("stopped at task %d after adding %d: %v", i+1, len(added), err))
			}
			return nil, fmt.Errorf("task %d %q (%d added before it): %w", i+1, d.Name, len(added), err)
		}
		added = append(added, task)
	}

	state, err := uc.tasks.State()
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("import", fmt.Sprintf("added %d tasks", len(added)))
	}

	return &ImportTasksOutput{Added: added, Budget: state.Budget}, nil
}
