package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskplan/internal/domain"
)

// SetBudgetInput contains the parameters for changing the budget.
type SetBudgetInput struct {
	Budget int // Minutes (>= 1)
}

// SetBudgetOutput contains the result of changing the budget.
type SetBudgetOutput struct {
	Budget        int
	Remaining     int  // May be negative
	Overcommitted bool // Stored tasks exceed the new budget
}

// SetBudget is the use case for changing the available time.
type SetBudget struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewSetBudget creates a new SetBudget use case.
func NewSetBudget(tasks domain.TaskRepository, logger domain.Logger) *SetBudget {
	return &SetBudget{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute changes the budget. Stored tasks are never dropped; when they no
// longer fit the output reports Overcommitted.
func (uc *SetBudget) Execute(_ context.Context, in SetBudgetInput) (*SetBudgetOutput, error) {
	if err := uc.tasks.SetBudget(in.Budget); err != nil {
		return nil, err
	}

	state, err := uc.tasks.State()
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Debug("budget", fmt.Sprintf("set to %d min (committed %d)", state.Budget, state.Total()))
		if state.Overcommitted() {
			uc.logger.Warn("budget", fmt.Sprintf("overcommitted by %d min", -state.Remaining()))
		}
	}

	return &SetBudgetOutput{
		Budget:        state.Budget,
		Remaining:     state.Remaining(),
		Overcommitted: state.Overcommitted(),
	}, nil
}
