package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskplan/internal/domain"
)

// ScheduleTasksInput contains the parameters for a scheduling run.
type ScheduleTasksInput struct {
	Policy domain.Policy // Empty = configured policy
}

// ScheduleTasksOutput contains the result of a scheduling run.
type ScheduleTasksOutput struct {
	Result domain.ScheduleResult
	Policy domain.Policy // Policy that was applied
}

// ScheduleTasks is the use case for picking the tasks that fit the budget.
type ScheduleTasks struct {
	tasks        domain.TaskRepository
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewScheduleTasks creates a new ScheduleTasks use case.
func NewScheduleTasks(tasks domain.TaskRepository, configLoader domain.ConfigLoader, logger domain.Logger) *ScheduleTasks {
	return &ScheduleTasks{
		tasks:        tasks,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Execute schedules a snapshot of the stored tasks against the current
// budget. The store itself is not modified. Returns domain.ErrNoTasks when
// there is nothing to schedule.
func (uc *ScheduleTasks) Execute(_ context.Context, in ScheduleTasksInput) (*ScheduleTasksOutput, error) {
	state, err := uc.tasks.State()
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if len(state.Tasks) == 0 {
		return nil, domain.ErrNoTasks
	}

	policy, err := uc.resolvePolicy(in.Policy)
	if err != nil {
		return nil, err
	}

	result := domain.Schedule(state.Tasks, state.Budget, policy)

	if uc.logger != nil {
		uc.logger.Info("schedule", fmt.Sprintf("policy=%s selected %d/%d tasks, %d/%d min",
			policy, len(result.Selected), len(state.Tasks), result.TotalUsed, result.Budget))
	}

	return &ScheduleTasksOutput{Result: result, Policy: policy}, nil
}

func (uc *ScheduleTasks) resolvePolicy(p domain.Policy) (domain.Policy, error) {
	if p != "" {
		return domain.ParsePolicy(string(p))
	}
	if uc.configLoader == nil {
		return domain.DefaultPolicy, nil
	}
	cfg, err := uc.configLoader.Load()
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("schedule", fmt.Sprintf("load config: %v, using %s policy", err, domain.DefaultPolicy))
		}
		return domain.DefaultPolicy, nil
	}
	return cfg.SchedulePolicy(), nil
}
