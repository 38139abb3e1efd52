package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrValidation     = errors.New("invalid input")
	ErrBudgetExceeded = errors.New("budget exceeded")
	ErrTaskNotFound   = errors.New("task not found")
	ErrNoTasks        = errors.New("no tasks to schedule")
	ErrInvalidPolicy  = errors.New("invalid schedule policy")
	ErrConfigExists   = errors.New("config file already exists")
	ErrEmptyFile      = errors.New("file is empty")
	ErrNoTasksInFile  = errors.New("no tasks found in file")
)

// ValidationError reports a rejected field value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// BudgetExceededError reports an insertion that would push the committed total
// above the budget.
type BudgetExceededError struct {
	Budget    int
	Committed int
	Requested int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("total duration will exceed available time (%d minutes)", e.Budget)
}

// Unwrap lets errors.Is match ErrBudgetExceeded.
func (e *BudgetExceededError) Unwrap() error {
	return ErrBudgetExceeded
}

// Over returns how many minutes the insertion would overshoot by.
func (e *BudgetExceededError) Over() int {
	return e.Requested - (e.Budget - e.Committed)
}
