package tui

import (
	"github.com/runoshun/taskplan/internal/domain"
	"github.com/runoshun/taskplan/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task list and budget figures are loaded.
type MsgTasksLoaded struct {
	List *usecase.ListTasksOutput
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskAdded is sent when a task is added.
type MsgTaskAdded struct {
	Task      domain.Task
	Remaining int
}

func (MsgTaskAdded) sealed() {}

// MsgTaskRemoved is sent when a task is removed.
type MsgTaskRemoved struct {
	Task domain.Task
}

func (MsgTaskRemoved) sealed() {}

// MsgTasksCleared is sent when all tasks are removed.
type MsgTasksCleared struct {
	Cleared int
}

func (MsgTasksCleared) sealed() {}

// MsgBudgetSet is sent when the budget changes.
type MsgBudgetSet struct {
	Budget        int
	Remaining     int
	Overcommitted bool
}

func (MsgBudgetSet) sealed() {}

// MsgScheduled is sent when a scheduling run finishes.
type MsgScheduled struct {
	Result domain.ScheduleResult
	Policy domain.Policy
}

func (MsgScheduled) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
