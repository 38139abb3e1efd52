package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskplan/internal/app"
	"github.com/runoshun/taskplan/internal/domain"
	"github.com/runoshun/taskplan/internal/usecase"
)

const (
	appPadding    = 4
	progressWidth = 40
)

// Model is the main bubbletea model for the TUI.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	container *app.Container

	// State
	tasks    []domain.Task
	scores   map[int]float64
	schedule *domain.ScheduleResult
	notice   Notice

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	progress progress.Model

	// Input state
	nameInput     textinput.Model
	durationInput textinput.Model
	budgetInput   textinput.Model

	// Numeric state
	mode             Mode
	confirmAction    ConfirmAction
	focus            formField
	priority         domain.Priority
	budget           int
	total            int
	remaining        int
	displayRemaining int
	cursor           int
	width            int
	height           int
	overcommitted    bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ni := textinput.New()
	ni.Placeholder = "What needs doing?"
	ni.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "minutes"
	di.CharLimit = 5

	bi := textinput.New()
	bi.Placeholder = "minutes"
	bi.CharLimit = 5

	return &Model{
		container:     c,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		help:          help.New(),
		progress:      progress.New(progress.WithGradient(string(Colors.Primary), string(Colors.Success)), progress.WithWidth(progressWidth)),
		nameInput:     ni,
		durationInput: di,
		budgetInput:   bi,
		mode:          ModeNormal,
		priority:      domain.PriorityMedium,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that loads tasks and budget figures.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{WithScores: true})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{List: out}
	}
}

// addTask returns a command that adds a task.
func (m *Model) addTask(name string, duration int, priority domain.Priority) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
			Name:     name,
			Duration: duration,
			Priority: priority,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdded{Task: out.Task, Remaining: out.Remaining}
	}
}

// removeTask returns a command that removes a task.
func (m *Model) removeTask(id int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RemoveTaskUseCase().Execute(context.Background(), usecase.RemoveTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskRemoved{Task: out.Task}
	}
}

// clearTasks returns a command that removes all tasks.
func (m *Model) clearTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ClearTasksUseCase().Execute(context.Background(), usecase.ClearTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksCleared{Cleared: out.Cleared}
	}
}

// setBudget returns a command that changes the budget.
func (m *Model) setBudget(budget int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SetBudgetUseCase().Execute(context.Background(), usecase.SetBudgetInput{Budget: budget})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgBudgetSet{Budget: out.Budget, Remaining: out.Remaining, Overcommitted: out.Overcommitted}
	}
}

// runSchedule returns a command that schedules the current tasks.
func (m *Model) runSchedule() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ScheduleTasksUseCase().Execute(context.Background(), usecase.ScheduleTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgScheduled{Result: out.Result, Policy: out.Policy}
	}
}

// SelectedTask returns the task under the cursor.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Notice returns the current feedback banner.
func (m *Model) Notice() Notice {
	return m.notice
}

// resetForm clears the add form. The chosen priority is kept.
func (m *Model) resetForm() {
	m.nameInput.Reset()
	m.durationInput.Reset()
	m.focus = fieldName
}

// focusField moves the form focus to f.
func (m *Model) focusField(f formField) tea.Cmd {
	m.focus = f
	m.nameInput.Blur()
	m.durationInput.Blur()
	switch f {
	case fieldName:
		return m.nameInput.Focus()
	case fieldDuration:
		return m.durationInput.Focus()
	case fieldPriority, fieldCount:
	}
	return nil
}

// openBudgetInput switches to budget mode with the current value filled in.
func (m *Model) openBudgetInput() tea.Cmd {
	m.mode = ModeBudget
	m.budgetInput.SetValue(strconv.Itoa(m.budget))
	m.budgetInput.CursorEnd()
	return m.budgetInput.Focus()
}

// contentWidth returns the usable width inside the app padding.
func (m *Model) contentWidth() int {
	return m.width - appPadding
}
