package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskplan/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(progressWidth, max(10, m.contentWidth()-appPadding))
		return m, nil

	case MsgTasksLoaded:
		m.applyList(msg)
		return m, nil

	case MsgTaskAdded:
		m.mode = ModeNormal
		m.resetForm()
		m.schedule = nil
		m.notice = Notice{Kind: NoticeSuccess, Text: "Task added successfully!"}
		return m, m.loadTasks()

	case MsgTaskRemoved:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.schedule = nil
		m.notice = Notice{Kind: NoticeSuccess, Text: fmt.Sprintf("Removed %q.", msg.Task.Name)}
		return m, m.loadTasks()

	case MsgTasksCleared:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.schedule = nil
		m.cursor = 0
		m.notice = Notice{Kind: NoticeSuccess, Text: "All tasks cleared!"}
		return m, m.loadTasks()

	case MsgBudgetSet:
		m.mode = ModeNormal
		m.budgetInput.Blur()
		m.schedule = nil
		if msg.Overcommitted {
			m.notice = Notice{Kind: NoticeWarning, Text: fmt.Sprintf(
				"Tasks exceed available time by %d minutes. Remove tasks before adding more.", -msg.Remaining)}
		} else {
			m.notice = Notice{}
		}
		return m, m.loadTasks()

	case MsgScheduled:
		result := msg.Result
		m.schedule = &result
		m.notice = Notice{Kind: NoticeInfo, Text: result.Summary()}
		return m, nil

	case MsgError:
		m.confirmAction = ConfirmNone
		if m.mode == ModeConfirm {
			m.mode = ModeNormal
		}
		m.notice = noticeFor(msg.Err)
		return m, nil
	}

	return m, nil
}

// applyList copies list output into the model and keeps the cursor in range.
func (m *Model) applyList(msg MsgTasksLoaded) {
	if msg.List == nil {
		return
	}
	m.tasks = msg.List.Tasks
	m.scores = msg.List.Scores
	m.budget = msg.List.Budget
	m.total = msg.List.Total
	m.remaining = msg.List.Remaining
	m.displayRemaining = msg.List.DisplayRemaining
	m.overcommitted = msg.List.Overcommitted
	if m.cursor >= len(m.tasks) {
		m.cursor = max(0, len(m.tasks)-1)
	}
}

// noticeFor turns an error into a banner. Expected rejections become
// warnings; anything else is shown as an error.
func noticeFor(err error) Notice {
	var budgetErr *domain.BudgetExceededError
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &budgetErr):
		return Notice{Kind: NoticeWarning, Text: fmt.Sprintf(
			"Cannot add task! Total duration will exceed available time (%d minutes)", budgetErr.Budget)}
	case errors.As(err, &validationErr):
		return Notice{Kind: NoticeWarning, Text: validationText(validationErr)}
	case errors.Is(err, domain.ErrNoTasks):
		return Notice{Kind: NoticeWarning, Text: "No tasks to schedule."}
	default:
		return Notice{Kind: NoticeError, Text: "Error: " + err.Error()}
	}
}

// validationText renders a validation error with form field names.
func validationText(err *domain.ValidationError) string {
	field := err.Field
	switch field {
	case "name":
		field = "Task name"
	case "duration":
		field = "Duration"
	case "priority":
		field = "Priority"
	case "budget":
		field = "Available time"
	}
	return field + " " + err.Reason
}

// handleKeyMsg dispatches key events by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeAdd:
		return m.handleAddMode(msg)
	case ModeBudget:
		return m.handleBudgetMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeNormal:
	}
	return m.handleNormalMode(msg)
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.notice = Notice{}
		return m, tea.Batch(m.focusField(fieldName), textinput.Blink)

	case key.Matches(msg, m.keys.Remove):
		if _, ok := m.SelectedTask(); ok {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmRemove
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if len(m.tasks) == 0 {
			return m, m.clearTasks()
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClear
		return m, nil

	case key.Matches(msg, m.keys.Schedule):
		return m, m.runSchedule()

	case key.Matches(msg, m.keys.Budget):
		return m, m.openBudgetInput()

	case key.Matches(msg, m.keys.BudgetUp):
		return m, m.setBudget(m.budget + 1)

	case key.Matches(msg, m.keys.BudgetDown):
		if m.budget <= 1 {
			return m, nil
		}
		return m, m.setBudget(m.budget - 1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleAddMode handles keys in the add form.
func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.resetForm()
		m.nameInput.Blur()
		m.durationInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitForm()

	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	}

	if m.focus == fieldPriority {
		switch {
		case key.Matches(msg, m.keys.PriorityUp):
			if m.priority > domain.PriorityHigh {
				m.priority--
			}
		case key.Matches(msg, m.keys.PriorityDown):
			if m.priority < domain.PriorityLow {
				m.priority++
			}
		default:
			if p, err := strconv.Atoi(msg.String()); err == nil && domain.Priority(p).IsValid() {
				m.priority = domain.Priority(p)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == fieldName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.durationInput, cmd = m.durationInput.Update(msg)
	}
	return m, cmd
}

// submitForm validates the form input and starts the add command.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		m.notice = Notice{Kind: NoticeWarning, Text: "Task name cannot be empty"}
		m.focusField(fieldName)
		return m, nil
	}
	duration, err := strconv.Atoi(strings.TrimSpace(m.durationInput.Value()))
	if err != nil {
		m.notice = Notice{Kind: NoticeWarning, Text: "Duration must be a whole number of minutes"}
		m.focusField(fieldDuration)
		return m, nil
	}
	return m, m.addTask(name, duration, m.priority)
}

// handleBudgetMode handles keys in the budget input.
func (m *Model) handleBudgetMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.budgetInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		budget, err := strconv.Atoi(strings.TrimSpace(m.budgetInput.Value()))
		if err != nil {
			m.notice = Notice{Kind: NoticeWarning, Text: "Available time must be a whole number of minutes"}
			return m, nil
		}
		return m, m.setBudget(budget)
	}

	var cmd tea.Cmd
	m.budgetInput, cmd = m.budgetInput.Update(msg)
	return m, cmd
}

// handleConfirmMode handles keys in confirmation dialogs.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Confirm) {
		// Anything else cancels
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil
	}

	switch m.confirmAction {
	case ConfirmRemove:
		task, ok := m.SelectedTask()
		if !ok {
			break
		}
		return m, m.removeTask(task.ID)
	case ConfirmClear:
		return m, m.clearTasks()
	case ConfirmNone:
	}

	m.mode = ModeNormal
	m.confirmAction = ConfirmNone
	return m, nil
}
