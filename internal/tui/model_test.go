package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskplan/internal/app"
	"github.com/runoshun/taskplan/internal/domain"
	"github.com/runoshun/taskplan/internal/infra/memstore"
	"github.com/runoshun/taskplan/internal/testutil"
)

func newTestModel(t *testing.T, budget int) *Model {
	t.Helper()
	store, err := memstore.New(budget, nil)
	require.NoError(t, err)
	c := app.NewWithDeps(store, &testutil.MockConfigLoader{}, &testutil.MockConfigManager{}, nil)

	m := New(c)
	m = drain(t, m, m.Init())
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and returns the resulting command without running it.
func press(t *testing.T, m *Model, msg tea.KeyMsg) (*Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(*Model)
	require.True(t, ok, "Update should return *Model")
	return model, cmd
}

// typeText sends each rune as a key press. Input commands such as cursor
// blinks are dropped.
func typeText(t *testing.T, m *Model, s string) *Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, keyRunes(string(r)))
	}
	return m
}

// drain runs cmd and feeds its messages back until no TUI message follows.
func drain(t *testing.T, m *Model, cmd tea.Cmd) *Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(Msg); !ok {
			return m
		}
		updated, next := m.Update(msg)
		model, ok := updated.(*Model)
		require.True(t, ok, "Update should return *Model")
		m, cmd = model, next
	}
	return m
}

func addTask(t *testing.T, m *Model, name, duration string, priority domain.Priority) *Model {
	t.Helper()
	m, _ = press(t, m, keyRunes("a"))
	require.Equal(t, ModeAdd, m.Mode())
	m = typeText(t, m, name)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, duration)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, keyRunes(string(rune('0'+int(priority)))))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return drain(t, m, cmd)
}

func TestModel_InitLoadsBudget(t *testing.T) {
	m := newTestModel(t, 60)

	assert.Equal(t, 60, m.budget)
	assert.Contains(t, m.View(), "Remaining Time: 60 / 60 minutes")
	assert.Contains(t, m.View(), "No tasks yet")
}

func TestModel_AddTask(t *testing.T) {
	m := newTestModel(t, 60)

	m = addTask(t, m, "Email", "15", domain.PriorityHigh)

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, Notice{Kind: NoticeSuccess, Text: "Task added successfully!"}, m.Notice())
	require.Len(t, m.tasks, 1)
	assert.Equal(t, "Email", m.tasks[0].Name)
	assert.Equal(t, 15, m.tasks[0].Duration)
	assert.Equal(t, domain.PriorityHigh, m.tasks[0].Priority)
	view := m.View()
	assert.Contains(t, view, "Remaining Time: 45 / 60 minutes")
	assert.Contains(t, view, "1 - High")
}

func TestModel_AddTask_ExceedsBudget(t *testing.T) {
	m := newTestModel(t, 30)
	m = addTask(t, m, "A", "25", domain.PriorityMedium)

	m = addTask(t, m, "B", "10", domain.PriorityLow)

	assert.Equal(t, NoticeWarning, m.Notice().Kind)
	assert.Equal(t, "Cannot add task! Total duration will exceed available time (30 minutes)", m.Notice().Text)
	assert.Equal(t, ModeAdd, m.Mode(), "form stays open for correction")
	assert.Len(t, m.tasks, 1)
}

func TestModel_AddTask_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		taskName string
		duration string
		want     string
	}{
		{"empty name", "", "10", "Task name cannot be empty"},
		{"blank name", "   ", "10", "Task name cannot be empty"},
		{"duration not a number", "A", "ten", "Duration must be a whole number of minutes"},
		{"zero duration", "A", "0", "Duration must be at least 1 minute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 60)

			m = addTask(t, m, tt.taskName, tt.duration, domain.PriorityMedium)

			assert.Equal(t, Notice{Kind: NoticeWarning, Text: tt.want}, m.Notice())
			assert.Empty(t, m.tasks)
		})
	}
}

func TestModel_AddForm_PriorityKeys(t *testing.T) {
	m := newTestModel(t, 60)
	m, _ = press(t, m, keyRunes("a"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, fieldPriority, m.focus)
	assert.Equal(t, domain.PriorityMedium, m.priority)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.PriorityHigh, m.priority)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.PriorityHigh, m.priority, "stays at High")
	m, _ = press(t, m, keyRunes("3"))
	assert.Equal(t, domain.PriorityLow, m.priority)
	m, _ = press(t, m, keyRunes("7"))
	assert.Equal(t, domain.PriorityLow, m.priority)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestModel_Schedule(t *testing.T) {
	// Setup
	m := newTestModel(t, 60)
	m = addTask(t, m, "Report", "30", domain.PriorityHigh)
	m = addTask(t, m, "Email", "15", domain.PriorityMedium)

	// Execute
	m, cmd := press(t, m, keyRunes("s"))
	m = drain(t, m, cmd)

	// Assert
	require.NotNil(t, m.schedule)
	assert.Equal(t, Notice{Kind: NoticeInfo, Text: "Total time used: 45 / 60 minutes (75%)"}, m.Notice())
	view := m.View()
	assert.Contains(t, view, "1. Email - 15 min - Priority: 2")
	assert.Contains(t, view, "2. Report - 30 min - Priority: 1")
}

func TestModel_Schedule_NoTasks(t *testing.T) {
	m := newTestModel(t, 60)

	m, cmd := press(t, m, keyRunes("s"))
	m = drain(t, m, cmd)

	assert.Nil(t, m.schedule)
	assert.Equal(t, Notice{Kind: NoticeWarning, Text: "No tasks to schedule."}, m.Notice())
}

func TestModel_MutationHidesSchedule(t *testing.T) {
	m := newTestModel(t, 60)
	m = addTask(t, m, "Report", "30", domain.PriorityHigh)
	m, cmd := press(t, m, keyRunes("s"))
	m = drain(t, m, cmd)
	require.NotNil(t, m.schedule)

	m = addTask(t, m, "Email", "5", domain.PriorityLow)

	assert.Nil(t, m.schedule)
}

func TestModel_ClearTasks(t *testing.T) {
	m := newTestModel(t, 60)
	m = addTask(t, m, "A", "10", domain.PriorityHigh)
	m = addTask(t, m, "B", "10", domain.PriorityHigh)

	m, _ = press(t, m, keyRunes("C"))
	require.Equal(t, ModeConfirm, m.Mode())
	assert.Contains(t, m.View(), "Clear All Tasks?")

	m, cmd := press(t, m, keyRunes("y"))
	m = drain(t, m, cmd)

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, Notice{Kind: NoticeSuccess, Text: "All tasks cleared!"}, m.Notice())
	assert.Empty(t, m.tasks)
	assert.Equal(t, 60, m.budget)
}

func TestModel_ClearTasks_Empty(t *testing.T) {
	m := newTestModel(t, 60)

	m, cmd := press(t, m, keyRunes("C"))
	require.NotNil(t, cmd)
	m = drain(t, m, cmd)

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, Notice{Kind: NoticeSuccess, Text: "All tasks cleared!"}, m.Notice())
	assert.Empty(t, m.tasks)
}

func TestModel_ClearTasks_Cancel(t *testing.T) {
	m := newTestModel(t, 60)
	m = addTask(t, m, "A", "10", domain.PriorityHigh)

	m, _ = press(t, m, keyRunes("C"))
	m, cmd := press(t, m, keyRunes("n"))

	assert.Nil(t, cmd)
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Len(t, m.tasks, 1)
}

func TestModel_RemoveSelectedTask(t *testing.T) {
	m := newTestModel(t, 60)
	m = addTask(t, m, "A", "10", domain.PriorityHigh)
	m = addTask(t, m, "B", "20", domain.PriorityLow)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	task, ok := m.SelectedTask()
	require.True(t, ok)
	require.Equal(t, "B", task.Name)

	m, _ = press(t, m, keyRunes("d"))
	m, cmd := press(t, m, keyRunes("y"))
	m = drain(t, m, cmd)

	require.Len(t, m.tasks, 1)
	assert.Equal(t, "A", m.tasks[0].Name)
	assert.Equal(t, 0, m.cursor, "cursor moves back into range")
	assert.Contains(t, m.View(), "Remaining Time: 50 / 60 minutes")
}

func TestModel_BudgetSteppers(t *testing.T) {
	m := newTestModel(t, 2)

	m, cmd := press(t, m, keyRunes("+"))
	m = drain(t, m, cmd)
	assert.Equal(t, 3, m.budget)

	m, cmd = press(t, m, keyRunes("-"))
	m = drain(t, m, cmd)
	m, cmd = press(t, m, keyRunes("-"))
	m = drain(t, m, cmd)
	assert.Equal(t, 1, m.budget)

	_, cmd = press(t, m, keyRunes("-"))
	assert.Nil(t, cmd, "budget does not go below 1")
}

func TestModel_BudgetInput(t *testing.T) {
	m := newTestModel(t, 60)

	m, _ = press(t, m, keyRunes("b"))
	require.Equal(t, ModeBudget, m.Mode())
	assert.Equal(t, "60", m.budgetInput.Value())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "90")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drain(t, m, cmd)

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, 90, m.budget)
	assert.Contains(t, m.View(), "Remaining Time: 90 / 90 minutes")
}

func TestModel_BudgetInput_Invalid(t *testing.T) {
	m := newTestModel(t, 60)
	m, _ = press(t, m, keyRunes("b"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "0")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drain(t, m, cmd)

	assert.Equal(t, ModeBudget, m.Mode())
	assert.Equal(t, Notice{Kind: NoticeWarning, Text: "Available time must be at least 1 minute"}, m.Notice())
	assert.Equal(t, 60, m.budget)
}

func TestModel_BudgetBelowCommitted(t *testing.T) {
	// Setup
	m := newTestModel(t, 60)
	m = addTask(t, m, "A", "40", domain.PriorityHigh)

	// Execute
	m, _ = press(t, m, keyRunes("b"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "20")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drain(t, m, cmd)

	// Assert
	assert.Len(t, m.tasks, 1, "tasks are kept")
	assert.True(t, m.overcommitted)
	assert.Equal(t, NoticeWarning, m.Notice().Kind)
	assert.Contains(t, m.View(), "Remaining Time: 0 / 20 minutes")

	m = addTask(t, m, "B", "1", domain.PriorityHigh)
	assert.Equal(t, "Cannot add task! Total duration will exceed available time (20 minutes)", m.Notice().Text)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, 60)

	_, cmd := press(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_TypingQDoesNotQuitInForm(t *testing.T) {
	m := newTestModel(t, 60)
	m, _ = press(t, m, keyRunes("a"))

	m = typeText(t, m, "quiz")

	assert.Equal(t, ModeAdd, m.Mode())
	assert.Equal(t, "quiz", m.nameInput.Value())
}
