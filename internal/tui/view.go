package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/taskplan/internal/domain"
)

const (
	minNameWidth = 12
	maxNameWidth = 48
)

// View renders the TUI.
func (m *Model) View() string {
	sections := []string{
		m.viewHeader(),
		m.viewBudget(),
	}
	if m.notice.Kind != NoticeNone {
		sections = append(sections, m.styles.NoticeStyle(m.notice.Kind).Render(m.notice.Text))
	}

	sections = append(sections, m.viewTaskList())

	switch m.mode {
	case ModeAdd:
		sections = append(sections, m.viewAddDialog())
	case ModeConfirm:
		sections = append(sections, m.viewConfirmDialog())
	case ModeNormal, ModeBudget:
	}

	if m.schedule != nil {
		sections = append(sections, m.viewSchedule())
	}

	sections = append(sections, m.viewFooter())

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// viewHeader renders the title bar.
func (m *Model) viewHeader() string {
	return m.styles.Header.Render(m.styles.HeaderText.Render("Task Scheduler"))
}

// viewBudget renders the available and remaining time lines.
func (m *Model) viewBudget() string {
	var available string
	if m.mode == ModeBudget {
		available = "Available Time: " + m.budgetInput.View() + " minutes"
	} else {
		available = "Available Time: " +
			m.styles.Stepper.Render("[-]") + " " +
			m.styles.Budget.Render(fmt.Sprintf("%d", m.budget)) + " " +
			m.styles.Stepper.Render("[+]") + " minutes"
	}

	remaining := m.styles.Remaining.Render(RemainingLine(m.displayRemaining, m.budget))
	if m.overcommitted {
		remaining = m.styles.Overcommit.Render(RemainingLine(m.displayRemaining, m.budget) +
			fmt.Sprintf(" (over by %d)", -m.remaining))
	}

	return lipgloss.JoinVertical(lipgloss.Left, available, remaining)
}

// RemainingLine formats the remaining time shown under the budget.
func RemainingLine(displayRemaining, budget int) string {
	return fmt.Sprintf("Remaining Time: %d / %d minutes", displayRemaining, budget)
}

// viewTaskList renders the stored tasks in insertion order.
func (m *Model) viewTaskList() string {
	title := m.styles.Section.Render(fmt.Sprintf("Tasks (%d, %d min)", len(m.tasks), m.total))
	if len(m.tasks) == 0 {
		hint := m.styles.EmptyList.Render("No tasks yet. Press " + m.styles.FooterKey.Render("a") + " to add one.")
		return lipgloss.JoinVertical(lipgloss.Left, title, hint)
	}

	var b strings.Builder
	b.WriteString(title)
	for i, task := range m.tasks {
		selected := i == m.cursor
		b.WriteString("\n")
		b.WriteString(m.renderTaskLine(task, selected))
		if selected && m.mode == ModeNormal {
			if score, ok := m.scores[task.ID]; ok {
				b.WriteString("\n")
				b.WriteString(m.styles.TaskDetail.Render(fmt.Sprintf("score %.1f", score)))
			}
		}
	}
	return b.String()
}

// renderTaskLine renders one task row: "▸ #1 name  30 min  1 - High".
func (m *Model) renderTaskLine(task domain.Task, selected bool) string {
	cursor := m.styles.CursorNormal.Render(" ")
	nameStyle := m.styles.TaskNormal
	if selected {
		cursor = m.styles.CursorSelected.Render("▸")
		nameStyle = m.styles.TaskSelected
	}

	nameWidth := m.nameWidth()
	name := truncate.StringWithTail(task.Name, uint(nameWidth), "…")
	name += strings.Repeat(" ", max(0, nameWidth-lipgloss.Width(name)))

	return fmt.Sprintf("%s %s %s  %s  %s",
		cursor,
		m.styles.TaskID.Render(fmt.Sprintf("#%-3d", task.ID)),
		nameStyle.Render(name),
		m.styles.TaskDuration.Render(fmt.Sprintf("%4d min", task.Duration)),
		m.styles.PriorityStyle(task.Priority).Render(task.Priority.String()),
	)
}

// nameWidth returns the column width for task names.
func (m *Model) nameWidth() int {
	longest := minNameWidth
	for _, t := range m.tasks {
		longest = max(longest, lipgloss.Width(t.Name))
	}
	width := min(longest, maxNameWidth)
	if cw := m.contentWidth(); cw > 0 {
		// cursor, id, duration and priority columns take about 30 cells
		width = min(width, max(minNameWidth, cw-30))
	}
	return width
}

// viewSchedule renders the last scheduling result in display order.
func (m *Model) viewSchedule() string {
	lines := []string{m.styles.Section.Render("Scheduled Tasks")}
	if len(m.schedule.Selected) == 0 {
		lines = append(lines, m.styles.EmptyList.Render("Nothing fits into the available time."))
	}
	for _, line := range m.schedule.Lines() {
		lines = append(lines, m.styles.ScheduleLine.Render(line))
	}
	lines = append(lines,
		"",
		"  "+m.progress.ViewAs(m.schedule.Ratio()),
		m.styles.Summary.Render(m.schedule.Summary()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// viewAddDialog renders the add task form.
func (m *Model) viewAddDialog() string {
	label := func(f formField, text string) string {
		if m.focus == f {
			return m.styles.FieldFocused.Render(text)
		}
		return m.styles.FieldLabel.Render(text)
	}

	priorities := make([]string, 0, len(domain.AllPriorities()))
	for _, p := range domain.AllPriorities() {
		style := m.styles.Choice
		switch {
		case p == m.priority && m.focus == fieldPriority:
			style = m.styles.ChoiceFocused
		case p == m.priority:
			style = m.styles.ChoiceChosen
		}
		priorities = append(priorities, style.Render(p.String()))
	}

	hint := m.styles.DialogKey.Render("tab") + m.styles.DialogText.Render(" next  ") +
		m.styles.DialogKey.Render("←/→") + m.styles.DialogText.Render(" priority  ") +
		m.styles.DialogKey.Render("enter") + m.styles.DialogText.Render(" add  ") +
		m.styles.DialogKey.Render("esc") + m.styles.DialogText.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render("Add Task"),
		"",
		label(fieldName, "Task Name")+" "+m.nameInput.View(),
		label(fieldDuration, "Duration")+" "+m.durationInput.View(),
		label(fieldPriority, "Priority")+" "+lipgloss.JoinHorizontal(lipgloss.Top, priorities...),
		"",
		hint,
	)

	return m.styles.Dialog.Width(m.dialogWidth()).Render(content)
}

// viewConfirmDialog renders the remove or clear confirmation.
func (m *Model) viewConfirmDialog() string {
	var title, body string
	switch m.confirmAction {
	case ConfirmRemove:
		task, _ := m.SelectedTask()
		title = "Remove Task?"
		body = fmt.Sprintf("%s - %d min - Priority: %d", task.Name, task.Duration, int(task.Priority))
	case ConfirmClear:
		title = "Clear All Tasks?"
		body = fmt.Sprintf("This will remove %d tasks.", len(m.tasks))
	case ConfirmNone:
		return ""
	}

	titleStyle := m.styles.DialogTitle.Foreground(Colors.Error)
	hint := m.styles.DialogKey.Render("[ y ]") + m.styles.DialogText.Render(" Confirm  ") +
		m.styles.DialogMuted.Render("[ n ] Cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		m.styles.DialogText.Render(body),
		"",
		hint,
	)
	return m.styles.Dialog.Width(m.dialogWidth()).Render(content)
}

// dialogWidth returns the width for dialogs.
func (m *Model) dialogWidth() int {
	contentWidth := m.contentWidth()
	if contentWidth <= 0 {
		return 60
	}
	width := min(contentWidth-10, 80)
	// Minimum width for usability, but never exceed content width
	return min(max(width, 20), contentWidth)
}

// viewFooter renders key hints.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeBudget:
		keyStyle := m.styles.FooterKey
		return m.styles.Footer.Render(keyStyle.Render("enter") + " set  " + keyStyle.Render("esc") + " cancel")
	case ModeAdd, ModeConfirm:
		return ""
	case ModeNormal:
	}
	return m.styles.Footer.Render(m.help.View(m.keys))
}
