package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskplan/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Info       lipgloss.Color
	Background lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Priority colors
	High   lipgloss.Color
	Medium lipgloss.Color
	Low    lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Info:       lipgloss.Color("#74B9FF"), // Light blue
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	High:   lipgloss.Color("#FF7675"), // Salmon
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	Low:    lipgloss.Color("#74B9FF"), // Light blue
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Budget     lipgloss.Style
	Stepper    lipgloss.Style
	Remaining  lipgloss.Style
	Overcommit lipgloss.Style

	// Section titles
	Section lipgloss.Style

	// Task list
	TaskNormal     lipgloss.Style
	TaskSelected   lipgloss.Style
	TaskID         lipgloss.Style
	TaskDuration   lipgloss.Style
	TaskDetail     lipgloss.Style
	CursorNormal   lipgloss.Style
	CursorSelected lipgloss.Style
	EmptyList      lipgloss.Style

	// Priority badges
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style

	// Notices
	NoticeSuccess lipgloss.Style
	NoticeWarning lipgloss.Style
	NoticeInfo    lipgloss.Style
	NoticeError   lipgloss.Style

	// Schedule
	ScheduleLine lipgloss.Style
	Summary      lipgloss.Style

	// Form
	Dialog        lipgloss.Style
	DialogTitle   lipgloss.Style
	DialogText    lipgloss.Style
	DialogKey     lipgloss.Style
	DialogMuted   lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldFocused  lipgloss.Style
	Choice        lipgloss.Style
	ChoiceChosen  lipgloss.Style
	ChoiceFocused lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			MarginBottom(1),
		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Colors.Primary).
			Padding(0, 1),
		Budget: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal),
		Stepper: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),
		Remaining: lipgloss.NewStyle().
			Foreground(Colors.Success),
		Overcommit: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary).
			MarginTop(1),

		TaskNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		TaskSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),
		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		TaskDuration: lipgloss.NewStyle().
			Foreground(Colors.Secondary),
		TaskDetail: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true).
			PaddingLeft(4),
		CursorNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		EmptyList: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true).
			PaddingLeft(2),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(Colors.High).
			Bold(true),
		PriorityMedium: lipgloss.NewStyle().
			Foreground(Colors.Medium),
		PriorityLow: lipgloss.NewStyle().
			Foreground(Colors.Low),

		NoticeSuccess: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),
		NoticeWarning: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Bold(true),
		NoticeInfo: lipgloss.NewStyle().
			Foreground(Colors.Info),
		NoticeError: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		ScheduleLine: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			PaddingLeft(2),
		Summary: lipgloss.NewStyle().
			Foreground(Colors.Info).
			PaddingLeft(2),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Background(Colors.Background).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			Background(Colors.Background),
		DialogText: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			Background(Colors.Background),
		DialogKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Background(Colors.Background).
			Bold(true),
		DialogMuted: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Background(Colors.Background),
		FieldLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(10),
		FieldFocused: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true).
			Width(10),
		Choice: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),
		ChoiceChosen: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			Underline(true).
			Padding(0, 1),
		ChoiceFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Colors.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			MarginTop(1),
		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
	}
}

// PriorityStyle returns the badge style for a priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityMedium:
		return s.PriorityMedium
	default:
		return s.PriorityLow
	}
}

// NoticeStyle returns the banner style for a notice kind.
func (s Styles) NoticeStyle(k NoticeKind) lipgloss.Style {
	switch k {
	case NoticeSuccess:
		return s.NoticeSuccess
	case NoticeWarning:
		return s.NoticeWarning
	case NoticeError:
		return s.NoticeError
	default:
		return s.NoticeInfo
	}
}
