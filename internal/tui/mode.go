// Package tui provides the interactive planner for taskplan.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Task list navigation
	ModeAdd                 // Add task form
	ModeBudget              // Budget input
	ModeConfirm             // Confirmation dialog
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAdd:
		return "add"
	case ModeBudget:
		return "budget"
	case ModeConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeAdd, ModeBudget:
		return true
	case ModeNormal, ModeConfirm:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmRemove               // Remove the selected task
	ConfirmClear                // Remove every task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmRemove:
		return "remove"
	case ConfirmClear:
		return "clear"
	}
	return ""
}

// formField identifies the focused field of the add form.
type formField int

const (
	fieldName formField = iota
	fieldDuration
	fieldPriority
	fieldCount
)

// NoticeKind selects the banner style of a notice.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeWarning
	NoticeInfo
	NoticeError
)

// Notice is a one-line feedback banner shown above the task list.
type Notice struct {
	Text string
	Kind NoticeKind
}
