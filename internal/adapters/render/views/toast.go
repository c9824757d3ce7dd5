package views

import "github.com/charmbracelet/lipgloss"

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// RenderToast formats a one-line notification. It does not run a program so
// it can be printed to stderr mid-command.
func RenderToast(kind ToastKind, message string) string {
	s := newStyles()

	var prefix lipgloss.Style
	var icon string
	switch kind {
	case ToastSuccess:
		prefix, icon = s.success, "✓"
	case ToastError:
		prefix, icon = s.warning, "✗"
	default:
		prefix, icon = s.header, "•"
	}

	return prefix.Render(icon) + " " + message
}
