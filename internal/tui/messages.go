package tui

import tea "github.com/charmbracelet/bubbletea"

type InfoMsg string

type ErrorMsg struct {
	Error   error
	Message string
	Args    []any
}

func NewErrorMsg(err error, msg string, args ...any) ErrorMsg {
	return ErrorMsg{
		Error:   err,
		Message: msg,
		Args:    args,
	}
}

// ReportError wraps an error in a message for rendering in the footer.
func ReportError(err error, msg string, args ...any) tea.Cmd {
	return CmdHandler(NewErrorMsg(err, msg, args...))
}

// ReportInfo wraps an informational message for rendering in the footer.
func ReportInfo(msg string) tea.Cmd {
	return CmdHandler(InfoMsg(msg))
}

func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
