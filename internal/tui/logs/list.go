package logs

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mthorpe/grip/internal/logging"
	"github.com/mthorpe/grip/internal/resource"
	"github.com/mthorpe/grip/internal/tui"
)

const timeFormat = "2006-01-02T15:04:05.000"

// widths of the fixed-width columns, including a trailing space
var (
	timeWidth  = len(timeFormat) + 1
	levelWidth = len("ERROR") + 1
)

// List renders log records emitted by the logger, most recent first.
type List struct {
	logger *logging.Logger

	messages []logging.Message
	viewport viewport.Model
	width    int
}

func NewList(logger *logging.Logger) List {
	return List{
		logger:   logger,
		viewport: viewport.New(0, 0),
	}
}

type bulkInsertMsg []logging.Message

func (m List) Init() tea.Cmd {
	return func() tea.Msg {
		return bulkInsertMsg(m.logger.List())
	}
}

func (m List) Update(msg tea.Msg) (List, tea.Cmd) {
	switch msg := msg.(type) {
	case bulkInsertMsg:
		m.messages = append(m.messages, msg...)
		slices.SortFunc(m.messages, logging.BySerialDesc)
		m.viewport.SetContent(m.render())
		return m, nil
	case resource.Event[logging.Message]:
		if msg.Type == resource.CreatedEvent {
			m.messages = append(m.messages, msg.Payload)
			slices.SortFunc(m.messages, logging.BySerialDesc)
			m.viewport.SetContent(m.render())
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		m.viewport.SetContent(m.render())
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m List) Title() string {
	return tui.TitleStyle.Render("Logs")
}

func (m List) View() string {
	return m.viewport.View()
}

func (m List) render() string {
	lines := make([]string, len(m.messages))
	for i, msg := range m.messages {
		var b strings.Builder
		b.WriteString(msg.Message)
		b.WriteRune(' ')
		for _, attr := range msg.Attributes {
			b.WriteString(tui.Faint.Render(attr.Key + "="))
			b.WriteString(tui.Regular.Render(attr.Value + " "))
		}
		msgWidth := max(0, m.width-timeWidth-levelWidth)
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Left,
			tui.PadRight(msg.Time.Format(timeFormat), timeWidth),
			tui.Bold.Copy().Foreground(levelColor(msg.Level)).Render(tui.PadRight(msg.Level, levelWidth)),
			tui.TruncateRight(b.String(), msgWidth, "…"),
		)
	}
	return strings.Join(lines, "\n")
}

func levelColor(level string) lipgloss.TerminalColor {
	switch level {
	case "ERROR":
		return tui.ErrorLogLevel
	case "WARN":
		return tui.WarnLogLevel
	case "DEBUG":
		return tui.DebugLogLevel
	case "INFO":
		return tui.InfoLogLevel
	}
	return tui.Regular.GetForeground()
}
