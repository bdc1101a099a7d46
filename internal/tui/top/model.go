package top

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mthorpe/grip/internal/resize"
	"github.com/mthorpe/grip/internal/resource"
	"github.com/mthorpe/grip/internal/tui"
	gridpage "github.com/mthorpe/grip/internal/tui/grid"
	"github.com/mthorpe/grip/internal/tui/keys"
	"github.com/mthorpe/grip/internal/tui/logs"
	"github.com/mthorpe/grip/internal/version"
)

type page int

const (
	gridPage page = iota
	logsPage
)

var localKeys = struct {
	Yes key.Binding
}{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
}

type model struct {
	grid gridpage.Model
	logs logs.List
	page page

	width  int
	height int

	showHelp bool

	showQuitPrompt bool
	quitPrompt     textinput.Model

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	dump *os.File
}

func newModel(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
		if err != nil {
			return model{}, err
		}
	}

	gridModel, err := gridpage.New(gridpage.Options{
		Grid:        opts.Grid,
		Service:     opts.Service,
		History:     opts.History,
		DeferWrites: opts.DeferWrites,
	})
	if err != nil {
		return model{}, err
	}

	m := model{
		grid: gridModel,
		logs: logs.NewList(opts.Logger),
		dump: dump,
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.grid.Init(),
		m.logs.Init(),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	if m.showQuitPrompt {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.Global.Quit):
				// pressing ctrl-c again quits the app
				return m, tea.Quit
			case key.Matches(msg, localKeys.Yes):
				// 'y' quits the app
				return m, tea.Quit
			default:
				// any other key closes the prompt and returns to the app
				m.showQuitPrompt = false
				m.info = "canceled quitting grip"
			}
		}
		return m, nil
	}

	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height

		// amend msg to account for header etc, and forward below to the pages.
		msg = tea.WindowSizeMsg{
			Height: m.viewHeight(),
			Width:  m.viewWidth(),
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		switch {
		case key.Matches(msg, keys.Global.Quit):
			// ctrl-c quits the app, but not before prompting the user for
			// confirmation.
			m.quitPrompt = textinput.New()
			m.quitPrompt.Prompt = ""
			m.quitPrompt.Focus()
			m.showQuitPrompt = true
			return m, textinput.Blink
		case key.Matches(msg, keys.Global.Escape):
			// <esc> closes help or goes back to the grid
			if m.showHelp {
				m.showHelp = false
			} else {
				m.page = gridPage
			}
		case key.Matches(msg, keys.Global.Help):
			// '?' toggles help
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.Logs):
			// 'l' shows logs
			m.page = logsPage
		case key.Matches(msg, keys.Global.Grid):
			// 'g' shows the grid
			m.page = gridPage
		default:
			// Send other keys to current page.
			return m.updateCurrent(msg)
		}
	case tea.MouseMsg:
		// The current page is the mouse consumer: the grid for resizing, the
		// logs viewport for wheel scrolling.
		return m.updateCurrent(msg)
	case resource.Event[resize.WidthChange]:
		m.info = fmt.Sprintf("column %d resized %.0f → %.0f",
			msg.Payload.Column, msg.Payload.OldWidth, msg.Payload.NewWidth)
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			text := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", text, err)
		}
	case tui.InfoMsg:
		m.info = string(msg)
	default:
		// Send remaining msg types to both pages
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		cmds = append(cmds, cmd)
		m.logs, cmd = m.logs.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case gridPage:
		m.grid, cmd = m.grid.Update(msg)
	case logsPage:
		m.logs, cmd = m.logs.Update(msg)
	}
	return m, cmd
}

var (
	logo = strings.Join([]string{
		"▄▄▄ ▄▄▄ ▄ ▄▄▄",
		"█ ▄ █▄▀ █ █▄█",
		"▀▀▀ ▀ ▀ ▀ ▀  ",
	}, "\n")
	renderedLogo = tui.Bold.
			Copy().
			Margin(0, 1).
			Foreground(tui.Pink).
			Render(logo)
	logoWidth            = lipgloss.Width(renderedLogo)
	headerHeight         = 3
	titleHeight          = 1
	horizontalRuleHeight = 1
	messageFooterHeight  = 1

	versionIcon = tui.Bold.Copy().
			Foreground(tui.Pink).
			Margin(0, 2, 0, 1).
			Render("ⓥ")
	versionStyle = tui.Regular.Copy()
)

func (m model) View() string {
	var (
		content           string
		shortHelpBindings []key.Binding
	)

	currentHelpBindings := m.currentHelpBindings()

	if m.showHelp {
		content = lipgloss.NewStyle().
			Margin(1).
			Render(
				fullHelpView(
					currentHelpBindings,
					keys.KeyMapToSlice(keys.Global),
				),
			)
		shortHelpBindings = []key.Binding{
			key.NewBinding(
				key.WithKeys("?"),
				key.WithHelp("?", "close help"),
			),
		}
	} else if m.showQuitPrompt {
		content = lipgloss.NewStyle().
			Margin(0, 1).
			Render(fmt.Sprintf("Quit grip? (y/N): %s", m.quitPrompt.View()))
	} else {
		content = m.currentView()
		shortHelpBindings = append(
			currentHelpBindings,
			keys.KeyMapToSlice(keys.Global)...,
		)
	}

	// Render version in top left corner
	globalStatic := lipgloss.JoinHorizontal(lipgloss.Left,
		versionIcon, versionStyle.Render(version.Version),
	)

	// Render help bindings in between version and logo. Set its available
	// width to the width of the terminal minus the width of the version info,
	// the width of the logo, and the width of its margins.
	shortHelpWidth := m.width - tui.Width(globalStatic) - logoWidth - 6
	shortHelp := lipgloss.NewStyle().
		Margin(0, 2, 0, 4).
		Width(shortHelpWidth).
		Render(shortHelpView(shortHelpBindings, shortHelpWidth))

	// Render page title line, with the page status to its right.
	pageTitle := tui.Regular.Copy().Margin(0, 1).Render(m.currentTitle())
	pageStatus := tui.Regular.
		Margin(0, 1).
		Width(m.width - tui.Width(pageTitle) - 2).
		Align(lipgloss.Right).
		Render(m.currentStatus())
	pageTitleLine := lipgloss.JoinHorizontal(lipgloss.Left, pageTitle, pageStatus)

	// Global-level info goes in the bottom right corner in the footer.
	metadata := tui.Padded.Copy().Render("grip")

	// Render any info/error message to be shown in the bottom left corner in
	// the footer, using whatever space is remaining to the left of the
	// metadata.
	var footerMsg string
	if m.err != nil {
		footerMsg = tui.Padded.Copy().
			Foreground(tui.Red).
			Render("Error: " + m.err.Error())
	} else if m.info != "" {
		footerMsg = tui.Padded.Copy().
			Render(m.info)
	}

	return zone.Scan(lipgloss.JoinVertical(
		lipgloss.Top,
		// header
		lipgloss.NewStyle().
			Height(headerHeight).
			Render(
				lipgloss.JoinHorizontal(
					lipgloss.Left,
					globalStatic,
					shortHelp,
					renderedLogo,
				),
			),
		// title
		lipgloss.NewStyle().
			// Prohibit overflowing title wrapping to another line.
			MaxHeight(1).
			Inline(true).
			Width(m.width).
			Render(pageTitleLine),
		// horizontal rule
		strings.Repeat("─", max(0, m.width)),
		// content
		lipgloss.NewStyle().
			Height(m.viewHeight()).
			Render(content),
		// horizontal rule
		strings.Repeat("─", max(0, m.width)),
		// footer
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			// info/error message
			tui.Regular.
				Inline(true).
				MaxWidth(m.width-tui.Width(metadata)).
				Width(m.width-tui.Width(metadata)).
				Render(footerMsg),
			metadata,
		),
	))
}

func (m model) currentView() string {
	switch m.page {
	case logsPage:
		return m.logs.View()
	default:
		return m.grid.View()
	}
}

func (m model) currentTitle() string {
	switch m.page {
	case logsPage:
		return m.logs.Title()
	default:
		return m.grid.Title()
	}
}

func (m model) currentStatus() string {
	switch m.page {
	case logsPage:
		return ""
	default:
		return m.grid.Status()
	}
}

func (m model) currentHelpBindings() []key.Binding {
	switch m.page {
	case logsPage:
		return nil
	default:
		return m.grid.HelpBindings()
	}
}

// viewHeight retrieves the height available between the header and the footer.
func (m model) viewHeight() int {
	return m.height - headerHeight - titleHeight - 2*horizontalRuleHeight - messageFooterHeight
}

// viewWidth retrieves the width available within the main view
func (m model) viewWidth() int {
	return m.width
}
