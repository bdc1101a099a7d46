package grid

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hokaccha/go-prettyjson"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mthorpe/grip/internal/grid"
	"github.com/mthorpe/grip/internal/history"
	"github.com/mthorpe/grip/internal/resize"
	"github.com/mthorpe/grip/internal/tui"
	"github.com/mthorpe/grip/internal/tui/keys"
)

// zoneID marks the on-screen region occupied by the grid, so that presses
// elsewhere (header, footer) never arm a drag.
const zoneID = "grid"

const borderGlyph = "│"

// preview accumulates candidate widths during a deferred-commit drag. The
// engine pushes into it; the view reads it back out each render.
type preview struct {
	active  bool
	column  int
	width   float64
	borderX float64
}

func (p *preview) ShowPreview(column int, width, borderX float64) {
	p.active = true
	p.column = column
	p.width = width
	p.borderX = borderX
}

func (p *preview) HidePreview() {
	p.active = false
}

type Options struct {
	Grid    *grid.Grid
	Service *resize.Service
	History *history.Stack

	// DeferWrites routes drag feedback through a preview overlay rather than
	// writing widths to the layout on every pointer move.
	DeferWrites bool
}

// Model is the interactive grid page. It renders the column layout and feeds
// translated pointer events into the resize service.
type Model struct {
	grid    *grid.Grid
	svc     *resize.Service
	history *history.Stack
	adapter *resize.MouseAdapter
	preview *preview

	width  int
	height int

	showInspector bool
}

func New(opts Options) (Model, error) {
	m := Model{
		grid:    opts.Grid,
		svc:     opts.Service,
		history: opts.History,
		adapter: resize.NewMouseAdapter(0),
		preview: &preview{},
	}
	if opts.DeferWrites {
		if err := m.svc.SetPreview(m.preview); err != nil {
			return Model{}, err
		}
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Grid.Single):
			return m, m.switchStrategy(resize.Single)
		case key.Matches(msg, keys.Grid.Proportional):
			return m, m.switchStrategy(resize.Proportional)
		case key.Matches(msg, keys.Grid.Symmetric):
			return m, m.switchStrategy(resize.Symmetric)
		case key.Matches(msg, keys.Grid.AutoFit):
			hover, ok := m.svc.Hover()
			if !ok {
				return m, tui.ReportInfo("hover over a column border to auto-fit")
			}
			if err := m.svc.AutoFitColumn(hover.Column); err != nil {
				return m, tui.ReportError(err, "auto-fitting column")
			}
			return m, nil
		case key.Matches(msg, keys.Grid.AutoFitAll):
			m.svc.AutoFitAllColumns()
			return m, tui.ReportInfo("auto-fit all columns")
		case key.Matches(msg, keys.Grid.Undo):
			entry, ok := m.history.Undo()
			if !ok {
				return m, tui.ReportInfo("nothing to undo")
			}
			return m, tui.ReportInfo(fmt.Sprintf("undo: column %d back to %.0f", entry.Column, entry.OldWidth))
		case key.Matches(msg, keys.Grid.Redo):
			entry, ok := m.history.Redo()
			if !ok {
				return m, tui.ReportInfo("nothing to redo")
			}
			return m, tui.ReportInfo(fmt.Sprintf("redo: column %d to %.0f", entry.Column, entry.NewWidth))
		case key.Matches(msg, keys.Grid.Inspect):
			m.showInspector = !m.showInspector
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	ev, ok := m.adapter.Translate(msg, 0)
	if !ok {
		return m, nil
	}
	// Only arm new gestures within the grid region; an in-flight drag is
	// allowed to wander outside it.
	switch ev.Kind {
	case resize.PointerDown, resize.PointerDouble:
		if !zone.Get(zoneID).InBounds(msg) {
			return m, nil
		}
	case resize.PointerMove:
		// Idle motion outside the grid must not light up a hover zone that
		// happens to share its x coordinate.
		if !m.svc.IsResizing() && !zone.Get(zoneID).InBounds(msg) {
			ev.X = -1
		}
	}
	m.svc.Pointer(ev)
	return m, nil
}

func (m Model) switchStrategy(kind resize.StrategyKind) tea.Cmd {
	if err := m.svc.SetStrategy(kind); err != nil {
		return tui.ReportError(err, "switching strategy")
	}
	return tui.ReportInfo(fmt.Sprintf("strategy: %s", kind))
}

func (m Model) Title() string {
	return tui.TitleStyle.Render("Grid")
}

// Status summarises the interaction state for the title line.
func (m Model) Status() string {
	if session, ok := m.svc.CurrentSession(); ok {
		return fmt.Sprintf("resizing column %d (%s)", session.Column, m.svc.Strategy())
	}
	if hover, ok := m.svc.Hover(); ok {
		return fmt.Sprintf("↔ column %d (%s)", hover.Column, m.svc.Strategy())
	}
	return m.svc.Strategy().String()
}

func (m Model) HelpBindings() []key.Binding {
	return keys.KeyMapToSlice(keys.Grid)
}

func (m Model) View() string {
	if m.showInspector {
		return m.inspectorView()
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.ruler(), m.headerRow())

	rowStyle := tui.Regular
	sepStyle := tui.Regular.Copy().Foreground(tui.BorderColor)
	for row := 0; row < m.grid.RowCount() && len(lines) < m.height; row++ {
		var b strings.Builder
		for col := 0; col < m.grid.ColumnCount(); col++ {
			w := int(math.Round(m.grid.WidthOf(col)))
			if w < 1 {
				continue
			}
			b.WriteString(rowStyle.Render(tui.PadRight(cellText(m.grid.ValueAt(row, col)), w-1)))
			b.WriteString(sepStyle.Render(borderGlyph))
		}
		lines = append(lines, b.String())
	}
	return zone.Mark(zoneID, strings.Join(lines, "\n"))
}

// ruler renders the line above the header, marking hovered, dragged and
// previewed border positions.
func (m Model) ruler() string {
	total := int(math.Round(m.grid.TotalWidth()))
	if m.width > 0 && m.width < total {
		total = m.width
	}
	cells := make([]string, total)
	for i := range cells {
		cells[i] = "─"
	}
	mark := func(x float64, glyph string, color lipgloss.TerminalColor) {
		i := int(math.Round(x)) - 1
		if i >= 0 && i < total {
			cells[i] = tui.Bold.Copy().Foreground(color).Render(glyph)
		}
	}
	if hover, ok := m.svc.Hover(); ok {
		mark(hover.BorderX, "┼", tui.HoverBorderColor)
	}
	if session, ok := m.svc.CurrentSession(); ok {
		mark(m.grid.OffsetOf(session.Column)+m.grid.WidthOf(session.Column), "┿", tui.ActiveBorderColor)
	}
	if m.preview.active {
		mark(m.preview.borderX, "╋", tui.PreviewBorderColor)
	}
	return strings.Join(cells, "")
}

func (m Model) headerRow() string {
	headerStyle := tui.Bold.Copy().Background(tui.HeaderBackground)
	var b strings.Builder
	for col := 0; col < m.grid.ColumnCount(); col++ {
		w := int(math.Round(m.grid.WidthOf(col)))
		if w < 1 {
			continue
		}
		b.WriteString(headerStyle.Render(tui.PadRight(m.grid.HeaderTitle(col), w-1)))
		b.WriteString(headerStyle.Render(borderGlyph))
	}
	return b.String()
}

func (m Model) inspectorView() string {
	type columnInfo struct {
		Key      string  `json:"key"`
		Title    string  `json:"title"`
		Offset   float64 `json:"offset"`
		Width    float64 `json:"width"`
		Affected []int   `json:"affected"`
	}
	info := struct {
		Strategy   string       `json:"strategy"`
		TotalWidth float64      `json:"total_width"`
		Columns    []columnInfo `json:"columns"`
	}{
		Strategy:   m.svc.Strategy().String(),
		TotalWidth: m.grid.TotalWidth(),
	}
	for col := 0; col < m.grid.ColumnCount(); col++ {
		c, _ := m.grid.Column(col)
		info.Columns = append(info.Columns, columnInfo{
			Key:      string(c.Key),
			Title:    c.Title,
			Offset:   m.grid.OffsetOf(col),
			Width:    m.grid.WidthOf(col),
			Affected: m.svc.AffectedColumns(col),
		})
	}
	out, err := prettyjson.Marshal(info)
	if err != nil {
		return tui.Regular.Copy().Foreground(tui.Red).Render(err.Error())
	}
	return tui.Regular.Copy().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(string(out))
}

func cellText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
