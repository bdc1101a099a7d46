package grid

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mthorpe/grip/internal/grid"
	"github.com/mthorpe/grip/internal/history"
	"github.com/mthorpe/grip/internal/resize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupModel(t *testing.T, deferWrites bool) (Model, *grid.Grid, *resize.Service) {
	t.Helper()

	zone.NewGlobal()

	g := grid.New([]grid.Column{
		{Key: "name", Title: "NAME", Width: 20},
		{Key: "status", Title: "STATUS", Width: 12},
	})
	g.AppendRows(
		grid.Row{"name": "gateway-00", "status": "running"},
		grid.Row{"name": "billing-01", "status": "stopped"},
	)
	svc := resize.NewService(resize.ServiceOptions{
		Layout:    g,
		ZoneWidth: 3,
		DefaultConstraints: resize.Constraints{
			MinWidth: 5,
			MaxWidth: 100,
		},
	})
	m, err := New(Options{
		Grid:        g,
		Service:     svc,
		History:     history.NewStack(g),
		DeferWrites: deferWrites,
	})
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated, g, svc
}

func TestModel_deferredWritesPreviewDrag(t *testing.T) {
	m, g, svc := setupModel(t, true)

	svc.Pointer(resize.PointerEvent{Kind: resize.PointerDown, X: 20})
	svc.Pointer(resize.PointerEvent{Kind: resize.PointerMove, X: 30})

	// Candidate widths accumulate in the preview, not the layout.
	assert.True(t, m.preview.active)
	assert.Equal(t, float64(30), m.preview.width)
	assert.Equal(t, float64(30), m.preview.borderX)
	assert.Equal(t, float64(20), g.WidthOf(0))

	svc.Pointer(resize.PointerEvent{Kind: resize.PointerUp, X: 30})

	assert.False(t, m.preview.active)
	assert.Equal(t, float64(30), g.WidthOf(0))
}

func TestModel_status(t *testing.T) {
	m, _, svc := setupModel(t, false)

	assert.Equal(t, "single", m.Status())

	svc.Pointer(resize.PointerEvent{Kind: resize.PointerMove, X: 20})
	assert.Contains(t, m.Status(), "column 0")

	svc.Pointer(resize.PointerEvent{Kind: resize.PointerDown, X: 20})
	assert.Contains(t, m.Status(), "resizing column 0")
}

func TestModel_view(t *testing.T) {
	m, _, _ := setupModel(t, false)

	view := m.View()
	assert.Contains(t, view, "NAME")
	assert.Contains(t, view, "STATUS")
	assert.Contains(t, view, "gateway-00")
}

func TestModel_inspector(t *testing.T) {
	m, _, _ := setupModel(t, false)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	view := updated.View()
	assert.Contains(t, view, "strategy")
	assert.Contains(t, view, "name")
	assert.True(t, strings.Contains(view, "total_width"))
}
