// Package grid provides the column layout that the resize engine reads from
// and writes to. The engine only ever touches layout state through the
// interfaces below, so alternative layouts (virtualized, discontiguous) can be
// substituted for the in-memory implementation here.
package grid

import (
	"github.com/mthorpe/grip/internal/resource"
)

// Layout supplies per-column geometry and accepts width writes.
type Layout interface {
	ColumnCount() int
	OffsetOf(col int) float64
	WidthOf(col int) float64
	SetWidth(col int, width float64)
}

// DataProvider supplies cell values for content-driven sizing.
type DataProvider interface {
	RowCount() int
	ValueAt(row, col int) any
}

// HeaderProvider supplies column header labels.
type HeaderProvider interface {
	HeaderTitle(col int) string
}

// HeaderWidther reports the full rendered width of a column header,
// indicators and padding included. Optional: when absent the header title
// alone is measured.
type HeaderWidther interface {
	HeaderWidth(col int) float64
}

// ColumnKey uniquely identifies a column within a grid.
type ColumnKey string

// Column defines a grid column.
type Column struct {
	Key   ColumnKey
	Title string
	Width float64
	// Optional per-column width constraints.
	MinWidth *float64
	MaxWidth *float64
}

// Row maps column keys to cell values.
type Row map[ColumnKey]any

// Grid is an in-memory column layout with row data. Columns are laid out
// left-to-right with contiguous offsets.
type Grid struct {
	ID resource.ID

	cols []Column
	rows []Row
}

func New(cols []Column) *Grid {
	g := &Grid{
		ID:   resource.NewID(resource.Grid),
		cols: make([]Column, len(cols)),
	}
	// Copy column structs onto the grid, because the caller may be sharing
	// columns between grids and widths are mutated per-grid.
	copy(g.cols, cols)
	for i := range g.cols {
		if g.cols[i].Width < 0 {
			g.cols[i].Width = 0
		}
	}
	return g
}

func (g *Grid) ColumnCount() int { return len(g.cols) }

// Column returns the definition of the column with the given index.
func (g *Grid) Column(col int) (Column, bool) {
	if col < 0 || col >= len(g.cols) {
		return Column{}, false
	}
	return g.cols[col], true
}

func (g *Grid) OffsetOf(col int) float64 {
	if col < 0 || col >= len(g.cols) {
		return 0
	}
	var offset float64
	for i := 0; i < col; i++ {
		offset += g.cols[i].Width
	}
	return offset
}

func (g *Grid) WidthOf(col int) float64 {
	if col < 0 || col >= len(g.cols) {
		return 0
	}
	return g.cols[col].Width
}

func (g *Grid) SetWidth(col int, width float64) {
	if col < 0 || col >= len(g.cols) {
		return
	}
	if width < 0 {
		width = 0
	}
	g.cols[col].Width = width
}

func (g *Grid) HeaderTitle(col int) string {
	if col < 0 || col >= len(g.cols) {
		return ""
	}
	return g.cols[col].Title
}

// AppendRows appends row data to the grid.
func (g *Grid) AppendRows(rows ...Row) {
	g.rows = append(g.rows, rows...)
}

func (g *Grid) RowCount() int { return len(g.rows) }

func (g *Grid) ValueAt(row, col int) any {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	if col < 0 || col >= len(g.cols) {
		return nil
	}
	return g.rows[row][g.cols[col].Key]
}

// TotalWidth is the sum of all column widths.
func (g *Grid) TotalWidth() float64 {
	var total float64
	for _, col := range g.cols {
		total += col.Width
	}
	return total
}
