package resize

import (
	"fmt"

	"github.com/mthorpe/grip/internal/grid"
)

// StrategyKind enumerates the closed set of resize strategies.
type StrategyKind int

const (
	// Single resizes the dragged column alone.
	Single StrategyKind = iota
	// Proportional resizes the dragged column and reports every column to its
	// right as affected, so a caller can redistribute the slack.
	Proportional
	// Symmetric resizes the dragged column and reports its immediate right
	// neighbour as affected.
	Symmetric
)

func (k StrategyKind) String() string {
	return [...]string{
		"single",
		"proportional",
		"symmetric",
	}[k]
}

// ParseStrategyKind parses a strategy name as used in configuration.
func ParseStrategyKind(s string) (StrategyKind, error) {
	switch s {
	case "single":
		return Single, nil
	case "proportional":
		return Proportional, nil
	case "symmetric":
		return Symmetric, nil
	default:
		return Single, fmt.Errorf("unknown resize strategy: %s", s)
	}
}

// StrategyKinds returns all strategy kinds in declaration order.
func StrategyKinds() []StrategyKind {
	return []StrategyKind{Single, Proportional, Symmetric}
}

// Strategy maps pointer displacement to a candidate width for the dragged
// column, and declares which other columns are causally affected.
// Implementations are pure functions of their inputs.
type Strategy interface {
	// NewWidth computes the candidate width of the session's column for the
	// pointer's current position.
	NewWidth(session Session, pointerX float64) float64
	// AffectedColumns lists the columns affected by resizing col, in index
	// order, always starting with col itself.
	AffectedColumns(col int, layout grid.Layout) []int
}

// NewStrategy returns the strategy for the given kind.
func NewStrategy(kind StrategyKind) Strategy {
	switch kind {
	case Proportional:
		return proportionalStrategy{}
	case Symmetric:
		return symmetricStrategy{}
	default:
		return singleStrategy{}
	}
}

// dragWidth is the width formula shared by all strategies: the column's
// original width adjusted by the pointer's displacement from its origin.
func dragWidth(session Session, pointerX float64) float64 {
	return session.OriginalWidth + (pointerX - session.PointerOriginX)
}

type singleStrategy struct{}

func (singleStrategy) NewWidth(session Session, pointerX float64) float64 {
	return dragWidth(session, pointerX)
}

func (singleStrategy) AffectedColumns(col int, layout grid.Layout) []int {
	return []int{col}
}

type proportionalStrategy struct{}

func (proportionalStrategy) NewWidth(session Session, pointerX float64) float64 {
	return dragWidth(session, pointerX)
}

// AffectedColumns reports the dragged column and every column to its right.
// The strategy only ever computes the dragged column's width; redistributing
// slack among the trailing columns is the caller's policy.
func (proportionalStrategy) AffectedColumns(col int, layout grid.Layout) []int {
	cols := make([]int, 0, layout.ColumnCount()-col)
	for i := col; i < layout.ColumnCount(); i++ {
		cols = append(cols, i)
	}
	return cols
}

type symmetricStrategy struct{}

func (symmetricStrategy) NewWidth(session Session, pointerX float64) float64 {
	return dragWidth(session, pointerX)
}

func (symmetricStrategy) AffectedColumns(col int, layout grid.Layout) []int {
	if col+1 < layout.ColumnCount() {
		return []int{col, col + 1}
	}
	return []int{col}
}
