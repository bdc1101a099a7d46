package resize

import (
	"github.com/mthorpe/grip/internal/grid"
)

// DefaultZoneWidth is the width of the pixel band around a column border
// within which a pointer can grab the border.
const DefaultZoneWidth = 6

// Zone reports whether a pointer position falls within the resize-sensitive
// band around a column border.
type Zone struct {
	InZone  bool
	Column  int
	BorderX float64
}

var noZone = Zone{Column: -1, BorderX: -1}

// Detector performs hit-testing of resize zones. It is pure geometry: it
// holds no state and never mutates the layout, so it is safe to call on every
// pointer move.
type Detector struct {
	// ZoneWidth is the total width of the sensitive band centred on each
	// column border.
	ZoneWidth float64
}

func NewDetector(zoneWidth float64) Detector {
	if zoneWidth <= 0 {
		zoneWidth = DefaultZoneWidth
	}
	return Detector{ZoneWidth: zoneWidth}
}

// Detect reports the resize zone containing pointerX, if any. Columns are
// scanned in index order and the first matching border wins, which only
// matters for pathologically narrow columns whose zones overlap.
func (d Detector) Detect(pointerX float64, layout grid.Layout) Zone {
	half := d.ZoneWidth / 2
	for col := 0; col < layout.ColumnCount(); col++ {
		borderX := layout.OffsetOf(col) + layout.WidthOf(col)
		if pointerX >= borderX-half && pointerX <= borderX+half {
			return Zone{InZone: true, Column: col, BorderX: borderX}
		}
	}
	return noZone
}
