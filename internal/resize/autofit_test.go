package resize

import (
	"testing"

	"github.com/mthorpe/grip/internal/grid"
	"github.com/stretchr/testify/assert"
)

func setupDataGrid(rows ...string) *grid.Grid {
	g := grid.New([]grid.Column{
		{Key: "name", Title: "NAME", Width: 100},
		{Key: "status", Title: "STATUS", Width: 80},
	})
	for _, name := range rows {
		g.AppendRows(grid.Row{"name": name})
	}
	return g
}

func TestSizer_IdealWidth(t *testing.T) {
	g := setupDataGrid("ab", "abcdef", "abc")
	sizer := NewSizer(SizerOptions{Data: g, Headers: g, Padding: 4})

	// Longest cell is "abcdef" (6) + padding 4 = 10; header "NAME" (4) + 4 = 8.
	assert.Equal(t, float64(10), sizer.IdealWidth(0))
}

func TestSizer_IdealWidth_headerDominates(t *testing.T) {
	g := setupDataGrid("a", "b")
	sizer := NewSizer(SizerOptions{Data: g, Headers: g, Padding: 4})

	// Header "NAME" (4) + 4 = 8 beats content 1 + 4 = 5.
	assert.Equal(t, float64(8), sizer.IdealWidth(0))
}

func TestSizer_IdealWidth_skipHeader(t *testing.T) {
	g := setupDataGrid("a", "b")
	sizer := NewSizer(SizerOptions{Data: g, Headers: g, Padding: 4})

	assert.Equal(t, float64(5), sizer.IdealWidth(0, SkipHeader()))
}

type fullHeaderGrid struct {
	*grid.Grid
}

// HeaderWidth reports the header width with sort/filter indicators included.
func (g fullHeaderGrid) HeaderWidth(col int) float64 {
	return 25
}

func TestSizer_IdealWidth_fullHeaderWidthNotPaddedAgain(t *testing.T) {
	g := fullHeaderGrid{setupDataGrid("a")}
	sizer := NewSizer(SizerOptions{Data: g, Headers: g, HeaderWidth: g, Padding: 4})

	// The full header width is assumed to already include padding: 25, not
	// 25 + 4. Content is 1 + 4 = 5.
	assert.Equal(t, float64(25), sizer.IdealWidth(0))
}

func TestSizer_IdealWidth_nilValuesMeasureAsEmpty(t *testing.T) {
	g := grid.New([]grid.Column{{Key: "name", Width: 100}})
	g.AppendRows(grid.Row{}, grid.Row{"name": nil})
	sizer := NewSizer(SizerOptions{Data: g, Padding: 4})

	assert.Equal(t, float64(4), sizer.IdealWidth(0))
}

func TestSizer_IdealWidth_deterministic(t *testing.T) {
	g := grid.New([]grid.Column{{Key: "n", Width: 50}})
	for i := 0; i < 1000; i++ {
		g.AppendRows(grid.Row{"n": i * 7})
	}
	sizer := NewSizer(SizerOptions{Data: g, Headers: g, SampleSize: 10})

	first := sizer.IdealWidth(0)
	assert.Equal(t, first, sizer.IdealWidth(0))
}

func TestSizer_sampleRows(t *testing.T) {
	tests := []struct {
		name       string
		sampleSize int
		rowCount   int
		want       []int
	}{
		{
			name:       "fewer rows than sample size samples every row",
			sampleSize: 5,
			rowCount:   3,
			want:       []int{0, 1, 2},
		},
		{
			name:       "row count equal to sample size samples every row",
			sampleSize: 3,
			rowCount:   3,
			want:       []int{0, 1, 2},
		},
		{
			name:       "more rows than sample size samples evenly",
			sampleSize: 4,
			rowCount:   100,
			want:       []int{0, 25, 50, 75},
		},
		{
			name:       "uneven division floors",
			sampleSize: 3,
			rowCount:   10,
			want:       []int{0, 3, 6},
		},
		{
			name:       "no rows",
			sampleSize: 3,
			rowCount:   0,
			want:       nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizer := NewSizer(SizerOptions{SampleSize: tt.sampleSize})
			assert.Equal(t, tt.want, sizer.sampleRows(tt.rowCount))
		})
	}
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "", cellText(nil))
	assert.Equal(t, "widget", cellText("widget"))
	assert.Equal(t, "42", cellText(42))
	assert.Equal(t, "3.5", cellText(3.5))
}
