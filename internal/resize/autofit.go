package resize

import (
	"fmt"

	"github.com/leg100/go-runewidth"
	"github.com/mthorpe/grip/internal/grid"
)

const (
	// DefaultSampleSize bounds the number of rows measured per column.
	DefaultSampleSize = 100
	// DefaultPadding is added to raw content measurements.
	DefaultPadding = 16
)

// Measurer measures the rendered width of a piece of text.
type Measurer interface {
	Width(text string) float64
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(text string) float64

func (f MeasurerFunc) Width(text string) float64 { return f(text) }

// DisplayWidth measures text by its terminal display cell width.
var DisplayWidth Measurer = MeasurerFunc(func(text string) float64 {
	return float64(runewidth.StringWidth(text))
})

// Sizer computes a content-driven ideal width for a column by sampling a
// bounded number of rows and measuring their textual form.
type Sizer struct {
	data        grid.DataProvider
	headers     grid.HeaderProvider
	headerWidth grid.HeaderWidther
	measure     Measurer
	sampleSize  int
	padding     float64
}

type SizerOptions struct {
	// Data supplies cell values. When nil only the header is measured.
	Data grid.DataProvider
	// Headers supplies header titles. When nil headers are not measured.
	Headers grid.HeaderProvider
	// HeaderWidth, when non-nil, supplies the full rendered header width
	// (indicators and padding included) in preference to measuring the title.
	HeaderWidth grid.HeaderWidther
	// Measure is the measurement primitive. Defaults to DisplayWidth.
	Measure Measurer
	// SampleSize bounds the number of rows measured. Defaults to
	// DefaultSampleSize.
	SampleSize int
	// Padding is added to raw content measurements. Defaults to
	// DefaultPadding. Set NoPadding for none.
	Padding float64
}

// NoPadding configures a sizer to add no content padding.
const NoPadding = -1

func NewSizer(opts SizerOptions) *Sizer {
	if opts.Measure == nil {
		opts.Measure = DisplayWidth
	}
	if opts.SampleSize <= 0 {
		opts.SampleSize = DefaultSampleSize
	}
	switch {
	case opts.Padding == 0:
		opts.Padding = DefaultPadding
	case opts.Padding < 0:
		opts.Padding = 0
	}
	return &Sizer{
		data:        opts.Data,
		headers:     opts.Headers,
		headerWidth: opts.HeaderWidth,
		measure:     opts.Measure,
		sampleSize:  opts.SampleSize,
		padding:     opts.Padding,
	}
}

// IdealOption configures a single IdealWidth call.
type IdealOption func(*idealConfig)

type idealConfig struct {
	skipHeader bool
}

// SkipHeader excludes the header from the measurement.
func SkipHeader() IdealOption {
	return func(cfg *idealConfig) {
		cfg.skipHeader = true
	}
}

// IdealWidth computes the content-driven ideal width for a column. Sampling
// is deterministic, so repeated calls over unchanged data yield the same
// width.
func (s *Sizer) IdealWidth(col int, opts ...IdealOption) float64 {
	var cfg idealConfig
	for _, fn := range opts {
		fn(&cfg)
	}

	var content float64
	if s.data != nil {
		for _, row := range s.sampleRows(s.data.RowCount()) {
			w := s.measure.Width(cellText(s.data.ValueAt(row, col)))
			content = max(content, w)
		}
	}
	content += s.padding

	if cfg.skipHeader {
		return content
	}
	var header float64
	switch {
	case s.headerWidth != nil:
		// The full header width already includes the header's own padding.
		header = s.headerWidth.HeaderWidth(col)
	case s.headers != nil:
		header = s.measure.Width(s.headers.HeaderTitle(col)) + s.padding
	}
	return max(content, header)
}

// sampleRows selects the row indices to measure: every row when there are no
// more rows than the sample size, otherwise indices evenly spaced across the
// row range. Order-preserving and deterministic.
func (s *Sizer) sampleRows(rowCount int) []int {
	if rowCount <= 0 {
		return nil
	}
	if rowCount <= s.sampleSize {
		rows := make([]int, rowCount)
		for i := range rows {
			rows[i] = i
		}
		return rows
	}
	rows := make([]int, s.sampleSize)
	for i := range rows {
		rows[i] = i * rowCount / s.sampleSize
	}
	return rows
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
