package tui

import (
	"github.com/leg100/go-runewidth"
	"github.com/leg100/reflow/truncate"
)

// TruncateRight truncates s to width w, replacing the right-most characters
// with tail if it is too wide.
func TruncateRight(s string, w int, tail string) string {
	return truncate.StringWithTail(s, uint(w), tail)
}

// TruncateLeft truncates s to width w, replacing the left-most characters with
// prefix if it is too wide.
func TruncateLeft(s string, w int, prefix string) string {
	return runewidth.TruncateLeft(s, w, prefix)
}

// PadRight pads s with spaces up to width w, truncating it first if it is
// wider than w.
func PadRight(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = TruncateRight(s, w, "…")
	return s + spaces(w-runewidth.StringWidth(s))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
