// Package history records committed column width changes and supports undoing
// and redoing them.
package history

// Entry records a single committed width change.
type Entry struct {
	Column   int
	OldWidth float64
	NewWidth float64
}

// Recorder receives an entry for each committed width change. The resize
// engine only ever appends; walking the history is the owner's concern.
type Recorder interface {
	Push(Entry)
}

// WidthWriter applies widths back to a column layout.
type WidthWriter interface {
	SetWidth(col int, width float64)
}

// Stack is an undo/redo stack of width changes. Pushing a new entry truncates
// any previously undone tail.
type Stack struct {
	writer  WidthWriter
	entries []Entry
	// cursor is the number of applied entries; entries[cursor:] is the redo
	// tail.
	cursor int
}

func NewStack(writer WidthWriter) *Stack {
	return &Stack{writer: writer}
}

func (s *Stack) Push(entry Entry) {
	s.entries = append(s.entries[:s.cursor], entry)
	s.cursor = len(s.entries)
}

// Undo reverts the most recent applied entry, writing its old width back to
// the layout. Returns false if there is nothing to undo.
func (s *Stack) Undo() (Entry, bool) {
	if s.cursor == 0 {
		return Entry{}, false
	}
	s.cursor--
	entry := s.entries[s.cursor]
	s.writer.SetWidth(entry.Column, entry.OldWidth)
	return entry, true
}

// Redo re-applies the most recently undone entry. Returns false if there is
// nothing to redo.
func (s *Stack) Redo() (Entry, bool) {
	if s.cursor == len(s.entries) {
		return Entry{}, false
	}
	entry := s.entries[s.cursor]
	s.cursor++
	s.writer.SetWidth(entry.Column, entry.NewWidth)
	return entry, true
}

// Len reports the number of entries, applied or not.
func (s *Stack) Len() int { return len(s.entries) }
