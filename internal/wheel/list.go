package wheel

import "strings"

// Row is one entry of a wheel column. Rows are owned by their List and
// die with it on Clear; nothing outside the column should hold one
// across a rebuild.
type Row struct {
	// Index is the caller-supplied running index. For wheel columns it
	// is the virtual index within the replicated row sequence.
	Index   int
	Value   any
	Caption string

	// Offset is the signed row distance from the selection center,
	// maintained by the wheel on every scroll recompute.
	Offset int

	Active   bool
	Hidden   bool
	Disabled bool

	// Filler marks the disabled edge padding of non-wrapping columns.
	Filler bool
}

// List manages the ordered row collection of one column. Rows are
// addressable two ways with identical semantics: At by position,
// ByCaption by trimmed caption.
type List struct {
	rows []*Row
}

func NewList() *List {
	return &List{}
}

// Add creates a row and appends it. index is the caller's running
// index; it is recorded as given, not enforced unique.
func (l *List) Add(value any, caption string, index int) *Row {
	row := &Row{Index: index, Value: value, Caption: caption}
	l.rows = append(l.rows, row)
	return row
}

func (l *List) Len() int {
	return len(l.rows)
}

// At returns the row at position i.
func (l *List) At(i int) (*Row, bool) {
	if i < 0 || i >= len(l.rows) {
		return nil, false
	}
	return l.rows[i], true
}

// ByCaption returns the first row whose trimmed caption equals c.
func (l *List) ByCaption(c string) (*Row, bool) {
	c = strings.TrimSpace(c)
	for _, row := range l.rows {
		if strings.TrimSpace(row.Caption) == c {
			return row, true
		}
	}
	return nil, false
}

// RemoveAt removes the row at position i and reports whether a removal
// happened.
func (l *List) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.rows) {
		return false
	}
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
	return true
}

// RemoveByCaption removes the first row whose trimmed caption equals c.
func (l *List) RemoveByCaption(c string) bool {
	c = strings.TrimSpace(c)
	for i, row := range l.rows {
		if strings.TrimSpace(row.Caption) == c {
			l.rows = append(l.rows[:i], l.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every row.
func (l *List) Clear() {
	l.rows = nil
}

// Rows exposes the backing slice for rendering. Callers must not
// reorder it.
func (l *List) Rows() []*Row {
	return l.rows
}

// ActiveRow returns the row currently flagged active, or nil.
func (l *List) ActiveRow() *Row {
	for _, row := range l.rows {
		if row.Active {
			return row
		}
	}
	return nil
}

// Value reads the active row. A caption that parses as a locale-decimal
// number yields the number; otherwise the raw string value is returned.
// The second result is false when no row is active.
func (l *List) Value() (any, bool) {
	row := l.ActiveRow()
	if row == nil {
		return nil, false
	}
	if f, err := ParseNumber(row.Caption); err == nil {
		return f, true
	}
	if s, ok := row.Value.(string); ok {
		return s, true
	}
	return row.Caption, true
}
