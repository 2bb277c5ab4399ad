package term

import "strings"

// Point is a (col, row) screen coordinate.
type Point struct {
	Col, Row int
}

// Selection tracks a mouse-driven text selection as an anchor/head pair.
// A zero Selection (Active == false) means nothing is selected.
type Selection struct {
	Active bool
	Anchor Point
	Head   Point
}

// Start begins a new selection at (col, row); anchor and head coincide.
func (s *Selection) Start(col, row int) {
	s.Active = true
	s.Anchor = Point{col, row}
	s.Head = Point{col, row}
}

// Update moves the head of an in-progress selection.
func (s *Selection) Update(col, row int) {
	if !s.Active {
		return
	}
	s.Head = Point{col, row}
}

// Clear discards the selection.
func (s *Selection) Clear() {
	*s = Selection{}
}

// ordered returns the anchor/head pair normalized row-then-col, p1 <= p2.
func (s *Selection) ordered() (Point, Point) {
	p1, p2 := s.Anchor, s.Head
	if p2.Row < p1.Row || (p2.Row == p1.Row && p2.Col < p1.Col) {
		p1, p2 = p2, p1
	}
	return p1, p2
}

// IsSelected reports whether (col, row) falls within the selection.
func (s *Selection) IsSelected(col, row int) bool {
	if !s.Active {
		return false
	}
	p1, p2 := s.ordered()
	if row < p1.Row || row > p2.Row {
		return false
	}
	if p1.Row == p2.Row {
		return col >= p1.Col && col <= p2.Col
	}
	if row == p1.Row {
		return col >= p1.Col
	}
	if row == p2.Row {
		return col <= p2.Col
	}
	return true
}

// SelectedText renders the selection to a string, using visibleRow to
// resolve each row through the current scroll offset (spec.md §4.4). Rows
// are joined with "\n"; trailing spaces are retained.
func (s *Selection) SelectedText(cols int, visibleRow func(row int) []Cell) string {
	if !s.Active {
		return ""
	}
	p1, p2 := s.ordered()

	var b strings.Builder
	for row := p1.Row; row <= p2.Row; row++ {
		if row > p1.Row {
			b.WriteByte('\n')
		}
		line := visibleRow(row)
		if line == nil {
			continue
		}
		start, end := 0, cols
		if row == p1.Row {
			start = p1.Col
		}
		if row == p2.Row {
			end = p2.Col + 1
		}
		if start < 0 {
			start = 0
		}
		if end > len(line) {
			end = len(line)
		}
		for c := start; c < end; c++ {
			b.WriteRune(line[c].Char)
		}
	}
	return b.String()
}
