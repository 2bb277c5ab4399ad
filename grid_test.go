package term

import "testing"

func TestNewGridDefaultCells(t *testing.T) {
	g := NewGrid(3, 5)

	if g.Rows() != 3 || g.Cols() != 5 {
		t.Fatalf("expected 3x5, got %dx%d", g.Rows(), g.Cols())
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			if got := g.Cell(r, c); got == nil || !got.IsDefault() {
				t.Fatalf("cell (%d,%d) not default: %+v", r, c, got)
			}
		}
	}
}

func TestGridCellOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)

	if g.Cell(-1, 0) != nil || g.Cell(0, -1) != nil {
		t.Error("expected nil for negative coordinates")
	}
	if g.Cell(2, 0) != nil || g.Cell(0, 2) != nil {
		t.Error("expected nil past bounds")
	}
}

func TestGridClearRange(t *testing.T) {
	g := NewGrid(1, 5)
	for c := 0; c < 5; c++ {
		g.Cell(0, c).Char = 'X'
	}

	g.ClearRange(0, 1, 3)

	want := []rune{'X', ' ', ' ', 'X', 'X'}
	for c, w := range want {
		if got := g.Cell(0, c).Char; got != w {
			t.Errorf("col %d: got %q, want %q", c, got, w)
		}
	}
}

func TestGridClearRow(t *testing.T) {
	g := NewGrid(2, 3)
	for c := 0; c < 3; c++ {
		g.Cell(0, c).Char = 'A'
	}
	g.ClearRow(0)
	for c := 0; c < 3; c++ {
		if !g.Cell(0, c).IsDefault() {
			t.Errorf("col %d not cleared", c)
		}
	}
}

func TestGridInsertBlanks(t *testing.T) {
	g := NewGrid(1, 5)
	for c := 0; c < 5; c++ {
		g.Cell(0, c).Char = rune('0' + c)
	}

	g.InsertBlanks(0, 1, 2)

	want := []rune{'0', ' ', ' ', '1', '2'}
	for c, w := range want {
		if got := g.Cell(0, c).Char; got != w {
			t.Errorf("col %d: got %q, want %q", c, got, w)
		}
	}
}

func TestGridInsertBlanksClampsAtRightEdge(t *testing.T) {
	g := NewGrid(1, 3)
	for c := 0; c < 3; c++ {
		g.Cell(0, c).Char = rune('0' + c)
	}

	g.InsertBlanks(0, 1, 10)

	want := []rune{'0', ' ', ' '}
	for c, w := range want {
		if got := g.Cell(0, c).Char; got != w {
			t.Errorf("col %d: got %q, want %q", c, got, w)
		}
	}
}

func TestGridDeleteChars(t *testing.T) {
	g := NewGrid(1, 5)
	for c := 0; c < 5; c++ {
		g.Cell(0, c).Char = rune('0' + c)
	}

	g.DeleteChars(0, 1, 2)

	want := []rune{'0', '3', '4', ' ', ' '}
	for c, w := range want {
		if got := g.Cell(0, c).Char; got != w {
			t.Errorf("col %d: got %q, want %q", c, got, w)
		}
	}
}

func blankRowFn(cols int) func() []Cell {
	return func() []Cell { return newBlankRow(cols) }
}

func TestGridScrollRegionUpPushesBlanksAndReturnsRemoved(t *testing.T) {
	g := NewGrid(4, 2)
	for r := 0; r < 4; r++ {
		g.Cell(r, 0).Char = rune('A' + r)
	}

	removed := g.ScrollRegionUp(0, 3, 1, blankRowFn(2))

	if len(removed) != 1 || removed[0][0].Char != 'A' {
		t.Fatalf("expected removed row to be the old top row, got %+v", removed)
	}
	want := []rune{'B', 'C', 'D', ' '}
	for r, w := range want {
		if got := g.Cell(r, 0).Char; got != w {
			t.Errorf("row %d: got %q, want %q", r, got, w)
		}
	}
}

func TestGridScrollRegionUpRespectsRegionBounds(t *testing.T) {
	g := NewGrid(4, 2)
	for r := 0; r < 4; r++ {
		g.Cell(r, 0).Char = rune('A' + r)
	}

	// Scroll only rows [1,2]; rows 0 and 3 must stay untouched.
	g.ScrollRegionUp(1, 2, 1, blankRowFn(2))

	want := []rune{'A', 'C', ' ', 'D'}
	for r, w := range want {
		if got := g.Cell(r, 0).Char; got != w {
			t.Errorf("row %d: got %q, want %q", r, got, w)
		}
	}
}

func TestGridScrollRegionDownInsertsBlanksAtTop(t *testing.T) {
	g := NewGrid(4, 2)
	for r := 0; r < 4; r++ {
		g.Cell(r, 0).Char = rune('A' + r)
	}

	g.ScrollRegionDown(0, 3, 1, blankRowFn(2))

	want := []rune{' ', 'A', 'B', 'C'}
	for r, w := range want {
		if got := g.Cell(r, 0).Char; got != w {
			t.Errorf("row %d: got %q, want %q", r, got, w)
		}
	}
}

func TestGridScrollRegionNoopWhenNOrBoundsInvalid(t *testing.T) {
	g := NewGrid(3, 2)
	for r := 0; r < 3; r++ {
		g.Cell(r, 0).Char = rune('A' + r)
	}

	if removed := g.ScrollRegionUp(0, 2, 0, blankRowFn(2)); removed != nil {
		t.Error("expected nil for n=0")
	}
	if removed := g.ScrollRegionUp(-1, 2, 1, blankRowFn(2)); removed != nil {
		t.Error("expected nil for negative top")
	}
	if removed := g.ScrollRegionUp(0, 3, 1, blankRowFn(2)); removed != nil {
		t.Error("expected nil for bottom out of range")
	}
	for r := 0; r < 3; r++ {
		if got := g.Cell(r, 0).Char; got != rune('A'+r) {
			t.Errorf("grid mutated by a no-op call: row %d got %q", r, got)
		}
	}
}

func TestGridResizeColsGrowsAndShrinks(t *testing.T) {
	g := NewGrid(2, 2)
	g.Cell(0, 0).Char = 'A'
	g.Cell(0, 1).Char = 'B'

	g.ResizeCols(4)
	if g.Cols() != 4 {
		t.Fatalf("expected 4 cols, got %d", g.Cols())
	}
	if g.Cell(0, 0).Char != 'A' || g.Cell(0, 1).Char != 'B' {
		t.Error("existing content not preserved on grow")
	}
	if !g.Cell(0, 2).IsDefault() || !g.Cell(0, 3).IsDefault() {
		t.Error("new columns should be default cells")
	}

	g.ResizeCols(1)
	if g.Cols() != 1 {
		t.Fatalf("expected 1 col, got %d", g.Cols())
	}
	if g.Cell(0, 0).Char != 'A' {
		t.Error("truncation should keep leftmost content")
	}
}

func TestGridResizeRowsGrowsAndShrinks(t *testing.T) {
	g := NewGrid(2, 2)
	g.Cell(0, 0).Char = 'A'
	g.Cell(1, 0).Char = 'B'

	g.ResizeRows(4)
	if g.Rows() != 4 {
		t.Fatalf("expected 4 rows, got %d", g.Rows())
	}
	if g.Cell(0, 0).Char != 'A' || g.Cell(1, 0).Char != 'B' {
		t.Error("existing rows not preserved on grow")
	}
	if !g.Cell(2, 0).IsDefault() || !g.Cell(3, 0).IsDefault() {
		t.Error("new rows should be default cells")
	}

	g.ResizeRows(1)
	if g.Rows() != 1 {
		t.Fatalf("expected 1 row, got %d", g.Rows())
	}
	if g.Cell(0, 0).Char != 'A' {
		t.Error("truncation should keep top rows")
	}
}
