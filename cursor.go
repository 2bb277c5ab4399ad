package term

// Cursor tracks the current write position in cell coordinates.
//
// X may equal cols: that is the deferred-wrap position, meaning the next
// print() wraps to a new line before placing its glyph (spec.md §4.2,
// "Cursor motion discipline").
type Cursor struct {
	X, Y int
}

// SavedCursor is the DECSC/DECRC checkpoint: position plus the pen state
// active at save time.
type SavedCursor struct {
	X, Y int
	Pen  Pen
}

// Pen holds the attribute set applied to cells newly written by print().
// It is distinct from Cursor because SGR mutates it independently of
// cursor motion, and because DECSC/DECRC must snapshot it without
// disturbing the live cursor.
type Pen struct {
	Fg      Color
	Bg      Color
	Inverse bool
}

// NewPen returns the default pen: default colors, not inverted.
func NewPen() Pen {
	return Pen{Fg: DefaultFg, Bg: DefaultBg}
}

// Reset restores the pen to its default state in place, per SGR 0.
func (p *Pen) Reset() {
	*p = NewPen()
}

// cell renders the pen's current attributes onto a glyph.
func (p Pen) cell(ch rune) Cell {
	return Cell{Char: ch, Fg: p.Fg, Bg: p.Bg, Inverse: p.Inverse}
}
