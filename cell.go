package term

// Cell stores the glyph and rendering attributes for one grid position.
type Cell struct {
	Char    rune
	Fg      Color
	Bg      Color
	Inverse bool
}

// NewCell returns the default cell: a space with default colors, not inverted.
func NewCell() Cell {
	return Cell{Char: ' ', Fg: DefaultFg, Bg: DefaultBg}
}

// Reset restores the cell to its default state in place.
func (c *Cell) Reset() {
	*c = NewCell()
}

// IsDefault reports whether the cell equals the default cell value.
func (c Cell) IsDefault() bool {
	return c == NewCell()
}
