package term

// View tracks how far the visible screen has been scrolled back into
// history. offset == 0 means the live screen (grid) is shown; a positive
// offset reveals that many historical rows at the top (spec.md §4.3).
type View struct {
	offset int
}

// Offset returns the current scroll offset.
func (v *View) Offset() int { return v.offset }

// ScrollUp reveals n more historical rows, clamped to the history length.
func (v *View) ScrollUp(n, historyLen int) {
	v.offset += n
	if v.offset > historyLen {
		v.offset = historyLen
	}
}

// ScrollDown hides n revealed historical rows, clamped at zero (the live
// screen).
func (v *View) ScrollDown(n int) {
	v.offset -= n
	if v.offset < 0 {
		v.offset = 0
	}
}

// Reset returns the view to the live screen. Any keystroke forwarded to
// the child does this.
func (v *View) Reset() {
	v.offset = 0
}

// VisibleRow returns the row to render at screen position screenY (0 is
// the top of the viewport), given the current scroll offset, the live
// grid, and the scrollback history.
func VisibleRow(screenY int, offset int, grid *Grid, history ScrollbackProvider) []Cell {
	if offset == 0 {
		return grid.Row(screenY)
	}
	rows := grid.Rows()
	rowsFromBottom := rows - 1 - screenY
	eff := offset + rowsFromBottom
	if eff >= rows {
		idx := history.Len() - (eff - rows + 1)
		return history.Line(idx)
	}
	return grid.Row(rows - eff - 1)
}
