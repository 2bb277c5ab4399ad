package term

import (
	"strings"

	vte "github.com/danielgatis/go-vte"
)

// This file implements go-vte's Performer interface: the narrow
// print/execute/csi_dispatch/osc_dispatch vocabulary spec.md §4.1 mandates
// is exactly that library's Perform contract. Hook/Put/Unhook serve DCS
// sequences, which are out of scope here, so they are empty per spec.md §9
// ("only the first four are meaningful here; the rest may be empty").
// EscDispatch handles only DECSC/DECRC and ignores character-set
// sequences.

// Print places one decoded Unicode scalar at the cursor, handling the
// deferred-wrap discipline described in spec.md §4.2.
func (t *Terminal) Print(r rune) {
	if t.cursor.X == t.grid.Cols() {
		t.newLine()
		t.cursor.X = 0
	}
	if cell := t.grid.Cell(t.cursor.Y, t.cursor.X); cell != nil {
		*cell = t.pen.cell(r)
	}
	t.cursor.X++
}

// Execute handles a C0 control byte.
func (t *Terminal) Execute(b byte) {
	switch b {
	case 0x0A: // LF
		t.newLine()
	case 0x0D: // CR
		t.cursor.X = 0
	case 0x08: // BS
		if t.cursor.X > 0 {
			t.cursor.X--
		}
	case 0x09: // HT, next multiple of 8 (spec.md §9 open question)
		next := (t.cursor.X/8 + 1) * 8
		t.cursor.X = clamp(next, 0, t.grid.Cols()-1)
	case 0x07: // BEL
		t.bell.Ring()
	}
}

// CsiDispatch handles one CSI sequence. Each parameter group defaults a
// missing or zero entry to 1 except where the table in spec.md §4.2 says
// otherwise; colon-separated sub-parameters (e.g. truecolor SGR) are
// ignored beyond the first, consistent with this module's 18-color scope.
func (t *Terminal) CsiDispatch(params *vte.Params, intermediates []byte, ignore bool, action rune) {
	if ignore {
		return
	}
	private := len(intermediates) > 0 && intermediates[0] == '?'

	var groups [][]uint16
	if params != nil {
		groups = params.Iter()
	}
	p := func(i int) int {
		if i >= len(groups) || len(groups[i]) == 0 || groups[i][0] == 0 {
			return 1
		}
		return int(groups[i][0])
	}
	raw := func(i int) int {
		if i >= len(groups) || len(groups[i]) == 0 {
			return 0
		}
		return int(groups[i][0])
	}

	rows, cols := t.grid.Rows(), t.grid.Cols()

	switch action {
	case 'A': // CUU
		t.cursor.Y = clamp(t.cursor.Y-p(0), 0, rows-1)
	case 'B': // CUD
		t.cursor.Y = clamp(t.cursor.Y+p(0), 0, rows-1)
	case 'C': // CUF
		t.cursor.X = clamp(t.cursor.X+p(0), 0, cols-1)
	case 'D': // CUB
		t.cursor.X = clamp(t.cursor.X-p(0), 0, cols-1)
	case 'G': // CHA
		t.cursor.X = clamp(p(0)-1, 0, cols-1)
	case 'd': // VPA
		t.cursor.Y = clamp(p(0)-1, 0, rows-1)
	case 'H', 'f': // CUP
		row, col := p(0), 1
		if len(groups) > 1 {
			col = p(1)
		}
		t.cursor.Y = clamp(row-1, 0, rows-1)
		t.cursor.X = clamp(col-1, 0, cols-1)
	case 'J': // ED
		t.eraseDisplay(raw(0))
	case 'K': // EL
		t.eraseLine(raw(0))
	case 'L': // IL
		t.insertLines(p(0))
	case 'M': // DL
		t.deleteLines(p(0))
	case 'P': // DCH
		t.grid.DeleteChars(t.cursor.Y, t.cursor.X, p(0))
	case '@': // ICH
		t.grid.InsertBlanks(t.cursor.Y, t.cursor.X, p(0))
	case 'r': // DECSTBM
		top, bottom := p(0)-1, rows-1
		if len(groups) > 1 {
			bottom = p(1) - 1
		}
		t.margins.set(top, bottom, rows)
		t.cursor.X, t.cursor.Y = 0, 0
	case 'h':
		if private {
			t.setPrivateMode(groups, true)
		}
	case 'l':
		if private {
			t.setPrivateMode(groups, false)
		}
	case 'm':
		t.applySGR(groups)
	case 't': // XTWINOPS title stack (22 push, 23 pop); everything else ignored
		switch raw(0) {
		case 22:
			t.pushTitle()
		case 23:
			t.popTitle()
		}
	}
}

func (t *Terminal) eraseDisplay(mode int) {
	switch mode {
	case 0:
		t.grid.ClearRange(t.cursor.Y, t.cursor.X, t.grid.Cols())
		for row := t.cursor.Y + 1; row < t.grid.Rows(); row++ {
			t.grid.ClearRow(row)
		}
	case 2:
		t.grid.ClearAll()
		t.cursor.X, t.cursor.Y = 0, 0
	}
}

func (t *Terminal) eraseLine(mode int) {
	switch mode {
	case 0:
		t.grid.ClearRange(t.cursor.Y, t.cursor.X, t.grid.Cols())
	case 1:
		t.grid.ClearRange(t.cursor.Y, 0, t.cursor.X+1)
	case 2:
		t.grid.ClearRow(t.cursor.Y)
	}
}

// insertLines implements IL: no-op if the cursor sits outside the scroll
// region (spec.md §4.2).
func (t *Terminal) insertLines(n int) {
	if t.cursor.Y < t.margins.Top || t.cursor.Y > t.margins.Bottom {
		return
	}
	t.grid.ScrollRegionDown(t.cursor.Y, t.margins.Bottom, n, t.blankRow)
}

// deleteLines implements DL: rows removed here are never pushed to
// history, regardless of margins.Top, matching spec.md's rule that only
// new_line's top-of-region scroll populates history.
func (t *Terminal) deleteLines(n int) {
	if t.cursor.Y < t.margins.Top || t.cursor.Y > t.margins.Bottom {
		return
	}
	t.grid.ScrollRegionUp(t.cursor.Y, t.margins.Bottom, n, t.blankRow)
}

// setPrivateMode handles DECSET/DECRST for the modes spec.md §4.2 names:
// mouse reporting variants and the (ignored) cursor-visibility mode.
func (t *Terminal) setPrivateMode(groups [][]uint16, enabled bool) {
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		switch g[0] {
		case 1000, 1002, 1006, 1015:
			t.mouseReporting = enabled
		case 25:
			// cursor visibility: accepted, no grid effect.
		}
	}
}

// applySGR applies each SGR parameter to the pen in order (spec.md §4.2).
// An empty parameter list is treated as a single implicit 0.
func (t *Terminal) applySGR(groups [][]uint16) {
	if len(groups) == 0 {
		t.pen.Reset()
		return
	}
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		p := int(g[0])
		switch {
		case p == 0:
			t.pen.Reset()
		case p == 1:
			t.pen.Fg = brightOf(t.pen.Fg)
		case p == 7:
			t.pen.Inverse = true
		case p == 27:
			t.pen.Inverse = false
		default:
			if fg, ok := fgFromSGR(p); ok {
				t.pen.Fg = fg
				continue
			}
			if bg, ok := bgFromSGR(p); ok {
				t.pen.Bg = bg
			}
		}
	}
}

// OscDispatch handles OSC 0/2 (set title); every other OSC is ignored
// per spec.md §4.2. A title containing ';' arrives as further params, so
// the tail is rejoined rather than just taking params[1].
func (t *Terminal) OscDispatch(params [][]byte, bellTerminated bool) {
	if len(params) < 2 {
		return
	}
	switch string(params[0]) {
	case "0", "2":
		parts := make([]string, len(params)-1)
		for i, p := range params[1:] {
			parts[i] = string(p)
		}
		t.title = strings.Join(parts, ";")
		t.titleSink.SetTitle(t.title)
	}
}

// pushTitle and popTitle back a title stack some shells and vim use
// around prompt rendering; spec.md's OSC table only mandates 0/2, but a
// stack is a thin addition on top of the single title field already kept.
func (t *Terminal) pushTitle() {
	t.titleStack = append(t.titleStack, t.title)
}

func (t *Terminal) popTitle() {
	if len(t.titleStack) == 0 {
		return
	}
	last := len(t.titleStack) - 1
	t.title = t.titleStack[last]
	t.titleStack = t.titleStack[:last]
	t.titleSink.SetTitle(t.title)
}

// EscDispatch handles the two escape sequences outside the CSI/OSC
// vocabulary spec.md names a data type for without a dedicated table
// entry: DECSC (ESC 7) and DECRC (ESC 8), checkpointing and restoring the
// cursor position and pen together (spec.md §3, "Saved cursor").
// Character-set designation sequences are out of scope and ignored.
func (t *Terminal) EscDispatch(intermediates []byte, ignore bool, b byte) {
	if len(intermediates) != 0 {
		return
	}
	switch b {
	case '7':
		t.saved = &SavedCursor{X: t.cursor.X, Y: t.cursor.Y, Pen: t.pen}
	case '8':
		if t.saved != nil {
			t.cursor.X, t.cursor.Y = t.saved.X, t.saved.Y
			t.pen = t.saved.Pen
		}
	}
}

// Hook, Put, and Unhook are no-ops: DCS sequences are out of scope
// (spec.md §9).
func (t *Terminal) Hook(params *vte.Params, intermediates []byte, ignore bool, action rune) {}
func (t *Terminal) Put(b byte)                                                              {}
func (t *Terminal) Unhook()                                                                 {}
