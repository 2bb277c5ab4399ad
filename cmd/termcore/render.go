package main

import (
	"fmt"
	"io"

	term "github.com/fernlabs/termcore"
)

// sgrCode maps a grid Color to its SGR foreground parameter, or to its
// background parameter when background is true. Rendering a
// tag to a concrete escape sequence is the host's job (spec.md §3: "the
// grid stores only the tag"); this is that mapping for the CLI host.
func sgrCode(c term.Color, background bool) int {
	base := 30
	if background {
		base = 40
	}
	switch c {
	case term.DefaultFg:
		return base + 9
	case term.DefaultBg:
		return base + 9
	case term.Black, term.Red, term.Green, term.Yellow, term.Blue, term.Magenta, term.Cyan, term.White:
		return base + int(c-term.Black)
	case term.BrightBlack, term.BrightRed, term.BrightGreen, term.BrightYellow,
		term.BrightBlue, term.BrightMagenta, term.BrightCyan, term.BrightWhite:
		return base + 60 + int(c-term.BrightBlack)
	default:
		return base + 9
	}
}

// redraw repaints the full visible grid to w. It is not differential: a
// real GUI host would diff against the previous frame, but that belongs
// to the renderer this module explicitly treats as an external
// collaborator (spec.md §1).
func redraw(w io.Writer, t *term.Terminal) {
	fmt.Fprint(w, "\x1b[H")
	rows, cols := t.Rows(), t.Cols()
	for y := 0; y < rows; y++ {
		row := t.VisibleRow(y)
		for x := 0; x < cols; x++ {
			cell := term.NewCell()
			if x < len(row) {
				cell = row[x]
			}
			fg, bg := cell.Fg, cell.Bg
			if cell.Inverse {
				fg, bg = bg, fg
			}
			fmt.Fprintf(w, "\x1b[%d;%dm%c", sgrCode(fg, false), sgrCode(bg, true), cell.Char)
		}
		fmt.Fprint(w, "\x1b[0m\r\n")
	}
	x, y := t.CursorPos()
	fmt.Fprintf(w, "\x1b[%d;%dH", y+1, x+1)
}
