// Package term implements the terminal core: an ANSI/VT byte-stream
// interpreter driving a two-dimensional cell grid with bounded
// scrollback, scroll regions, and mouse selection.
//
// # Architecture
//
//   - [Terminal]: owns the grid, cursor, pen, margins, scrollback,
//     selection, and view; the single point of entry for PTY bytes.
//   - [Grid]: the active screen, a fixed rows×cols array of [Cell].
//   - [Cell]: one glyph plus its colors and inverse flag.
//   - [ScrollbackProvider]: a bounded FIFO of rows retired from the grid.
//   - [Selection], [View]: mouse selection and scroll-offset state.
//
// Terminal is meant to be driven by a single coordinator goroutine (see
// the coordinator package), which owns the PTY and the input encoder.
// Write feeds PTY output through the parser; the accessor methods
// (Cell, CursorPos, VisibleRow, ...) let a renderer read the result.
//
//	t := term.New(24, 80)
//	t.Write([]byte("\x1b[31mHello\x1b[0m"))
//	fmt.Println(t.Cell(0, 0).Fg) // Red
package term
