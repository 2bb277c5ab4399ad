package term

import (
	"sync"

	vte "github.com/danielgatis/go-vte"
)

// Terminal owns every piece of mutable state the parser drives: the grid,
// cursor, pen, margins, scrollback, selection, view, and title. It is
// meant to be owned by a single coordinator goroutine (spec.md §5); the
// mutex exists only so a renderer on another goroutine can take
// consistent snapshots without racing the coordinator.
type Terminal struct {
	mu sync.RWMutex

	grid    *Grid
	cursor  Cursor
	pen     Pen
	saved   *SavedCursor
	margins Margins

	history   ScrollbackProvider
	selection Selection
	view      View

	title          string
	titleStack     []string
	mouseReporting bool

	decoder *vte.Parser

	bell      BellProvider
	titleSink TitleProvider
	clipboard ClipboardProvider
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithScrollback overrides the default bounded in-memory scrollback.
func WithScrollback(p ScrollbackProvider) Option {
	return func(t *Terminal) { t.history = p }
}

// WithBell installs a BellProvider invoked on BEL.
func WithBell(p BellProvider) Option {
	return func(t *Terminal) { t.bell = p }
}

// WithTitle installs a TitleProvider notified on every title change.
func WithTitle(p TitleProvider) Option {
	return func(t *Terminal) { t.titleSink = p }
}

// WithClipboard installs a ClipboardProvider for the coordinator's
// copy/paste key bindings. OSC 52 is not handled.
func WithClipboard(p ClipboardProvider) Option {
	return func(t *Terminal) { t.clipboard = p }
}

// New builds a Terminal sized (rows, cols) with default state.
func New(rows, cols int, opts ...Option) *Terminal {
	t := &Terminal{
		grid:      NewGrid(rows, cols),
		pen:       NewPen(),
		margins:   defaultMargins(rows),
		history:   NewScrollback(),
		bell:      NoopBell{},
		titleSink: NoopTitle{},
		clipboard: NoopClipboard{},
	}
	t.decoder = vte.NewParser()
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Advance feeds one byte from the PTY through the parser. The parser is
// pure with respect to I/O: CSI/OSC handling below never writes to the
// PTY, only to grid state (spec.md §4.1).
func (t *Terminal) Advance(b byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.decoder.Advance(t, b)
}

// Write feeds a batch of bytes read from the PTY.
func (t *Terminal) Write(data []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, b := range data {
		t.decoder.Advance(t, b)
	}
}

// Rows returns the grid height.
func (t *Terminal) Rows() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.grid.Rows()
}

// Cols returns the grid width.
func (t *Terminal) Cols() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.grid.Cols()
}

// Cell returns a copy of the cell at (row, col) on the live screen.
func (t *Terminal) Cell(row, col int) Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c := t.grid.Cell(row, col)
	if c == nil {
		return NewCell()
	}
	return *c
}

// CursorPos returns the cursor position.
func (t *Terminal) CursorPos() (x, y int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.X, t.cursor.Y
}

// Title returns the current window title.
func (t *Terminal) Title() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.title
}

// MouseReportingEnabled reports whether SGR mouse reporting is on.
func (t *Terminal) MouseReportingEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mouseReporting
}

// VisibleRow returns the row rendered at screen position screenY, taking
// the current scroll offset into account (spec.md §4.3).
func (t *Terminal) VisibleRow(screenY int) []Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return VisibleRow(screenY, t.view.Offset(), t.grid, t.history)
}

// ScrollUp reveals n more historical rows.
func (t *Terminal) ScrollUp(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view.ScrollUp(n, t.history.Len())
}

// ScrollDown hides n revealed historical rows.
func (t *Terminal) ScrollDown(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view.ScrollDown(n)
}

// ResetView snaps the view back to the live screen. Any keystroke
// forwarded to the child does this (spec.md §4.3).
func (t *Terminal) ResetView() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view.Reset()
}

// StartSelection begins a mouse selection at (col, row).
func (t *Terminal) StartSelection(col, row int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selection.Start(col, row)
}

// UpdateSelection drags the selection head to (col, row).
func (t *Terminal) UpdateSelection(col, row int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selection.Update(col, row)
}

// ClearSelection discards the current selection.
func (t *Terminal) ClearSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selection.Clear()
}

// IsSelected reports whether (col, row) is part of the current selection.
func (t *Terminal) IsSelected(col, row int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.selection.IsSelected(col, row)
}

// SelectedText renders the current selection to a string.
func (t *Terminal) SelectedText() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	cols := t.grid.Cols()
	return t.selection.SelectedText(cols, func(row int) []Cell {
		return VisibleRow(row, t.view.Offset(), t.grid, t.history)
	})
}

// CopySelection copies the current selection to the clipboard
// (Ctrl+Shift+C, spec.md §4.5). Clipboard failures are swallowed.
func (t *Terminal) CopySelection() {
	t.mu.RLock()
	text := t.selection.SelectedText(t.grid.Cols(), func(row int) []Cell {
		return VisibleRow(row, t.view.Offset(), t.grid, t.history)
	})
	t.mu.RUnlock()
	if text == "" {
		return
	}
	t.clipboard.Set(text)
}

// PasteClipboard returns the clipboard's current contents, to be sent to
// the PTY as literal bytes by the caller (spec.md §4.5: Shift+Insert /
// Ctrl+Shift+V inserts clipboard text without interpreting it).
func (t *Terminal) PasteClipboard() string {
	return t.clipboard.Get()
}

// ScrollbackLen returns the number of retained historical rows.
func (t *Terminal) ScrollbackLen() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.history.Len()
}

// Resize changes the grid dimensions, clamping the cursor and resetting
// margins and the scroll view (spec.md §4.2 Resize).
func (t *Terminal) Resize(rows, cols int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.grid.ResizeCols(cols)
	t.grid.ResizeRows(rows)

	if t.cursor.X > cols {
		t.cursor.X = cols
	}
	if t.cursor.Y >= rows {
		t.cursor.Y = rows - 1
	}
	if t.cursor.Y < 0 {
		t.cursor.Y = 0
	}

	t.margins = defaultMargins(rows)
	t.view.Reset()
}

func (t *Terminal) blankRow() []Cell {
	cols := t.grid.Cols()
	row := make([]Cell, cols)
	for i := range row {
		row[i] = t.pen.cell(' ')
	}
	return row
}

// newLine implements spec.md §4.2's new_line() semantics: scroll the
// region when the cursor sits on its bottom edge, otherwise just advance.
func (t *Terminal) newLine() {
	if t.cursor.Y == t.margins.Bottom {
		removed := t.grid.ScrollRegionUp(t.margins.Top, t.margins.Bottom, 1, t.blankRow)
		if t.margins.Top == 0 && len(removed) > 0 {
			t.history.Push(removed[0])
		}
		return
	}
	t.cursor.Y++
	if t.cursor.Y >= t.grid.Rows() {
		t.cursor.Y = t.grid.Rows() - 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
