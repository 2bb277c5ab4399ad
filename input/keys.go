// Package input translates keyboard and mouse events into the byte
// sequences a shell expects on the PTY (spec.md §4.5).
package input

// Key names the non-printable keys the encoder recognizes by name.
// Printable characters are carried directly as a rune on KeyEvent.Rune,
// matching the "Printable char c -> UTF-8 bytes of c" row of the
// translation table.
type Key int

const (
	KeyNone Key = iota
	KeyReturn
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyTab
	KeyInsert
)

// Modifier is a bitmask of held modifier keys.
type Modifier int

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is one keypress delivered by the host to the coordinator.
type KeyEvent struct {
	Key  Key
	Rune rune // valid when Key == KeyNone
	Mod  Modifier
}

// MouseButton identifies which mouse button or wheel direction an event
// reports, using the SGR 1006 button codes from spec.md §4.5.
type MouseButton int

const (
	MouseLeft      MouseButton = 0
	MouseRight     MouseButton = 2
	MouseWheelUp   MouseButton = 64
	MouseWheelDown MouseButton = 65
)

// MouseEventKind distinguishes press from release.
type MouseEventKind int

const (
	MousePress MouseEventKind = iota
	MouseRelease
)

// MouseEvent is one mouse action delivered by the host, in 0-based cell
// coordinates.
type MouseEvent struct {
	Button MouseButton
	Kind   MouseEventKind
	Col    int
	Row    int
	Mod    Modifier
}
