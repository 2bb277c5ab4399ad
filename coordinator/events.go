package coordinator

import "github.com/fernlabs/termcore/input"

// Event is the single enum the coordinator's loop is a pure function of,
// per spec.md §9's design note: "Host GUI event loops deliver window,
// input, and user events to the coordinator via a single event enum."
type Event struct {
	Kind EventKind

	PtyOutput []byte
	Resized   struct{ Cols, Rows int }
	Key       input.KeyEvent
	Mouse     input.MouseEvent
}

// EventKind discriminates the Event union.
type EventKind int

const (
	EventPtyOutput EventKind = iota
	EventRedrawRequested
	EventResized
	EventKey
	EventMouse
	EventCloseRequested
)
