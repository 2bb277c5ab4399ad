// Package coordinator is the single-threaded owner of the grid, PTY, and
// clipboard (spec.md §4.7, §5). It is the only piece of this module that
// touches more than one goroutine's worth of state, and it does so only
// through the channels documented below.
package coordinator

import (
	"context"
	"time"

	term "github.com/fernlabs/termcore"
	"github.com/fernlabs/termcore/input"
)

// ptyBridge is the slice of ptyio.Session the coordinator needs. Accepting
// an interface keeps the coordinator testable without a real PTY.
type ptyBridge interface {
	Write(data []byte)
	Resize(rows, cols int)
	Batches() <-chan []byte
}

// Coordinator routes PTY output through the parser into the grid, and
// input events through the encoder onto the PTY, per spec.md §4.7.
type Coordinator struct {
	term *term.Terminal
	pty  ptyBridge

	events chan Event
	redraw func()
	repeat *keyRepeater
}

// New builds a Coordinator wiring an already-constructed Terminal and
// PTY session. redraw is invoked whenever the grid, selection, or scroll
// offset may have changed and a render is worth requesting.
func New(t *term.Terminal, session ptyBridge, redraw func(), repeatDelay, repeatInterval time.Duration) *Coordinator {
	return &Coordinator{
		term:   t,
		pty:    session,
		events: make(chan Event, 256),
		redraw: redraw,
		repeat: newKeyRepeater(repeatDelay, repeatInterval),
	}
}

// Send enqueues an event for the coordinator's loop. Safe to call from
// any goroutine (the host's window/input callbacks).
func (c *Coordinator) Send(ev Event) {
	c.events <- ev
}

// Run drains PTY batches and queued events until ctx is canceled or a
// CloseRequested event arrives. It ticks the key-repeat timer with a
// short poll interval while a repeatable key is held, matching spec.md
// §5's "coordinator switches to a polling wait while key-repeat is
// active, otherwise waits for events."
func (c *Coordinator) Run(ctx context.Context) {
	const pollInterval = 10 * time.Millisecond
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		var tick <-chan time.Time
		if c.repeat.active {
			tick = ticker.C
		}
		select {
		case <-ctx.Done():
			return

		case batch, ok := <-c.pty.Batches():
			if !ok {
				return
			}
			c.term.Write(batch)
			c.redraw()

		case ev := <-c.events:
			if c.handle(ev) {
				return
			}
			c.redraw()

		case <-tick:
			if key, due := c.repeat.Due(); due {
				c.forwardKey(key)
			}
		}
	}
}

// handle applies one event to terminal/PTY state. It returns true when
// the coordinator should stop.
func (c *Coordinator) handle(ev Event) bool {
	switch ev.Kind {
	case EventPtyOutput:
		c.term.Write(ev.PtyOutput)

	case EventResized:
		// Grid resizes first, then the PTY, per spec.md §4.6.
		c.term.Resize(ev.Resized.Rows, ev.Resized.Cols)
		c.pty.Resize(ev.Resized.Rows, ev.Resized.Cols)

	case EventKey:
		c.repeat.Arm(ev.Key)
		c.forwardKey(ev.Key)

	case EventMouse:
		c.handleMouse(ev.Mouse)

	case EventCloseRequested:
		return true
	}
	return false
}

// forwardKey applies the modifier overrides from spec.md §4.5 (copy,
// paste, scrollback navigation) before falling through to the plain
// keystroke encoder. Any key forwarded to the child resets the scroll
// view, per spec.md §4.3.
func (c *Coordinator) forwardKey(ev input.KeyEvent) {
	if ev.Mod&input.ModCtrl != 0 && ev.Mod&input.ModShift != 0 {
		switch ev.Rune {
		case 'c', 'C':
			c.term.CopySelection()
			return
		case 'v', 'V':
			c.pty.Write([]byte(c.term.PasteClipboard()))
			c.term.ResetView()
			return
		}
	}

	if ev.Mod&input.ModShift != 0 {
		switch ev.Key {
		case input.KeyUp:
			c.term.ScrollUp(1)
			return
		case input.KeyDown:
			c.term.ScrollDown(1)
			return
		case input.KeyPageUp:
			c.term.ScrollUp(10)
			return
		case input.KeyPageDown:
			c.term.ScrollDown(10)
			return
		case input.KeyInsert:
			c.pty.Write([]byte(c.term.PasteClipboard()))
			c.term.ResetView()
			return
		}
	}

	bytes := input.EncodeKey(ev)
	if len(bytes) == 0 {
		return
	}
	c.pty.Write(bytes)
	c.term.ResetView()
}

// handleMouse implements spec.md §4.5's mouse dispatch: SGR reporting
// when enabled and Shift is not held, otherwise local selection/scroll.
func (c *Coordinator) handleMouse(ev input.MouseEvent) {
	if c.term.MouseReportingEnabled() && ev.Mod&input.ModShift == 0 {
		c.pty.Write(input.EncodeMouse(ev))
		return
	}

	switch ev.Button {
	case input.MouseWheelUp:
		c.term.ScrollUp(3)
	case input.MouseWheelDown:
		c.term.ScrollDown(3)
	case input.MouseLeft:
		if ev.Kind == input.MousePress {
			c.term.StartSelection(ev.Col, ev.Row)
		} else {
			c.term.UpdateSelection(ev.Col, ev.Row)
		}
	}
}
