package coordinator

import (
	"time"

	"github.com/fernlabs/termcore/input"
)

// keyRepeater tracks the last special key pressed and fires it again
// after an initial delay, then at a steady interval, for as long as the
// key is held (spec.md §4.5). The coordinator calls Arm on every key
// press and Release on key-up; Due is polled from the main loop.
type keyRepeater struct {
	delay    time.Duration
	interval time.Duration

	active bool
	key    input.KeyEvent
	armed  time.Time
	fired  int
}

func newKeyRepeater(delay, interval time.Duration) *keyRepeater {
	return &keyRepeater{delay: delay, interval: interval}
}

// Arm starts (or restarts) the repeater for a repeatable key.
func (r *keyRepeater) Arm(ev input.KeyEvent) {
	if !input.IsRepeatable(ev) {
		r.active = false
		return
	}
	r.active = true
	r.key = ev
	r.armed = now()
	r.fired = 0
}

// Release stops the repeater; called on key-up.
func (r *keyRepeater) Release() {
	r.active = false
}

// Due reports the key event to re-send, if the repeater is active and
// enough time has elapsed since it was armed or last fired.
func (r *keyRepeater) Due() (input.KeyEvent, bool) {
	if !r.active {
		return input.KeyEvent{}, false
	}
	elapsed := now().Sub(r.armed)
	threshold := r.delay + time.Duration(r.fired)*r.interval
	if elapsed < threshold {
		return input.KeyEvent{}, false
	}
	r.fired++
	return r.key, true
}

// now is a seam so tests can control time without relying on a real
// clock tick-for-tick.
var now = time.Now
