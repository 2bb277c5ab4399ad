package coordinator

import (
	"testing"
	"time"

	"github.com/fernlabs/termcore/input"
)

func withFakeClock(t *testing.T) func(d time.Duration) {
	t.Helper()
	var cur time.Time
	orig := now
	now = func() time.Time { return cur }
	t.Cleanup(func() { now = orig })
	return func(d time.Duration) { cur = cur.Add(d) }
}

func TestKeyRepeaterNotDueBeforeInitialDelay(t *testing.T) {
	advance := withFakeClock(t)
	r := newKeyRepeater(500*time.Millisecond, 50*time.Millisecond)

	r.Arm(input.KeyEvent{Key: input.KeyUp})
	advance(100 * time.Millisecond)

	if _, due := r.Due(); due {
		t.Error("expected not due before initial delay elapses")
	}
}

func TestKeyRepeaterFiresAfterInitialDelayThenInterval(t *testing.T) {
	advance := withFakeClock(t)
	r := newKeyRepeater(500*time.Millisecond, 50*time.Millisecond)

	r.Arm(input.KeyEvent{Key: input.KeyUp})
	advance(500 * time.Millisecond)

	ev, due := r.Due()
	if !due || ev.Key != input.KeyUp {
		t.Fatal("expected repeat due after initial delay")
	}

	if _, due := r.Due(); due {
		t.Error("expected not due immediately after firing")
	}

	advance(50 * time.Millisecond)
	if _, due := r.Due(); !due {
		t.Error("expected repeat due after one more interval")
	}
}

func TestKeyRepeaterIgnoresNonRepeatableKeys(t *testing.T) {
	r := newKeyRepeater(500*time.Millisecond, 50*time.Millisecond)
	r.Arm(input.KeyEvent{Rune: 'a'})

	if _, due := r.Due(); due {
		t.Error("expected printable rune never to arm the repeater")
	}
}

func TestKeyRepeaterRelease(t *testing.T) {
	advance := withFakeClock(t)
	r := newKeyRepeater(500*time.Millisecond, 50*time.Millisecond)

	r.Arm(input.KeyEvent{Key: input.KeyUp})
	r.Release()
	advance(time.Second)

	if _, due := r.Due(); due {
		t.Error("expected no repeat after Release")
	}
}
