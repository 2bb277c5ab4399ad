package input

import "strconv"

// EncodeKey renders a key event to the byte sequence the translation
// table in spec.md §4.5 specifies. A nil/empty return means the event
// carries no payload for the PTY (e.g. an unrecognized key).
func EncodeKey(ev KeyEvent) []byte {
	if ev.Key == KeyNone && ev.Rune != 0 {
		if ev.Mod&ModCtrl != 0 {
			return encodeCtrlRune(ev.Rune)
		}
		return []byte(string(ev.Rune))
	}

	switch ev.Key {
	case KeyReturn:
		return []byte{'\r'}
	case KeyBackspace:
		return []byte{0x7f}
	case KeyDelete:
		return []byte("\x1b[3~")
	case KeyEscape:
		return []byte{0x1b}
	case KeyUp:
		return []byte("\x1b[A")
	case KeyDown:
		return []byte("\x1b[B")
	case KeyRight:
		return []byte("\x1b[C")
	case KeyLeft:
		return []byte("\x1b[D")
	case KeyPageUp:
		return []byte("\x1b[5~")
	case KeyPageDown:
		return []byte("\x1b[6~")
	case KeyHome:
		return []byte("\x1b[H")
	case KeyEnd:
		return []byte("\x1b[F")
	case KeyTab:
		return []byte{0x09}
	default:
		return nil
	}
}

// encodeCtrlRune maps Ctrl+letter and the three punctuation control keys
// spec.md §4.5 lists (Ctrl+[, Ctrl+\, Ctrl+]) to their control bytes.
func encodeCtrlRune(r rune) []byte {
	switch {
	case r >= 'a' && r <= 'z':
		return []byte{byte(r-'a') + 1}
	case r >= 'A' && r <= 'Z':
		return []byte{byte(r-'A') + 1}
	case r == '[':
		return []byte{0x1b}
	case r == '\\':
		return []byte{0x1c}
	case r == ']':
		return []byte{0x1d}
	default:
		return nil
	}
}

// IsRepeatable reports whether a key arms the coordinator's key-repeat
// timer (spec.md §4.5: "the last special key pressed arms a repeater").
// Printable characters are excluded; they rely on the host OS's own
// auto-repeat.
func IsRepeatable(ev KeyEvent) bool {
	return ev.Key != KeyNone
}

// EncodeMouse renders a mouse event in SGR 1006 format:
// ESC [ < button ; col+1 ; row+1 M|m.
func EncodeMouse(ev MouseEvent) []byte {
	suffix := byte('M')
	if ev.Kind == MouseRelease {
		suffix = 'm'
	}
	buf := []byte("\x1b[<")
	buf = append(buf, strconv.Itoa(int(ev.Button))...)
	buf = append(buf, ';')
	buf = append(buf, strconv.Itoa(ev.Col+1)...)
	buf = append(buf, ';')
	buf = append(buf, strconv.Itoa(ev.Row+1)...)
	buf = append(buf, suffix)
	return buf
}
