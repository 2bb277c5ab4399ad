package main

import (
	"bufio"
	"unicode/utf8"

	"github.com/fernlabs/termcore/input"
)

// readKeyEvent decodes one key press from the raw host terminal into the
// structured input.KeyEvent the coordinator expects. This stands in for
// the keyboard events a GUI host would deliver directly (spec.md §9's
// event enum); a CLI host has to recover them from a raw byte stream
// instead.
func readKeyEvent(r *bufio.Reader) (input.KeyEvent, error) {
	b, err := r.ReadByte()
	if err != nil {
		return input.KeyEvent{}, err
	}

	switch {
	case b == 0x1b:
		return readEscapeSequence(r)
	case b == '\r' || b == '\n':
		return input.KeyEvent{Key: input.KeyReturn}, nil
	case b == 0x7f:
		return input.KeyEvent{Key: input.KeyBackspace}, nil
	case b == 0x09:
		return input.KeyEvent{Key: input.KeyTab}, nil
	case b > 0 && b < 0x1a:
		return input.KeyEvent{Rune: rune('a' + b - 1), Mod: input.ModCtrl}, nil
	case b < 0x80:
		return input.KeyEvent{Rune: rune(b)}, nil
	default:
		return readUTF8Rune(r, b)
	}
}

// readEscapeSequence peeks for a recognized CSI final after an ESC byte.
// If nothing recognizable follows within the buffered bytes, ESC alone
// is reported (spec.md §4.5: "Escape -> ESC").
func readEscapeSequence(r *bufio.Reader) (input.KeyEvent, error) {
	if r.Buffered() == 0 {
		return input.KeyEvent{Key: input.KeyEscape}, nil
	}
	peeked, err := r.Peek(1)
	if err != nil || len(peeked) == 0 || peeked[0] != '[' {
		return input.KeyEvent{Key: input.KeyEscape}, nil
	}
	r.Discard(1)

	b, err := r.ReadByte()
	if err != nil {
		return input.KeyEvent{Key: input.KeyEscape}, nil
	}

	switch b {
	case 'A':
		return input.KeyEvent{Key: input.KeyUp}, nil
	case 'B':
		return input.KeyEvent{Key: input.KeyDown}, nil
	case 'C':
		return input.KeyEvent{Key: input.KeyRight}, nil
	case 'D':
		return input.KeyEvent{Key: input.KeyLeft}, nil
	case 'H':
		return input.KeyEvent{Key: input.KeyHome}, nil
	case 'F':
		return input.KeyEvent{Key: input.KeyEnd}, nil
	case '2', '3', '5', '6':
		tilde, err := r.ReadByte()
		if err != nil || tilde != '~' {
			return input.KeyEvent{Key: input.KeyEscape}, nil
		}
		switch b {
		case '2':
			return input.KeyEvent{Key: input.KeyInsert}, nil
		case '3':
			return input.KeyEvent{Key: input.KeyDelete}, nil
		case '5':
			return input.KeyEvent{Key: input.KeyPageUp}, nil
		case '6':
			return input.KeyEvent{Key: input.KeyPageDown}, nil
		}
	}
	return input.KeyEvent{Key: input.KeyEscape}, nil
}

func readUTF8Rune(r *bufio.Reader, first byte) (input.KeyEvent, error) {
	n := utf8RuneLen(first)
	buf := make([]byte, n)
	buf[0] = first
	for i := 1; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return input.KeyEvent{}, err
		}
		buf[i] = b
	}
	ch, _ := utf8.DecodeRune(buf)
	return input.KeyEvent{Rune: ch}, nil
}

func utf8RuneLen(first byte) int {
	switch {
	case first&0xE0 == 0xC0:
		return 2
	case first&0xF0 == 0xE0:
		return 3
	case first&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}
