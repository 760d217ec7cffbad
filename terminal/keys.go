package terminal

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Key is a decoded key press: a Unicode code point, a control character, or
// one of the special key values below.
type Key rune

// Key aliases
const (
	BACKSPACE Key = 127 // ASCII DEL, sent by the backspace key
	ESCAPE    Key = '\x1b'
	ENTER     Key = '\r'
)

// Special keys are numbered above the Unicode range.
const (
	ARROW_LEFT Key = iota + utf8.MaxRune + 1
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
	META_KEY    // Alt combined with another key
	UNKNOWN_KEY // escape sequence that maps to no key
)

// WithControlKey returns the key produced by holding Ctrl with c.
func WithControlKey(c rune) Key {
	return Key(c & 0x1f)
}

// IsControl reports whether k is an ASCII control character.
func (k Key) IsControl() bool {
	return k < 32 || k == 127
}

// IsSpecial reports whether k is one of the named non-character keys.
func (k Key) IsSpecial() bool {
	return k > utf8.MaxRune
}

var keyNames = map[Key]string{
	ARROW_LEFT:  "Left",
	ARROW_RIGHT: "Right",
	ARROW_UP:    "Up",
	ARROW_DOWN:  "Down",
	DELETE_KEY:  "Delete",
	HOME_KEY:    "Home",
	END_KEY:     "End",
	PAGE_UP:     "PageUp",
	PAGE_DOWN:   "PageDown",
	META_KEY:    "Meta",
	UNKNOWN_KEY: "Unknown",
	BACKSPACE:   "Backspace",
	ESCAPE:      "Esc",
	ENTER:       "Enter",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k.IsControl() {
		return fmt.Sprintf("Ctrl-%c", rune(k)+'@')
	}
	return string(rune(k))
}

// ErrNoInput is returned by ReadKey when the read timed out before any key
// arrived.
var ErrNoInput = errors.New("no input")

// ErrInvalidUTF8 is returned for input bytes that do not form a character.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// KeyReader decodes key presses from raw terminal input. The input may
// return 0, nil on a read timeout; a timeout in the middle of an escape
// sequence ends it.
type KeyReader struct {
	in      io.Reader
	pending []byte
	chunk   [64]byte
}

// NewKeyReader returns a KeyReader over in.
func NewKeyReader(in io.Reader) *KeyReader {
	return &KeyReader{in: in}
}

// fill reads once from the input. It reports whether new bytes arrived.
func (kr *KeyReader) fill() (bool, error) {
	n, err := kr.in.Read(kr.chunk[:])
	kr.pending = append(kr.pending, kr.chunk[:n]...)
	return n > 0, err
}

// next returns the next byte, reading at most once when none is pending.
func (kr *KeyReader) next() (byte, bool) {
	if len(kr.pending) == 0 {
		if ok, _ := kr.fill(); !ok {
			return 0, false
		}
	}
	c := kr.pending[0]
	kr.pending = kr.pending[1:]
	return c, true
}

// ReadKey returns the next key press.
func (kr *KeyReader) ReadKey() (Key, error) {
	if len(kr.pending) == 0 {
		ok, err := kr.fill()
		if !ok {
			if err != nil {
				return 0, fmt.Errorf("reading keyboard input: %w", err)
			}
			return 0, ErrNoInput
		}
	}

	c := kr.pending[0]
	switch {
	case c == '\x1b':
		kr.pending = kr.pending[1:]
		return kr.readEscape(), nil
	case c < utf8.RuneSelf:
		kr.pending = kr.pending[1:]
		return Key(c), nil
	}
	return kr.readRune()
}

func (kr *KeyReader) readRune() (Key, error) {
	for !utf8.FullRune(kr.pending) {
		if ok, _ := kr.fill(); !ok {
			break
		}
	}
	r, size := utf8.DecodeRune(kr.pending)
	kr.pending = kr.pending[size:]
	if r == utf8.RuneError && size <= 1 {
		return 0, ErrInvalidUTF8
	}
	return Key(r), nil
}

// readEscape decodes what follows an Escape byte.
func (kr *KeyReader) readEscape() Key {
	c, ok := kr.next()
	if !ok {
		return ESCAPE
	}

	switch c {
	case '[':
		return kr.readCSI()
	case 'O':
		c, ok := kr.next()
		if !ok {
			return META_KEY
		}
		if k, ok := finalKey(c); ok {
			return k
		}
		return UNKNOWN_KEY
	}
	if Key(c).IsControl() {
		// Escape followed by another control key, such as a second
		// Escape; keep that key for the next read.
		kr.pending = append([]byte{c}, kr.pending...)
		return ESCAPE
	}

	// Alt+key: swallow the rest of the character.
	if c >= utf8.RuneSelf {
		kr.pending = append([]byte{c}, kr.pending...)
		kr.readRune()
	}
	return META_KEY
}

// readCSI decodes a control sequence after "ESC [": parameter bytes then a
// final byte. Modifier parameters ("1;5C") are ignored.
func (kr *KeyReader) readCSI() Key {
	var first int
	firstDone := false
	for {
		c, ok := kr.next()
		if !ok {
			return UNKNOWN_KEY
		}
		switch {
		case c >= '0' && c <= '9':
			if !firstDone {
				first = first*10 + int(c-'0')
			}
		case c == ';':
			firstDone = true
		case c == '~':
			switch first {
			case 1, 7:
				return HOME_KEY
			case 3:
				return DELETE_KEY
			case 4, 8:
				return END_KEY
			case 5:
				return PAGE_UP
			case 6:
				return PAGE_DOWN
			}
			return UNKNOWN_KEY
		case c >= 0x40 && c <= 0x7e:
			if k, ok := finalKey(c); ok {
				return k
			}
			return UNKNOWN_KEY
		}
	}
}

func finalKey(c byte) (Key, bool) {
	switch c {
	case 'A':
		return ARROW_UP, true
	case 'B':
		return ARROW_DOWN, true
	case 'C':
		return ARROW_RIGHT, true
	case 'D':
		return ARROW_LEFT, true
	case 'H':
		return HOME_KEY, true
	case 'F':
		return END_KEY, true
	}
	return 0, false
}
