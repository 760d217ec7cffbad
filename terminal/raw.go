// Package terminal puts the controlling terminal into raw mode, decodes key
// presses from its input and paints editor frames with VT100 sequences.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdin is not a terminal.
var ErrNotTerminal = errors.New("not running in a terminal")

// Terminal handles terminal-specific operations
type Terminal struct {
	in            *os.File
	out           *os.File
	originalState *term.State
}

// Open enables raw mode on in. Reads from the returned terminal time out
// after a tenth of a second so that a lone Escape can be told apart from
// the start of an escape sequence.
func Open(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enabling terminal raw mode: %w", err)
	}
	t := &Terminal{in: in, out: out, originalState: state}

	if err := setReadTimeout(fd); err != nil {
		t.Restore()
		return nil, fmt.Errorf("setting read timeout: %w", err)
	}
	return t, nil
}

// setReadTimeout makes read(2) return after at most 100ms even when no
// byte arrived (VMIN=0, VTIME=1).
func setReadTimeout(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1
	return unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
}

// Restore the original terminal state, disabling raw mode. It is safe to
// call more than once.
func (t *Terminal) Restore() error {
	if t.originalState == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.originalState)
	t.originalState = nil // Prevent multiple restoration attempts
	return err
}

// Size returns the size of the output terminal in rows and columns.
func (t *Terminal) Size() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting window size: %w", err)
	}
	return rows, cols, nil
}

// Read reads raw input bytes. It returns 0, nil when the read timed out.
func (t *Terminal) Read(p []byte) (int, error) {
	n, err := t.in.Read(p)
	if n == 0 && err == io.EOF {
		// os.File reports the empty read of an expired VTIME as EOF.
		return 0, nil
	}
	return n, err
}

// Write writes raw output bytes.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Clear wipes the screen and homes the cursor, as done on exit.
func (t *Terminal) Clear() {
	t.out.WriteString(CLEAR_SCREEN + CURSOR_HOME)
}
