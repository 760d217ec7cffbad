package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/hnnsb/red/editor"
	"github.com/hnnsb/red/syntax"
)

// Frame is everything painted in one refresh.
type Frame struct {
	Lines    []editor.Line // visible document rows, already clipped
	Status   editor.Status
	FileName string
	Message  string // message bar text; empty hides it
	Welcome  string // shown on an empty, unnamed document

	// Cursor position relative to the text area, in render columns.
	CursorRow, CursorCol int
}

// Screen paints frames onto a terminal of a fixed size.
type Screen struct {
	rows, cols int // whole terminal
	palette    Palette
}

// NewScreen returns a screen of the given terminal size.
func NewScreen(rows, cols int, palette Palette) *Screen {
	if palette == nil {
		palette = DefaultPalette()
	}
	s := &Screen{palette: palette}
	s.Resize(rows, cols)
	return s
}

// Resize changes the terminal size.
func (s *Screen) Resize(rows, cols int) {
	s.rows = max(rows, 3)
	s.cols = max(cols, 1)
}

// TextRows returns the number of rows left for text after the status and
// message bars.
func (s *Screen) TextRows() int {
	return s.rows - 2 // Adjust for status bar and message bar
}

// TextCols returns the width of the text area.
func (s *Screen) TextCols() int {
	return s.cols
}

type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s string) {
	ab.b = append(ab.b, s...)
}

// Refresh paints f to w in a single write.
func (s *Screen) Refresh(w io.Writer, f *Frame) error {
	var abuf appendBuffer

	abuf.append(CURSOR_HIDE)
	abuf.append(CURSOR_HOME) // Move cursor to the top-left corner

	s.drawRows(&abuf, f)
	s.drawStatusBar(&abuf, f)
	s.drawMessageBar(&abuf, f)

	abuf.append(fmt.Sprintf(CURSOR_POSITION_FORMAT, f.CursorRow+1, s.cursorCell(f)+1))
	abuf.append(CURSOR_SHOW)

	_, err := w.Write(abuf.b)
	return err
}

// cursorCell converts the cursor's render column into a screen cell, since
// wide characters take two cells.
func (s *Screen) cursorCell(f *Frame) int {
	if f.CursorRow < 0 || f.CursorRow >= len(f.Lines) {
		return max(f.CursorCol, 0)
	}
	text := f.Lines[f.CursorRow].Text
	n := min(max(f.CursorCol, 0), len(text))
	return runewidth.StringWidth(string(text[:n])) + max(f.CursorCol-n, 0)
}

func (s *Screen) drawRows(abuf *appendBuffer, f *Frame) {
	textRows := s.TextRows()
	for y := range textRows {
		if y < len(f.Lines) {
			s.drawLine(abuf, f.Lines[y])
		} else if f.Welcome != "" && y == textRows/3 {
			welcome := ansi.Truncate(f.Welcome, s.cols, "")
			padding := (s.cols - ansi.StringWidth(welcome)) / 2
			if padding > 0 {
				abuf.append("~")
				padding--
			}
			abuf.append(strings.Repeat(" ", padding))
			abuf.append(welcome)
		} else {
			abuf.append("~")
		}

		abuf.append(CLEAR_LINE) // Clear line
		abuf.append("\r\n")
	}
}

// drawLine paints one row, switching colours only where the class changes.
func (s *Screen) drawLine(abuf *appendBuffer, line editor.Line) {
	current := syntax.Normal
	width := 0
	for j, c := range line.Text {
		cw := runewidth.RuneWidth(c)
		if width+cw > s.cols {
			break
		}
		width += cw

		h := line.Classes[j]
		if h != current {
			abuf.append(COLORS_RESET)
			abuf.append(s.palette[h])
			current = h
		}
		abuf.append(string(c))
	}
	// Reset all formatting at end of line
	if current != syntax.Normal {
		abuf.append(COLORS_RESET)
	}
}

// StatusLine returns the left and right parts of the status bar.
func StatusLine(f *Frame) (left, right string) {
	filename := "[No Name]"
	if f.FileName != "" {
		filename = f.FileName
	}
	dirtyFlag := ""
	if f.Status.Dirty {
		dirtyFlag = "(modified)"
	}
	left = fmt.Sprintf("%.20s - %d lines %s", filename, f.Status.Rows, dirtyFlag)
	if f.Status.Selecting {
		left += " [selection]"
	}

	filetype := "no ft"
	if f.Status.FileType != "" {
		filetype = f.Status.FileType
	}
	right = fmt.Sprintf("%s | %d/%d", filetype, f.Status.CursorRow+1, f.Status.Rows)
	return left, right
}

func (s *Screen) drawStatusBar(abuf *appendBuffer, f *Frame) {
	abuf.append(COLORS_INVERT) // Invert colors for status bar

	left, right := StatusLine(f)
	left = ansi.Truncate(left, s.cols, "")
	abuf.append(left)

	statusLen := ansi.StringWidth(left)
	rstatusLen := ansi.StringWidth(right)
	for statusLen < s.cols {
		if s.cols-statusLen == rstatusLen {
			abuf.append(right)
			break
		}
		abuf.append(" ")
		statusLen++
	}

	abuf.append(COLORS_RESET)
	abuf.append("\r\n")
}

func (s *Screen) drawMessageBar(abuf *appendBuffer, f *Frame) {
	abuf.append(CLEAR_LINE)
	abuf.append(ansi.Truncate(f.Message, s.cols, ""))
}
