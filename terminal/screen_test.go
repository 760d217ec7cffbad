package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/hnnsb/red/editor"
	"github.com/hnnsb/red/syntax"
)

func paint(t *testing.T, s *Screen, f *Frame) (raw string, rows []string) {
	t.Helper()
	var buf bytes.Buffer
	if err := s.Refresh(&buf, f); err != nil {
		t.Fatal(err)
	}
	raw = buf.String()
	return raw, strings.Split(ansi.Strip(raw), "\r\n")
}

func TestRefresh(t *testing.T) {
	e := editor.New([]string{"int x;"}, editor.Options{Syntax: &syntax.C, ScreenRows: 3, ScreenCols: 40})
	s := NewScreen(5, 40, nil)
	f := &Frame{Lines: e.VisibleLines(), Status: e.Status(), Message: "HELP: Ctrl-Q = quit"}

	raw, rows := paint(t, s, f)

	want := []string{
		"int x;",
		"~",
		"~",
		"[No Name] - 1 lines " + strings.Repeat(" ", 13) + "c | 1/1",
		"HELP: Ctrl-Q = quit",
	}
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d: %q", len(want), len(rows), rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: Expected %q, got %q", i, want[i], rows[i])
		}
	}
	if !strings.Contains(raw, sgr(ANSI_COLOR_GREEN)+"int") {
		t.Errorf("type not coloured: %q", raw)
	}
	if !strings.HasSuffix(raw, "\x1b[1;1H"+CURSOR_SHOW) {
		t.Errorf("cursor not placed: %q", raw)
	}
}

func TestRefreshWelcome(t *testing.T) {
	s := NewScreen(8, 20, nil)
	f := &Frame{Lines: []editor.Line{{}}, Welcome: "red editor"}

	_, rows := paint(t, s, f)
	if got := rows[2]; got != "~    red editor" {
		t.Errorf("Expected welcome line, got %q", got)
	}
	if rows[1] != "~" || rows[3] != "~" {
		t.Errorf("Expected tildes around welcome, got %q", rows)
	}
}

func TestRefreshClipsWideCharacters(t *testing.T) {
	s := NewScreen(3, 3, nil)
	text := []rune("日本語")
	f := &Frame{Lines: []editor.Line{{Text: text, Classes: make([]syntax.Highlight, len(text))}}}

	_, rows := paint(t, s, f)
	if rows[0] != "日" {
		t.Errorf("Expected %q, got %q", "日", rows[0])
	}
}

func TestCursorCellCountsWideCharacters(t *testing.T) {
	s := NewScreen(5, 20, nil)
	text := []rune("日本x")
	f := &Frame{
		Lines:     []editor.Line{{Text: text, Classes: make([]syntax.Highlight, len(text))}},
		CursorCol: 2,
	}
	if got := s.cursorCell(f); got != 4 {
		t.Errorf("Expected cell 4, got %d", got)
	}
	f.CursorCol = 5
	if got := s.cursorCell(f); got != 7 {
		t.Errorf("Expected cell 7 past end of line, got %d", got)
	}
}

func TestStatusLine(t *testing.T) {
	f := &Frame{
		FileName: "a/very/long/path/to/some/file.go",
		Status:   editor.Status{Rows: 12, CursorRow: 4, Dirty: true, FileType: "go", Selecting: true},
	}
	left, right := StatusLine(f)
	if left != "a/very/long/path/to/ - 12 lines (modified) [selection]" {
		t.Errorf("got left %q", left)
	}
	if right != "go | 5/12" {
		t.Errorf("got right %q", right)
	}
}

func TestThemePalette(t *testing.T) {
	p, err := ThemePalette("")
	if err != nil || p[syntax.Keyword] != sgr(ANSI_COLOR_YELLOW) {
		t.Errorf("empty theme: %q %v", p[syntax.Keyword], err)
	}

	p, err = ThemePalette("monokai")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(p[syntax.Keyword], "38;2;") {
		t.Errorf("Expected 24-bit keyword colour, got %q", p[syntax.Keyword])
	}
	if p[syntax.Selection] != sgr(ANSI_REVERSE) {
		t.Errorf("selection overlay changed: %q", p[syntax.Selection])
	}

	if _, err := ThemePalette("no-such-theme"); err == nil {
		t.Error("Expected error for unknown theme")
	}
}
