package editor

import (
	"errors"
	"slices"
	"testing"

	"github.com/hnnsb/red/syntax"
)

func checkRowInvariants(t *testing.T, d *document) {
	t.Helper()
	if len(d.rows) == 0 {
		t.Fatal("document has no rows")
	}
	for i := range d.rows {
		r := &d.rows[i]
		if len(r.render) != len(r.hl) {
			t.Fatalf("row %d: render length %d, highlight length %d", i, len(r.render), len(r.hl))
		}
		want := syntax.StateNormal
		if i > 0 {
			want = d.rows[i-1].hlOut
		}
		if r.hlIn != want {
			t.Fatalf("row %d: lexer state in %d, previous row left %d", i, r.hlIn, want)
		}
	}
}

func TestEditorRowDeleteChar(t *testing.T) {
	d := newDocument([]string{"hello"}, nil, 0)

	pos, err := d.deleteChar(Position{0, 2}) // Delete 'e' from "hello"
	if err != nil {
		t.Fatal(err)
	}

	expected := "hllo"
	if actual := d.rowText(0); actual != expected {
		t.Errorf("Expected %q, got %q", expected, actual)
	}
	if pos != (Position{0, 1}) {
		t.Errorf("Expected cursor (0,1), got %v", pos)
	}
	if !d.dirty {
		t.Error("Expected document to be dirty")
	}
}

func TestEditorRowDeleteCharMultiple(t *testing.T) {
	d := newDocument([]string{"abc"}, nil, 0)

	d.deleteChar(Position{0, 1}) // "abc" -> "bc"
	d.deleteChar(Position{0, 1}) // "bc" -> "c"

	if actual := d.rowText(0); actual != "c" {
		t.Errorf("Expected %q, got %q", "c", actual)
	}
}

func TestDeleteCharAtDocumentStart(t *testing.T) {
	d := newDocument([]string{"abc", "def"}, nil, 0)

	pos, err := d.deleteChar(Position{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if pos != (Position{0, 0}) || d.dirty || d.rowCount() != 2 {
		t.Errorf("expected no-op, got pos %v dirty %v rows %d", pos, d.dirty, d.rowCount())
	}
}

func TestEmptyDocumentHasOneRow(t *testing.T) {
	d := newDocument(nil, nil, 0)
	if d.rowCount() != 1 || d.rowText(0) != "" {
		t.Fatalf("expected one empty row, got %q", d.lines())
	}
	checkRowInvariants(t, d)
}

func TestRenderExpandsTabsAndControls(t *testing.T) {
	d := newDocument([]string{"\tab\x01c", "x\ty"}, nil, 8)

	if got := string(d.rows[0].render); got != "        ab^Ac" {
		t.Errorf("got render %q", got)
	}
	if got := string(d.rows[1].render); got != "x       y" {
		t.Errorf("got render %q", got)
	}
	checkRowInvariants(t, d)
}

func TestColumnMapping(t *testing.T) {
	d := newDocument([]string{"\tab\x01c"}, nil, 8)
	r := &d.rows[0]

	want := []int{0, 8, 9, 10, 12, 13}
	for cx, rx := range want {
		if got := r.cxToRx(cx, 8); got != rx {
			t.Errorf("cxToRx(%d) = %d, want %d", cx, got, rx)
		}
		if got := r.rxToCx(rx, 8); got != cx {
			t.Errorf("rxToCx(%d) = %d, want %d", rx, got, cx)
		}
	}
	// Columns inside an expanded tab belong to the tab.
	if got := r.rxToCx(4, 8); got != 0 {
		t.Errorf("rxToCx(4) = %d, want 0", got)
	}
	// Columns inside ^A belong to the control character.
	if got := r.rxToCx(11, 8); got != 3 {
		t.Errorf("rxToCx(11) = %d, want 3", got)
	}
}

func TestRenderHighlightLengthInvariant(t *testing.T) {
	d := newDocument([]string{"int x = 1;", "\tchar *s = \"a\";"}, &syntax.C, 4)

	edits := []struct {
		insert bool
		pos    Position
		ch     rune
	}{
		{true, Position{0, 0}, '\t'},
		{true, Position{0, 3}, '/'},
		{true, Position{0, 4}, '*'},
		{true, Position{1, 0}, '\x1b'},
		{false, Position{1, 1}, 0},
		{false, Position{0, 4}, 0},
		{true, Position{1, 5}, '"'},
		{false, Position{1, 0}, 0},
		{false, Position{0, 1}, 0},
	}
	for i, ed := range edits {
		var err error
		if ed.insert {
			err = d.insertChar(ed.pos, ed.ch)
		} else {
			_, err = d.deleteChar(ed.pos)
		}
		if err != nil {
			t.Fatalf("edit %d: %v", i, err)
		}
		checkRowInvariants(t, d)
	}
}

func TestSplitMergeRoundTrip(t *testing.T) {
	for col := 0; col <= 6; col++ {
		d := newDocument([]string{"before", "abcdef", "after"}, &syntax.C, 0)
		if err := d.splitRow(Position{1, col}); err != nil {
			t.Fatal(err)
		}
		checkRowInvariants(t, d)
		if d.rowCount() != 4 {
			t.Fatalf("col %d: expected 4 rows, got %d", col, d.rowCount())
		}

		pos, err := d.deleteChar(Position{2, 0})
		if err != nil {
			t.Fatal(err)
		}
		checkRowInvariants(t, d)
		if got := d.lines(); !slices.Equal(got, []string{"before", "abcdef", "after"}) {
			t.Errorf("col %d: got %q", col, got)
		}
		if pos != (Position{1, col}) {
			t.Errorf("col %d: cursor %v", col, pos)
		}
	}
}

func TestPropagationStopsAtFixedPoint(t *testing.T) {
	d := newDocument([]string{"int a;", "int b;", "int c;"}, &syntax.C, 0)
	hl1 := &d.rows[1].hl[0]
	hl2 := &d.rows[2].hl[0]

	if err := d.insertChar(Position{0, 6}, '1'); err != nil {
		t.Fatal(err)
	}
	if &d.rows[1].hl[0] != hl1 || &d.rows[2].hl[0] != hl2 {
		t.Error("editing a row without a state change re-highlighted other rows")
	}
	if n := d.rehighlight(0, 0); n != 1 {
		t.Errorf("expected exactly one row highlighted, got %d", n)
	}
}

func TestPropagationAcrossRows(t *testing.T) {
	d := newDocument([]string{"int a;", "int b;", "int c;", "*/ int d;"}, &syntax.C, 0)

	d.insertChar(Position{0, 0}, '/')
	d.insertChar(Position{0, 1}, '*')
	checkRowInvariants(t, d)
	for i := 0; i < 3; i++ {
		for j, h := range d.rows[i].hl {
			if h != syntax.MultiLineComment {
				t.Fatalf("row %d col %d: expected comment, got %v", i, j, h)
			}
		}
	}
	if d.rows[3].hlOut != syntax.StateNormal || d.rows[3].hl[3] != syntax.Type {
		t.Errorf("row 3 should leave the comment: %v", d.rows[3].hl)
	}

	d.deleteChar(Position{0, 2})
	checkRowInvariants(t, d)
	if d.rows[1].hl[0] != syntax.Type {
		t.Errorf("row 1 should be code again, got %v", d.rows[1].hl[0])
	}
}

func TestMergeReseedsFollowingRow(t *testing.T) {
	d := newDocument([]string{"int a; /*", "", "comment", "*/"}, &syntax.C, 0)

	// Removing the empty row merges it into the commented first row; the
	// row after it must still start inside the comment.
	if _, err := d.deleteChar(Position{1, 0}); err != nil {
		t.Fatal(err)
	}
	checkRowInvariants(t, d)
	if d.rows[1].hlIn != syntax.StateComment {
		t.Errorf("expected comment state, got %d", d.rows[1].hlIn)
	}

	// Splitting the opener off must seed the new row from its predecessor.
	if err := d.splitRow(Position{0, 7}); err != nil {
		t.Fatal(err)
	}
	checkRowInvariants(t, d)
	if d.rows[1].hlIn != syntax.StateNormal || d.rows[1].hlOut != syntax.StateComment {
		t.Errorf("new row states: in %d out %d", d.rows[1].hlIn, d.rows[1].hlOut)
	}
}

func TestOutOfRangeIsRefused(t *testing.T) {
	d := newDocument([]string{"abc"}, nil, 0)

	cases := []Position{{1, 0}, {-1, 0}, {0, 4}, {0, -1}}
	for _, p := range cases {
		if err := d.insertChar(p, 'x'); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("insertChar(%v): expected ErrOutOfRange, got %v", p, err)
		}
		if err := d.splitRow(p); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("splitRow(%v): expected ErrOutOfRange, got %v", p, err)
		}
		if _, err := d.deleteChar(p); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("deleteChar(%v): expected ErrOutOfRange, got %v", p, err)
		}
	}
	if d.dirty || d.rowText(0) != "abc" {
		t.Errorf("refused operations changed the document: %q dirty=%v", d.rowText(0), d.dirty)
	}
}

func TestInsertText(t *testing.T) {
	d := newDocument([]string{"hello world"}, nil, 0)

	end, err := d.insertText(Position{0, 5}, ",\r\nbig\nwide")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"hello,", "big", "wide world"}
	if got := d.lines(); !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if end != (Position{2, 4}) {
		t.Errorf("got end %v", end)
	}
	checkRowInvariants(t, d)
}

func TestDeleteRange(t *testing.T) {
	d := newDocument([]string{"one", "two", "three"}, nil, 0)

	if err := d.deleteRange(Position{2, 2}, Position{0, 1}); err != nil {
		t.Fatal(err)
	}
	if got := d.lines(); !slices.Equal(got, []string{"oree"}) {
		t.Errorf("got %q", got)
	}
	checkRowInvariants(t, d)
}

func TestTextBetween(t *testing.T) {
	d := newDocument([]string{"one", "two", "three"}, nil, 0)

	cases := []struct {
		start, end Position
		want       string
	}{
		{Position{0, 0}, Position{0, 3}, "one"},
		{Position{0, 1}, Position{2, 2}, "ne\ntwo\nth"},
		{Position{1, 3}, Position{2, 0}, "\n"},
		{Position{1, 1}, Position{1, 1}, ""},
	}
	for _, tc := range cases {
		if got := d.textBetween(tc.start, tc.end); got != tc.want {
			t.Errorf("textBetween(%v, %v) = %q, want %q", tc.start, tc.end, got, tc.want)
		}
	}
}
