package editor

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hnnsb/red/syntax"
)

// ErrOutOfRange is returned when a position does not address the document.
// Callers validate positions before they reach the document, so this always
// indicates a bug in the caller.
var ErrOutOfRange = errors.New("position out of range")

// DefaultTabStop is the render width of a tab stop.
const DefaultTabStop = 8

// Position is a logical (row, column) location in the document. Columns
// count runes of the raw row text.
type Position struct {
	Row, Col int
}

// Less reports whether p comes before q in document order.
func (p Position) Less(q Position) bool {
	return p.Row < q.Row || (p.Row == q.Row && p.Col < q.Col)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func isControl(r rune) bool {
	return r < 32 || r == 127
}

type row struct {
	chars  []rune
	render []rune
	hl     []syntax.Highlight
	hlIn   syntax.State
	hlOut  syntax.State
}

// Convert cursor X to render X, since rendered characters may differ from original characters (e.g., tabs)
func (r *row) cxToRx(cx, tabStop int) int {
	rx := 0
	for _, c := range r.chars[:cx] {
		rx += runeWidth(c, rx, tabStop)
	}
	return rx
}

func (r *row) rxToCx(rx, tabStop int) int {
	curRx := 0
	for cx, c := range r.chars {
		curRx += runeWidth(c, curRx, tabStop)
		if curRx > rx {
			return cx
		}
	}
	return len(r.chars)
}

// runeWidth returns how many render columns c occupies when it starts at
// render column rx.
func runeWidth(c rune, rx, tabStop int) int {
	switch {
	case c == '\t':
		return tabStop - (rx % tabStop)
	case isControl(c):
		return 2 // ^C representation
	default:
		return 1
	}
}

// updateRender rebuilds the render form of the row from its raw characters.
func (r *row) updateRender(tabStop int) {
	render := make([]rune, 0, len(r.chars))
	for _, c := range r.chars {
		switch {
		case c == '\t':
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		case isControl(c):
			render = append(render, '^')
			if c == 127 {
				render = append(render, '?')
			} else {
				render = append(render, c+'@')
			}
		default:
			render = append(render, c)
		}
	}
	r.render = render
}

type document struct {
	rows    []row
	dirty   bool
	syntax  *syntax.Syntax
	tabStop int
}

func newDocument(lines []string, syn *syntax.Syntax, tabStop int) *document {
	if tabStop <= 0 {
		tabStop = DefaultTabStop
	}
	d := &document{syntax: syn, tabStop: tabStop}
	if len(lines) == 0 {
		lines = []string{""}
	}
	d.rows = make([]row, len(lines))
	for i, line := range lines {
		d.rows[i].chars = []rune(line)
		d.rows[i].updateRender(tabStop)
	}
	d.rehighlight(0, len(d.rows)-1)
	return d
}

func (d *document) rowCount() int {
	return len(d.rows)
}

func (d *document) rowText(i int) string {
	return string(d.rows[i].chars)
}

func (d *document) rowLen(i int) int {
	return len(d.rows[i].chars)
}

func (d *document) lines() []string {
	out := make([]string, len(d.rows))
	for i := range d.rows {
		out[i] = string(d.rows[i].chars)
	}
	return out
}

func (d *document) validate(p Position) error {
	if p.Row < 0 || p.Row >= len(d.rows) || p.Col < 0 || p.Col > len(d.rows[p.Row].chars) {
		return fmt.Errorf("%w: %v", ErrOutOfRange, p)
	}
	return nil
}

// rehighlight re-runs the highlighter over rows from..through, then keeps
// going while the following row was seeded with a stale lexer state. It
// returns the number of rows highlighted.
func (d *document) rehighlight(from, through int) int {
	n := 0
	for i := from; i < len(d.rows); i++ {
		r := &d.rows[i]
		in := syntax.StateNormal
		if i > 0 {
			in = d.rows[i-1].hlOut
		}
		if i > through && r.hlIn == in {
			break
		}
		r.hlIn = in
		r.hl, r.hlOut = syntax.HighlightRow(d.syntax, r.render, in)
		n++
	}
	return n
}

func (d *document) setSyntax(s *syntax.Syntax) {
	d.syntax = s
	d.rehighlight(0, len(d.rows)-1)
}

func (d *document) updateRow(i int) {
	d.rows[i].updateRender(d.tabStop)
	d.dirty = true
}

// insertChar inserts ch before column p.Col of row p.Row.
func (d *document) insertChar(p Position, ch rune) error {
	if err := d.validate(p); err != nil {
		return err
	}
	r := &d.rows[p.Row]
	r.chars = slices.Insert(r.chars, p.Col, ch)
	d.updateRow(p.Row)
	d.rehighlight(p.Row, p.Row)
	return nil
}

// deleteChar removes the character before p. At the start of a row the row
// is merged into the previous one. It returns where the cursor belongs
// afterwards; at the start of the document nothing changes.
func (d *document) deleteChar(p Position) (Position, error) {
	if err := d.validate(p); err != nil {
		return p, err
	}
	if p.Col > 0 {
		r := &d.rows[p.Row]
		r.chars = slices.Delete(r.chars, p.Col-1, p.Col)
		d.updateRow(p.Row)
		d.rehighlight(p.Row, p.Row)
		return Position{p.Row, p.Col - 1}, nil
	}
	if p.Row == 0 {
		return p, nil
	}
	prev := &d.rows[p.Row-1]
	at := len(prev.chars)
	prev.chars = append(prev.chars, d.rows[p.Row].chars...)
	d.updateRow(p.Row - 1)
	d.rows = slices.Delete(d.rows, p.Row, p.Row+1)
	d.rehighlight(p.Row-1, p.Row-1)
	return Position{p.Row - 1, at}, nil
}

// splitRow moves everything from p.Col onwards into a new row below.
func (d *document) splitRow(p Position) error {
	if err := d.validate(p); err != nil {
		return err
	}
	r := &d.rows[p.Row]
	tail := row{chars: slices.Clone(r.chars[p.Col:])}
	r.chars = r.chars[:p.Col:p.Col]
	d.updateRow(p.Row)
	tail.updateRender(d.tabStop)
	d.rows = slices.Insert(d.rows, p.Row+1, tail)
	d.rehighlight(p.Row, p.Row+1)
	return nil
}

// deleteRange removes the text between start (inclusive) and end
// (exclusive), joining the first and last rows.
func (d *document) deleteRange(start, end Position) error {
	if err := d.validate(start); err != nil {
		return err
	}
	if err := d.validate(end); err != nil {
		return err
	}
	if end.Less(start) {
		start, end = end, start
	}
	if start == end {
		return nil
	}
	first := &d.rows[start.Row]
	joined := slices.Clone(first.chars[:start.Col])
	joined = append(joined, d.rows[end.Row].chars[end.Col:]...)
	first.chars = joined
	d.updateRow(start.Row)
	d.rows = slices.Delete(d.rows, start.Row+1, end.Row+1)
	d.rehighlight(start.Row, start.Row)
	return nil
}

// insertText inserts s at p, splitting it into rows at every newline.
// Carriage returns are dropped. It returns the position just after the
// inserted text.
func (d *document) insertText(p Position, s string) (Position, error) {
	if err := d.validate(p); err != nil {
		return p, err
	}
	s = strings.ReplaceAll(s, "\r", "")
	if s == "" {
		return p, nil
	}
	parts := strings.Split(s, "\n")
	r := &d.rows[p.Row]
	tail := slices.Clone(r.chars[p.Col:])

	head := slices.Clone(r.chars[:p.Col])
	r.chars = append(head, []rune(parts[0])...)

	if len(parts) == 1 {
		end := Position{p.Row, len(r.chars)}
		r.chars = append(r.chars, tail...)
		d.updateRow(p.Row)
		d.rehighlight(p.Row, p.Row)
		return end, nil
	}
	d.updateRow(p.Row)

	added := make([]row, 0, len(parts)-1)
	for _, part := range parts[1:] {
		added = append(added, row{chars: []rune(part)})
	}
	last := &added[len(added)-1]
	end := Position{p.Row + len(added), len(last.chars)}
	last.chars = append(last.chars, tail...)
	for i := range added {
		added[i].updateRender(d.tabStop)
	}
	d.rows = slices.Insert(d.rows, p.Row+1, added...)
	d.rehighlight(p.Row, end.Row)
	return end, nil
}

// textBetween returns the text from start to end, rows joined by newlines.
func (d *document) textBetween(start, end Position) string {
	if end.Less(start) {
		start, end = end, start
	}
	if start.Row == end.Row {
		return string(d.rows[start.Row].chars[start.Col:end.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(d.rows[start.Row].chars[start.Col:]))
	for i := start.Row + 1; i < end.Row; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(d.rows[i].chars))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(d.rows[end.Row].chars[:end.Col]))
	return sb.String()
}
