package editor

import (
	"slices"

	"github.com/hnnsb/red/syntax"
)

// Line is the visible part of one document row: render text and the
// highlight class of every rune. Lines are copies; they stay valid after
// the next command.
type Line struct {
	Text    []rune
	Classes []syntax.Highlight
}

// Status summarises the engine state for a status bar.
type Status struct {
	Rows      int
	CursorRow int
	Dirty     bool
	FileType  string
	Searching bool
	Query     string
	Selecting bool
}

// Status returns the current status summary.
func (e *Engine) Status() Status {
	st := Status{
		Rows:      e.doc.rowCount(),
		CursorRow: e.cursor.Row,
		Dirty:     e.doc.dirty,
		Searching: e.search != nil,
		Query:     e.SearchQuery(),
		Selecting: e.sel != nil,
	}
	if e.doc.syntax != nil {
		st.FileType = e.doc.syntax.Name
	}
	return st
}

// CursorScreen returns the cursor position relative to the top-left corner
// of the viewport.
func (e *Engine) CursorScreen() (row, col int) {
	return e.cursor.Row - e.vp.RowOffset, e.rx - e.vp.ColOffset
}

// VisibleLines returns one Line per screen row that shows a document row,
// clipped to the viewport columns. The selection and the current search
// match are overlaid on the lexical highlight.
func (e *Engine) VisibleLines() []Line {
	first := e.vp.RowOffset
	last := min(first+e.vp.ScreenRows, e.doc.rowCount())
	if first >= last {
		return nil
	}

	matchRow, matchFrom, matchTo, hasMatch := e.matchSpan()
	var selStart, selEnd Position
	if e.sel != nil {
		selStart, selEnd = e.sel.bounds()
	}

	lines := make([]Line, 0, last-first)
	for i := first; i < last; i++ {
		r := &e.doc.rows[i]
		classes := slices.Clone(r.hl)

		if e.sel != nil && i >= selStart.Row && i <= selEnd.Row {
			from, to := 0, len(r.render)
			if i == selStart.Row {
				from = r.cxToRx(selStart.Col, e.doc.tabStop)
			}
			if i == selEnd.Row {
				to = r.cxToRx(selEnd.Col, e.doc.tabStop)
			}
			overlay(classes, from, to, syntax.Selection)
		}
		if hasMatch && i == matchRow {
			overlay(classes, matchFrom, matchTo, syntax.Match)
		}

		start := min(e.vp.ColOffset, len(r.render))
		end := min(e.vp.ColOffset+e.vp.ScreenCols, len(r.render))
		lines = append(lines, Line{
			Text:    slices.Clone(r.render[start:end]),
			Classes: classes[start:end:end],
		})
	}
	return lines
}

func overlay(classes []syntax.Highlight, from, to int, class syntax.Highlight) {
	for j := max(from, 0); j < min(to, len(classes)); j++ {
		classes[j] = class
	}
}
