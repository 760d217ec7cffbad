// Package editor is the text editing engine: the document, cursor and
// viewport geometry, selection and clipboard, and incremental search. The
// engine applies one logical command at a time and is not safe for
// concurrent use.
package editor

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hnnsb/red/syntax"
)

// ErrNoSaver is returned by RequestSave when no Saver was configured.
var ErrNoSaver = errors.New("no saver configured")

// Saver writes the document lines somewhere durable and reports the number
// of bytes written.
type Saver interface {
	Save(lines []string) (int, error)
}

// Options configure a new Engine.
type Options struct {
	Syntax     *syntax.Syntax
	TabStop    int
	IgnoreCase bool
	ScreenRows int
	ScreenCols int
	Saver      Saver

	// ClipboardMirror, when set, receives every value copied into the
	// clipboard register. Errors are logged and otherwise ignored.
	ClipboardMirror func(string) error
}

// Engine owns the document and all editing state.
type Engine struct {
	doc       *document
	cursor    Position
	rx        int
	vp        Viewport
	sel       *selection
	search    *searchState
	clipboard string
	opts      Options
}

// New builds an engine over lines, one per row, and highlights the whole
// document once.
func New(lines []string, opts Options) *Engine {
	e := &Engine{
		doc:  newDocument(lines, opts.Syntax, opts.TabStop),
		opts: opts,
	}
	e.vp.ScreenRows = max(opts.ScreenRows, 1)
	e.vp.ScreenCols = max(opts.ScreenCols, 1)
	log.Debug().Int("rows", e.doc.rowCount()).Msg("document loaded")
	return e
}

// Apply applies cmd to the engine. The returned error is non-nil only when a
// save failed or the command was refused because of an internal fault; in
// both cases the document is left consistent.
func (e *Engine) Apply(cmd Command) error {
	if e.search != nil && !cmd.Kind.isSearch() {
		log.Debug().Stringer("command", cmd.Kind).Msg("ignored while searching")
		return nil
	}

	switch cmd.Kind {
	case InsertChar:
		return e.insertChar(cmd.Char)
	case NewLine:
		return e.newLine()
	case DeleteBackward:
		return e.deleteBackward()
	case DeleteForward:
		return e.deleteForward()
	case MoveCursor:
		e.move(cmd.Dir)
	case PageMove:
		e.page(cmd.Dir)
	case BeginSelection:
		e.beginSelection()
	case Deselect:
		e.sel = nil
	case Copy:
		e.copySelection()
	case Cut:
		return e.cut()
	case Paste:
		return e.paste()
	case EnterSearch:
		e.enterSearch()
	case SearchTypeChar:
		e.searchTypeChar(cmd.Char)
	case SearchBackspace:
		e.searchBackspace()
	case SearchNext:
		e.searchStep(Forward)
	case SearchPrev:
		e.searchStep(Backward)
	case SearchConfirm:
		e.confirmSearch()
	case SearchCancel:
		e.cancelSearch()
	case RequestSave:
		return e.save()
	default:
		log.Warn().Int("kind", int(cmd.Kind)).Msg("unknown command")
	}
	return nil
}

// fault logs a refused command. The document has not been touched.
func (e *Engine) fault(op string, err error) error {
	log.Error().Err(err).Str("op", op).Stringer("cursor", e.cursor).Msg("command refused")
	return fmt.Errorf("%s: %w", op, err)
}

/*** editor operations ***/

func (e *Engine) insertChar(ch rune) error {
	if ch == '\n' || ch == '\r' {
		return e.newLine()
	}
	if err := e.doc.insertChar(e.cursor, ch); err != nil {
		return e.fault("insert char", err)
	}
	e.sel = nil
	e.cursor.Col++
	e.scrollToFit()
	return nil
}

func (e *Engine) newLine() error {
	if err := e.doc.splitRow(e.cursor); err != nil {
		return e.fault("new line", err)
	}
	e.sel = nil
	e.cursor = Position{e.cursor.Row + 1, 0}
	e.scrollToFit()
	return nil
}

func (e *Engine) deleteBackward() error {
	if e.cursor == (Position{}) {
		return nil
	}
	pos, err := e.doc.deleteChar(e.cursor)
	if err != nil {
		return e.fault("delete backward", err)
	}
	e.sel = nil
	e.cursor = pos
	e.scrollToFit()
	return nil
}

func (e *Engine) deleteForward() error {
	target := Position{e.cursor.Row, e.cursor.Col + 1}
	if e.cursor.Col == e.doc.rowLen(e.cursor.Row) {
		if e.cursor.Row == e.doc.rowCount()-1 {
			return nil
		}
		target = Position{e.cursor.Row + 1, 0}
	}
	if _, err := e.doc.deleteChar(target); err != nil {
		return e.fault("delete forward", err)
	}
	e.sel = nil
	e.scrollToFit()
	return nil
}

func (e *Engine) save() error {
	if e.opts.Saver == nil {
		return ErrNoSaver
	}
	n, err := e.opts.Saver.Save(e.doc.lines())
	if err != nil {
		log.Warn().Err(err).Msg("save failed")
		return fmt.Errorf("save: %w", err)
	}
	e.doc.dirty = false
	log.Info().Int("bytes", n).Int("rows", e.doc.rowCount()).Msg("document saved")
	return nil
}

/*** accessors ***/

// Dirty reports whether the document changed since it was loaded or last
// saved.
func (e *Engine) Dirty() bool { return e.doc.dirty }

// RowCount returns the number of rows in the document.
func (e *Engine) RowCount() int { return e.doc.rowCount() }

// RowText returns the raw text of row i.
func (e *Engine) RowText(i int) string { return e.doc.rowText(i) }

// Lines returns the raw text of every row.
func (e *Engine) Lines() []string { return e.doc.lines() }

// Cursor returns the logical cursor position.
func (e *Engine) Cursor() Position { return e.cursor }

// Viewport returns the current viewport.
func (e *Engine) Viewport() Viewport { return e.vp }

// Clipboard returns the clipboard register.
func (e *Engine) Clipboard() string { return e.clipboard }

// Syntax returns the active syntax, or nil.
func (e *Engine) Syntax() *syntax.Syntax { return e.doc.syntax }

// SetSyntax switches the syntax and re-highlights the whole document.
func (e *Engine) SetSyntax(s *syntax.Syntax) {
	e.doc.setSyntax(s)
}

// Resize updates the screen dimensions available to the document.
func (e *Engine) Resize(rows, cols int) {
	e.vp.ScreenRows = max(rows, 1)
	e.vp.ScreenCols = max(cols, 1)
	e.scrollToFit()
}
