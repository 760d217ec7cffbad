package editor

import "github.com/rs/zerolog/log"

type selection struct {
	anchor, active Position
}

// bounds returns the selection in document order.
func (s *selection) bounds() (start, end Position) {
	start, end = s.anchor, s.active
	if end.Less(start) {
		start, end = end, start
	}
	return start, end
}

func (e *Engine) beginSelection() {
	e.sel = &selection{anchor: e.cursor, active: e.cursor}
}

func (e *Engine) extendSelection() {
	if e.sel != nil {
		e.sel.active = e.cursor
	}
}

// Selecting reports whether a selection is active.
func (e *Engine) Selecting() bool { return e.sel != nil }

// SelectedText returns the selected text with rows joined by newlines, or
// the empty string when nothing is selected.
func (e *Engine) SelectedText() string {
	if e.sel == nil {
		return ""
	}
	start, end := e.sel.bounds()
	return e.doc.textBetween(start, end)
}

// copySelection stores the selected text in the clipboard register. Without
// an active selection the register is left alone.
func (e *Engine) copySelection() bool {
	if e.sel == nil {
		return false
	}
	e.clipboard = e.SelectedText()
	if e.opts.ClipboardMirror != nil {
		if err := e.opts.ClipboardMirror(e.clipboard); err != nil {
			log.Warn().Err(err).Msg("failed to mirror clipboard")
		}
	}
	return true
}

func (e *Engine) cut() error {
	if !e.copySelection() {
		return nil
	}
	start, end := e.sel.bounds()
	if err := e.doc.deleteRange(start, end); err != nil {
		return e.fault("cut", err)
	}
	e.sel = nil
	e.cursor = start
	e.scrollToFit()
	return nil
}

func (e *Engine) paste() error {
	if e.clipboard == "" {
		return nil
	}
	pos, err := e.doc.insertText(e.cursor, e.clipboard)
	if err != nil {
		return e.fault("paste", err)
	}
	e.sel = nil
	e.cursor = pos
	e.scrollToFit()
	return nil
}
