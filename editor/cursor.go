package editor

// Viewport is the visible window into the document. Offsets are in rows and
// render columns.
type Viewport struct {
	RowOffset  int
	ColOffset  int
	ScreenRows int
	ScreenCols int
}

// ColToRenderCol maps a logical column of row i to its render column.
// Out-of-range arguments are clamped.
func (e *Engine) ColToRenderCol(i, col int) int {
	i = clamp(i, 0, e.doc.rowCount()-1)
	r := &e.doc.rows[i]
	return r.cxToRx(clamp(col, 0, len(r.chars)), e.doc.tabStop)
}

// RenderColToCol maps a render column of row i back to the logical column
// whose character covers it.
func (e *Engine) RenderColToCol(i, rx int) int {
	i = clamp(i, 0, e.doc.rowCount()-1)
	return e.doc.rows[i].rxToCx(max(rx, 0), e.doc.tabStop)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// move moves the cursor one step, wrapping across row boundaries at the
// start and end of a row.
func (e *Engine) move(dir Direction) {
	rowLen := e.doc.rowLen(e.cursor.Row)

	switch dir {
	case Left:
		if e.cursor.Col != 0 {
			e.cursor.Col--
		} else if e.cursor.Row > 0 {
			e.cursor.Row--
			e.cursor.Col = e.doc.rowLen(e.cursor.Row)
		}
	case Right:
		if e.cursor.Col < rowLen {
			e.cursor.Col++
		} else if e.cursor.Row < e.doc.rowCount()-1 {
			e.cursor.Row++
			e.cursor.Col = 0
		}
	case Up:
		if e.cursor.Row != 0 {
			e.cursor.Row--
		}
	case Down:
		if e.cursor.Row < e.doc.rowCount()-1 {
			e.cursor.Row++
		}
	case LineStart:
		e.cursor.Col = 0
	case LineEnd:
		e.cursor.Col = rowLen
	}

	e.cursor.Col = min(e.cursor.Col, e.doc.rowLen(e.cursor.Row))
	e.extendSelection()
	e.scrollToFit()
}

// moveTo places the cursor at (row, col), clamped to the document.
func (e *Engine) moveTo(row, col int) {
	e.cursor.Row = clamp(row, 0, e.doc.rowCount()-1)
	e.cursor.Col = clamp(col, 0, e.doc.rowLen(e.cursor.Row))
	e.extendSelection()
	e.scrollToFit()
}

// MoveTo is moveTo for callers outside the engine, such as a mouse click
// translated by the render layer.
func (e *Engine) MoveTo(row, col int) {
	if e.search != nil {
		return
	}
	e.moveTo(row, col)
}

// page moves the cursor a full screen up or down. The cursor first jumps to
// the top or bottom screen row so that the next screen is fully new.
func (e *Engine) page(dir Direction) {
	switch dir {
	case Up:
		e.cursor.Row = e.vp.RowOffset
	case Down:
		e.cursor.Row = min(e.vp.RowOffset+e.vp.ScreenRows-1, e.doc.rowCount()-1)
	default:
		return
	}
	e.cursor.Col = min(e.cursor.Col, e.doc.rowLen(e.cursor.Row))
	for range e.vp.ScreenRows {
		e.move(dir)
	}
}

// scrollToFit adjusts the viewport offsets so the cursor is visible.
func (e *Engine) scrollToFit() {
	e.rx = e.doc.rows[e.cursor.Row].cxToRx(e.cursor.Col, e.doc.tabStop)

	if e.cursor.Row < e.vp.RowOffset {
		e.vp.RowOffset = e.cursor.Row
	}
	if e.cursor.Row >= e.vp.RowOffset+e.vp.ScreenRows {
		e.vp.RowOffset = e.cursor.Row - e.vp.ScreenRows + 1
	}

	if e.rx < e.vp.ColOffset {
		e.vp.ColOffset = e.rx
	}
	if e.rx >= e.vp.ColOffset+e.vp.ScreenCols {
		e.vp.ColOffset = e.rx - e.vp.ScreenCols + 1
	}
}
