package editor

import (
	"unicode"

	"github.com/rs/zerolog/log"
)

// SearchDirection is the direction in which the next match is looked for.
type SearchDirection int

const (
	Forward SearchDirection = iota
	Backward
)

/*** find ***/

type searchState struct {
	query         []rune
	direction     SearchDirection
	lastMatch     *Position
	showMatch     bool
	savedCursor   Position
	savedViewport Viewport
}

// Searching reports whether search mode is active.
func (e *Engine) Searching() bool { return e.search != nil }

// SearchQuery returns the current query, or "" when not searching.
func (e *Engine) SearchQuery() string {
	if e.search == nil {
		return ""
	}
	return string(e.search.query)
}

func (e *Engine) enterSearch() {
	if e.search != nil {
		return
	}
	e.search = &searchState{
		direction:     Forward,
		savedCursor:   e.cursor,
		savedViewport: e.vp,
	}
}

func (e *Engine) searchTypeChar(c rune) {
	if e.search == nil {
		return
	}
	e.search.query = append(e.search.query, c)
	e.runSearch(true)
}

func (e *Engine) searchBackspace() {
	s := e.search
	if s == nil || len(s.query) == 0 {
		return
	}
	s.query = s.query[:len(s.query)-1]
	if len(s.query) == 0 {
		s.lastMatch = nil
		s.showMatch = false
		e.restoreSearchOrigin()
		return
	}
	e.runSearch(true)
}

func (e *Engine) searchStep(dir SearchDirection) {
	if e.search == nil {
		return
	}
	e.search.direction = dir
	if len(e.search.query) == 0 {
		return
	}
	e.runSearch(false)
}

func (e *Engine) confirmSearch() {
	if e.search == nil {
		return
	}
	log.Debug().Str("query", string(e.search.query)).Stringer("cursor", e.cursor).Msg("search confirmed")
	e.search = nil
	e.extendSelection()
}

func (e *Engine) cancelSearch() {
	if e.search == nil {
		return
	}
	e.restoreSearchOrigin()
	e.search = nil
}

// restoreSearchOrigin puts the cursor and viewport offsets back where they
// were when search mode was entered.
func (e *Engine) restoreSearchOrigin() {
	s := e.search
	e.cursor = s.savedCursor
	e.vp.RowOffset = s.savedViewport.RowOffset
	e.vp.ColOffset = s.savedViewport.ColOffset
	e.rx = e.doc.rows[e.cursor.Row].cxToRx(e.cursor.Col, e.doc.tabStop)
}

// runSearch looks for the query starting at the last match, or at the
// cursor saved on entry when nothing matched yet. With inclusive set the
// starting position itself may match; that keeps the current match while
// the query is being typed.
func (e *Engine) runSearch(inclusive bool) {
	s := e.search
	from := s.savedCursor
	if s.lastMatch != nil {
		from = *s.lastMatch
	}
	pos, ok := e.doc.find(s.query, from, s.direction, inclusive, e.opts.IgnoreCase)
	if !ok {
		s.showMatch = false
		return
	}
	s.lastMatch = &pos
	s.showMatch = true
	e.cursor = pos
	e.scrollToFit()
}

// matchSpan returns the row and render column range of the current match.
func (e *Engine) matchSpan() (rowIdx, from, to int, ok bool) {
	s := e.search
	if s == nil || !s.showMatch || s.lastMatch == nil {
		return 0, 0, 0, false
	}
	r := &e.doc.rows[s.lastMatch.Row]
	end := min(s.lastMatch.Col+len(s.query), len(r.chars))
	return s.lastMatch.Row, r.cxToRx(s.lastMatch.Col, e.doc.tabStop), r.cxToRx(end, e.doc.tabStop), true
}

func equalRune(a, b rune, fold bool) bool {
	if fold {
		return unicode.ToLower(a) == unicode.ToLower(b)
	}
	return a == b
}

func matchAt(haystack, needle []rune, i int, fold bool) bool {
	for j, r := range needle {
		if !equalRune(haystack[i+j], r, fold) {
			return false
		}
	}
	return true
}

// runeIndexOf finds the index of the first occurrence of needle in haystack
func runeIndexOf(haystack, needle []rune, fold bool) int {
	for i := 0; i <= len(haystack)-len(needle); i++ {
		if matchAt(haystack, needle, i, fold) {
			return i
		}
	}
	return -1
}

// runeLastIndexOf finds the index of the last occurrence of needle in haystack
func runeLastIndexOf(haystack, needle []rune, fold bool) int {
	for i := len(haystack) - len(needle); i >= 0; i-- {
		if matchAt(haystack, needle, i, fold) {
			return i
		}
	}
	return -1
}

// find scans the rows circularly for query, starting at from. Forward
// matches start at or after from (strictly after unless inclusive),
// backward matches at or before it. A full circle comes back to the row of
// from and accepts the matches on the other side of from, including from
// itself when it was excluded at the start.
func (d *document) find(query []rune, from Position, dir SearchDirection, inclusive, fold bool) (Position, bool) {
	if len(query) == 0 {
		return Position{}, false
	}
	n := len(d.rows)

	if dir == Forward {
		start := from.Col
		if !inclusive {
			start++
		}
		for k := 0; k <= n; k++ {
			ri := (from.Row + k) % n
			chars := d.rows[ri].chars
			switch {
			case k == 0:
				if start <= len(chars) {
					if i := runeIndexOf(chars[start:], query, fold); i >= 0 {
						return Position{ri, start + i}, true
					}
				}
			case k == n:
				if i := runeIndexOf(chars, query, fold); i >= 0 && i < start {
					return Position{ri, i}, true
				}
			default:
				if i := runeIndexOf(chars, query, fold); i >= 0 {
					return Position{ri, i}, true
				}
			}
		}
		return Position{}, false
	}

	limit := from.Col
	if !inclusive {
		limit--
	}
	for k := 0; k <= n; k++ {
		ri := ((from.Row-k)%n + n) % n
		chars := d.rows[ri].chars
		switch {
		case k == 0:
			if limit >= 0 {
				end := min(limit+len(query), len(chars))
				if i := runeLastIndexOf(chars[:end], query, fold); i >= 0 {
					return Position{ri, i}, true
				}
			}
		case k == n:
			if i := runeLastIndexOf(chars, query, fold); i > limit {
				return Position{ri, i}, true
			}
		default:
			if i := runeLastIndexOf(chars, query, fold); i >= 0 {
				return Position{ri, i}, true
			}
		}
	}
	return Position{}, false
}
