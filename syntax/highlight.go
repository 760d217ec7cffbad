// Package syntax classifies the characters of a rendered row into highlight
// classes. Highlighting is lexical: a row is scanned left to right, seeded with
// the lexer state left behind by the previous row.
package syntax

import "strings"

// Highlight is the class of a single rendered character.
type Highlight uint8

// Syntax highlighting types
const (
	Normal Highlight = iota
	Comment
	MultiLineComment
	Keyword
	Type
	Builtin
	String
	Number
	Match
	Selection
)

var highlightNames = [...]string{
	Normal:           "normal",
	Comment:          "comment",
	MultiLineComment: "mlcomment",
	Keyword:          "keyword",
	Type:             "type",
	Builtin:          "builtin",
	String:           "string",
	Number:           "number",
	Match:            "match",
	Selection:        "selection",
}

func (h Highlight) String() string {
	if int(h) < len(highlightNames) {
		return highlightNames[h]
	}
	return "unknown"
}

// State is the lexer state carried from the end of one row to the start of
// the next.
type State uint8

const (
	StateNormal State = iota
	StateComment
)

// Syntax highlighting flags
const (
	HighlightNumbers = 1 << iota
	HighlightStrings
	HighlightChars
)

// Check if the rune is a separator (whitespace, null, or punctuation)
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return strings.ContainsRune(",.()+-/*=~%<>[];", r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func hasPrefix(s []rune, prefix []rune) bool {
	if len(prefix) == 0 || len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

func fill(hl []Highlight, class Highlight) {
	for i := range hl {
		hl[i] = class
	}
}

// charLiteralLen returns the length of a character literal such as 'a' or
// '\n' at the start of s, or 0 if s does not start with one.
func charLiteralLen(s []rune) int {
	if len(s) < 3 || s[0] != '\'' {
		return 0
	}
	if s[1] != '\\' && s[2] == '\'' {
		return 3
	}
	if s[1] == '\\' && len(s) >= 4 && s[3] == '\'' {
		return 4
	}
	return 0
}

// HighlightRow classifies every rune of render, starting in state in. It
// returns the classes, aligned with render, and the state at the end of the
// row. The result depends only on the arguments.
func HighlightRow(s *Syntax, render []rune, in State) ([]Highlight, State) {
	hl := make([]Highlight, len(render))
	if s == nil {
		return hl, StateNormal
	}

	scs := []rune(s.LineComment)
	mcs := []rune(s.BlockCommentStart)
	mce := []rune(s.BlockCommentEnd)

	prevSep := true
	var inString rune
	inComment := in == StateComment

	for i := 0; i < len(render); {
		c := render[i]
		prevHl := Normal
		if i > 0 {
			prevHl = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && hasPrefix(render[i:], scs) {
			fill(hl[i:], Comment)
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				if hasPrefix(render[i:], mce) {
					fill(hl[i:i+len(mce)], MultiLineComment)
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				hl[i] = MultiLineComment
				i++
				continue
			} else if hasPrefix(render[i:], mcs) {
				fill(hl[i:i+len(mcs)], MultiLineComment)
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if s.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if strings.ContainsRune(s.StringDelimiters, c) {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if s.Flags&HighlightChars != 0 && c == '\'' {
			if n := charLiteralLen(render[i:]); n > 0 {
				fill(hl[i:i+n], String)
				i += n
				prevSep = true
				continue
			}
		}

		if s.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHl == Number)) || (c == '.' && prevHl == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			// we entered a new word
			if class, n := s.matchWord(render[i:]); n > 0 {
				fill(hl[i:i+n], class)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	out := StateNormal
	if inComment {
		out = StateComment
	}
	return hl, out
}

// matchWord returns the class and length of the longest keyword, type or
// builtin at the start of s that is followed by a separator or the end of the
// row.
func (s *Syntax) matchWord(text []rune) (Highlight, int) {
	best, bestLen := Normal, 0
	for _, group := range []struct {
		words []string
		class Highlight
	}{
		{s.Keywords, Keyword},
		{s.Types, Type},
		{s.Builtins, Builtin},
	} {
		for _, word := range group.words {
			w := []rune(word)
			if len(w) <= bestLen || !hasPrefix(text, w) {
				continue
			}
			if len(w) < len(text) && !isSeparator(text[len(w)]) {
				continue
			}
			best, bestLen = group.class, len(w)
		}
	}
	return best, bestLen
}
