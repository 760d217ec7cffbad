package terminal

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/hnnsb/red/syntax"
)

// Palette maps highlight classes to the SGR sequence that starts them.
// Classes without an entry are painted in the default colours.
type Palette map[syntax.Highlight]string

func sgr(params ...int) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprint(p)
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

// DefaultPalette uses the 16 standard terminal colours.
func DefaultPalette() Palette {
	return Palette{
		syntax.Comment:          sgr(ANSI_COLOR_CYAN),
		syntax.MultiLineComment: sgr(ANSI_COLOR_CYAN),
		syntax.Keyword:          sgr(ANSI_COLOR_YELLOW),
		syntax.Type:             sgr(ANSI_COLOR_GREEN),
		syntax.Builtin:          sgr(ANSI_COLOR_BLUE),
		syntax.String:           sgr(ANSI_COLOR_MAGENTA),
		syntax.Number:           sgr(ANSI_COLOR_RED),
		syntax.Match:            sgr(ANSI_REVERSE, ANSI_COLOR_BLUE),
		syntax.Selection:        sgr(ANSI_REVERSE),
	}
}

// tokenTypes pairs each lexical class with the chroma token whose theme
// entry colours it.
var tokenTypes = map[syntax.Highlight]chroma.TokenType{
	syntax.Comment:          chroma.Comment,
	syntax.MultiLineComment: chroma.CommentMultiline,
	syntax.Keyword:          chroma.Keyword,
	syntax.Type:             chroma.KeywordType,
	syntax.Builtin:          chroma.NameBuiltin,
	syntax.String:           chroma.LiteralString,
	syntax.Number:           chroma.LiteralNumber,
}

// ThemePalette derives a 24-bit palette from a chroma style. The match and
// selection overlays keep their reverse-video look. An empty name selects
// the 16-colour palette.
func ThemePalette(theme string) (Palette, error) {
	p := DefaultPalette()
	if theme == "" {
		return p, nil
	}
	sty, ok := styles.Registry[strings.ToLower(theme)]
	if !ok {
		return p, fmt.Errorf("unknown theme %q", theme)
	}
	for class, tt := range tokenTypes {
		entry := sty.Get(tt)
		if !entry.Colour.IsSet() {
			continue
		}
		c := entry.Colour
		params := []int{38, 2, int(c.Red()), int(c.Green()), int(c.Blue())}
		if entry.Bold == chroma.Yes {
			params = append([]int{ANSI_BOLD}, params...)
		}
		p[class] = sgr(params...)
	}
	return p, nil
}
