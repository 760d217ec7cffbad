package syntax

import (
	"strings"
	"testing"
)

func describe(hl []Highlight) string {
	var b strings.Builder
	for _, h := range hl {
		switch h {
		case Normal:
			b.WriteByte('_')
		case Comment:
			b.WriteByte('c')
		case MultiLineComment:
			b.WriteByte('C')
		case Keyword:
			b.WriteByte('k')
		case Type:
			b.WriteByte('t')
		case Builtin:
			b.WriteByte('b')
		case String:
			b.WriteByte('s')
		case Number:
			b.WriteByte('0')
		case Match:
			b.WriteByte('m')
		case Selection:
			b.WriteByte('v')
		}
	}
	return b.String()
}

func expectHighlightLines(t *testing.T, s *Syntax, lines, want []string) {
	t.Helper()
	state := StateNormal
	for i, line := range lines {
		var hl []Highlight
		hl, state = HighlightRow(s, []rune(line), state)
		if len(hl) != len([]rune(line)) {
			t.Fatalf("line %d: %d classes for %d runes", i, len(hl), len([]rune(line)))
		}
		if got := describe(hl); got != want[i] {
			t.Errorf("line %d %q:\n got %q\nwant %q", i, line, got, want[i])
		}
	}
}

func TestHighlightRust(t *testing.T) {
	cases := []struct{ line, want string }{
		{"let x = 100;", "kkk_____000_"},
		{"for 0..100 {}", "kkk_000000___"},
		{"// test", "ccccccc"},
		{"let /*x=1*/ x = ()", "kkk_CCCCCCC_______"},
		{"as break const f64 f32 i8 str isize", "kk_kkkkk_kkkkk_ttt_ttt_tt_ttt_ttttt"},
		{"/*some multi line comment*/100", "CCCCCCCCCCCCCCCCCCCCCCCCCCC000"},
	}
	for _, tc := range cases {
		expectHighlightLines(t, &Rust, []string{tc.line}, []string{tc.want})
	}
}

func TestHighlightC(t *testing.T) {
	cases := []struct{ line, want string }{
		{"int main(void) {}", "ttt______tttt____"},
		{`char x[] = "hello world";`, `tttt_______sssssssssssss_`},
		{`while (1){ printf("test"); }`, `kkkkk__0__________ssssss____`},
		{"int x = 100 + 200 * 2.123 / (10 * sizeof(int))", "ttt_____000___000___00000____00___kkkkkk_ttt__"},
		{`char c = '\\';`, "tttt_____ssss_"},
		{`char c = '\t';`, "tttt_____ssss_"},
	}
	for _, tc := range cases {
		expectHighlightLines(t, &C, []string{tc.line}, []string{tc.want})
	}
}

func TestHighlightHaskell(t *testing.T) {
	cases := []struct{ line, want string }{
		{"data Expr = Val Int | App Op Expr Expr", "kkkk____________ttt___________________"},
		{"let x = (+) 2", "kkk_________0"},
		{"100 * 200 + 300 {- this is a comment -} infix type where -- ...",
			"000___000___000_CCCCCCCCCCCCCCCCCCCCCCC_kkkkk_kkkk_kkkkk_cccccc"},
		{"data family X", "kkkkkkkkkkk__"},
	}
	for _, tc := range cases {
		expectHighlightLines(t, &Haskell, []string{tc.line}, []string{tc.want})
	}
}

func TestHighlightPythonAndShell(t *testing.T) {
	expectHighlightLines(t, &Python,
		[]string{"import math", "inc = lambda x: x + 1", "100 + 200 'hello world' # some comment"},
		[]string{"kkkkkk_____", "______kkkkkk________0", "000___000_sssssssssssss_cccccccccccccc"})

	expectHighlightLines(t, &Shell,
		[]string{"alias x='rm -rf /' # this is bad"},
		[]string{"bbbbb___ssssssssss_ccccccccccccc"})
}

func TestHighlightGo(t *testing.T) {
	expectHighlightLines(t, &Go,
		[]string{"func main() {", "\treturn len(x)"},
		[]string{"kkkk_________", "_kkkkkk_bbb___"})
}

func TestMultiLineComment(t *testing.T) {
	expectHighlightLines(t, &Rust,
		[]string{"let x = 100; /*", "this is a comment", "", "*/ let y = 42;"},
		[]string{"kkk_____000__CC", "CCCCCCCCCCCCCCCCC", "", "CC_kkk_____00_"})

	expectHighlightLines(t, &Rust,
		[]string{"/*", "123", "for while 42", "//"},
		[]string{"CC", "CCC", "CCCCCCCCCCCC", "CC"})
}

func TestHighlightRowState(t *testing.T) {
	_, out := HighlightRow(&C, []rune("int x; /* open"), StateNormal)
	if out != StateComment {
		t.Errorf("expected comment state after unterminated block comment, got %d", out)
	}

	_, out = HighlightRow(&C, []rune("still */ closed"), StateComment)
	if out != StateNormal {
		t.Errorf("expected normal state after block comment end, got %d", out)
	}

	_, out = HighlightRow(&C, nil, StateComment)
	if out != StateComment {
		t.Errorf("empty row must carry the comment state, got %d", out)
	}
}

func TestHighlightRowWithoutSyntax(t *testing.T) {
	hl, out := HighlightRow(nil, []rune("int x = 1; /*"), StateComment)
	if got := describe(hl); got != "_____________" {
		t.Errorf("got %q", got)
	}
	if out != StateNormal {
		t.Errorf("expected normal state, got %d", out)
	}
}

func TestSelect(t *testing.T) {
	cases := []struct {
		filename string
		want     *Syntax
	}{
		{"main.c", &C},
		{"prog.rs", &Rust},
		{"app.hs", &Haskell},
		{"script.py", &Python},
		{"start.sh", &Shell},
		{"cmd/red/main.go", &Go},
		{"test.txt", nil},
		{"", nil},
	}
	for _, tc := range cases {
		if got := Select(tc.filename); got != tc.want {
			t.Errorf("Select(%q) = %v, want %v", tc.filename, got, tc.want)
		}
	}
}
