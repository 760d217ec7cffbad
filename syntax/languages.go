package syntax

import (
	"path/filepath"
	"strings"
)

// Syntax describes how to highlight one file type.
type Syntax struct {
	Name              string
	FileMatch         []string // ".ext" matches the extension, anything else a substring of the base name
	Keywords          []string
	Types             []string
	Builtins          []string
	LineComment       string
	BlockCommentStart string
	BlockCommentEnd   string
	StringDelimiters  string
	Flags             int
}

/*** filetypes ***/

var Go = Syntax{
	Name:      "go",
	FileMatch: []string{".go"},
	Keywords: []string{
		"break", "case", "chan", "const", "continue", "default", "defer", "else",
		"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
		"map", "package", "range", "return", "select", "struct", "switch", "type",
		"var", "true", "false", "nil", "iota"},
	Types: []string{
		"bool", "byte", "complex64", "complex128", "error", "float32", "float64",
		"int", "int8", "int16", "int32", "int64", "rune", "string", "uint",
		"uint8", "uint16", "uint32", "uint64", "uintptr", "any"},
	Builtins: []string{
		"append", "cap", "clear", "close", "complex", "copy", "delete", "imag",
		"len", "make", "max", "min", "new", "panic", "print", "println", "real",
		"recover"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  "\"`",
	Flags:             HighlightNumbers | HighlightStrings | HighlightChars,
}

var C = Syntax{
	Name:      "c",
	FileMatch: []string{".c", ".h", ".cpp"},
	Keywords: []string{
		"switch", "if", "while", "for", "break", "continue", "return", "else",
		"struct", "union", "typedef", "static", "enum", "class", "case", "sizeof"},
	Types: []string{
		"int", "long", "double", "float", "char", "unsigned", "signed", "void"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  "\"",
	Flags:             HighlightNumbers | HighlightStrings | HighlightChars,
}

var Rust = Syntax{
	Name:      "rust",
	FileMatch: []string{".rs"},
	Keywords: []string{
		"as", "break", "const", "continue", "crate", "else", "enum", "extern",
		"false", "fn", "for", "if", "impl", "in", "let", "loop", "match", "mod",
		"move", "mut", "pub", "ref", "return", "self", "Self", "static", "struct",
		"super", "trait", "true", "type", "unsafe", "use", "where", "while",
		"async", "await", "dyn"},
	Types: []string{
		"bool", "char", "f32", "f64", "i128", "i16", "i32", "i64", "i8", "isize",
		"str", "u128", "u16", "u32", "u64", "u8", "usize"},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	StringDelimiters:  "\"",
	Flags:             HighlightNumbers | HighlightStrings | HighlightChars,
}

var Haskell = Syntax{
	Name:      "haskell",
	FileMatch: []string{".hs"},
	Keywords: []string{
		"as", "case", "of", "class", "data", "data family", "data instance",
		"default", "deriving", "deriving instance", "do", "forall", "foreign",
		"hiding", "if", "then", "else", "import", "infix", "infixl", "infixr",
		"instance", "let", "in", "mdo", "module", "newtype", "proc", "qualified",
		"rec", "type", "type family", "type instance", "where"},
	Types: []string{
		"Bool", "Bounded", "Char", "Double", "Either", "Enum", "Eq", "Float",
		"Floating", "Fractional", "Functor", "IO", "Int", "Integer", "Integral",
		"Maybe", "Monad", "Num", "Ord", "Ordering", "Rational", "Real",
		"RealFloat", "RealFrac", "String"},
	LineComment:       "--",
	BlockCommentStart: "{-",
	BlockCommentEnd:   "-}",
	StringDelimiters:  "\"",
	Flags:             HighlightNumbers | HighlightStrings | HighlightChars,
}

var Python = Syntax{
	Name:      "python",
	FileMatch: []string{".py"},
	Keywords: []string{
		"False", "None", "True", "and", "as", "assert", "async", "await", "break",
		"class", "continue", "def", "del", "elif", "else", "except", "finally",
		"for", "from", "global", "if", "import", "in", "is", "lambda",
		"nonlocal", "not", "or", "pass", "raise", "return", "try", "while",
		"with", "yield"},
	Types: []string{"int", "float", "bool", "str", "bytes", "object"},
	Builtins: []string{
		"abs", "all", "any", "ascii", "bin", "breakpoint", "bytearray",
		"callable", "chr", "classmethod", "compile", "complex", "delattr", "dict",
		"dir", "divmod", "enumerate", "eval", "exec", "filter", "format",
		"frozenset", "getattr", "globals", "hasattr", "hash", "help", "hex", "id",
		"input", "isinstance", "issubclass", "iter", "len", "list", "locals",
		"map", "max", "memoryview", "min", "next", "oct", "open", "ord", "pow",
		"print", "property", "range", "repr", "reversed", "round", "set",
		"setattr", "slice", "sorted", "staticmethod", "sum", "super", "tuple",
		"type", "vars", "zip"},
	LineComment:      "#",
	StringDelimiters: "\"'",
	Flags:            HighlightNumbers | HighlightStrings,
}

var Shell = Syntax{
	Name:      "shell",
	FileMatch: []string{".sh", ".bash", ".bashrc", ".profile"},
	Keywords: []string{
		"if", "fi", "then", "elif", "else", "return", "let", "local", "function",
		"for", "case", "esac", "while", "do", "done", "in", "break", "select",
		"until"},
	Builtins: []string{
		"alias", "bg", "bind", "builtin", "caller", "cd", "command", "compgen",
		"complete", "compopt", "coproc", "declare", "dirs", "disown", "echo",
		"enable", "eval", "exec", "export", "false", "fc", "fg", "getopts",
		"hash", "help", "history", "jobs", "kill", "logout", "mapfile", "popd",
		"printf", "pushd", "pwd", "read", "readarray", "readonly", "set",
		"shift", "shopt", "source", "suspend", "test", "time", "times", "trap",
		"true", "type", "typeset", "ulimit", "umask", "unalias", "unset", "wait"},
	LineComment:      "#",
	StringDelimiters: "\"'",
	Flags:            HighlightNumbers | HighlightStrings,
}

// Database lists every known syntax in match order.
var Database = []*Syntax{&Go, &C, &Rust, &Haskell, &Python, &Shell}

// Select returns the syntax for filename, or nil when no entry matches.
func Select(filename string) *Syntax {
	if filename == "" {
		return nil
	}
	ext := filepath.Ext(filename)
	base := filepath.Base(filename)

	for _, s := range Database {
		for _, pattern := range s.FileMatch {
			isExt := pattern[0] == '.'
			if (isExt && ext != "" && ext == pattern) ||
				(!isExt && strings.Contains(base, pattern)) {
				return s
			}
		}
	}
	return nil
}
