package app

import (
	"github.com/hnnsb/red/editor"
	"github.com/hnnsb/red/terminal"
)

// App-level keys, handled before the keymap.
var (
	keyQuit   = terminal.WithControlKey('q')
	keySave   = terminal.WithControlKey('s')
	keyFind   = terminal.WithControlKey('f')
	keyRedraw = terminal.WithControlKey('r')
	keyHelp   = terminal.WithControlKey('g')
	keySelect = terminal.WithControlKey(' ') // Ctrl-Space sends NUL
	keyCopy   = terminal.WithControlKey('c')
	keyCut    = terminal.WithControlKey('x')
	keyPaste  = terminal.WithControlKey('v')
	keyCtrlH  = terminal.WithControlKey('h')
	keyTab    = terminal.Key('\t')
)

var arrowDirections = map[terminal.Key]editor.Direction{
	terminal.ARROW_UP:    editor.Up,
	terminal.ARROW_DOWN:  editor.Down,
	terminal.ARROW_LEFT:  editor.Left,
	terminal.ARROW_RIGHT: editor.Right,
}

// editCommand maps a key pressed in edit mode to an engine command.
func editCommand(key terminal.Key) (editor.Command, bool) {
	if dir, ok := arrowDirections[key]; ok {
		return editor.Command{Kind: editor.MoveCursor, Dir: dir}, true
	}

	switch key {
	case terminal.ENTER:
		return editor.Command{Kind: editor.NewLine}, true
	case terminal.BACKSPACE, keyCtrlH:
		return editor.Command{Kind: editor.DeleteBackward}, true
	case terminal.DELETE_KEY:
		return editor.Command{Kind: editor.DeleteForward}, true
	case terminal.HOME_KEY:
		return editor.Command{Kind: editor.MoveCursor, Dir: editor.LineStart}, true
	case terminal.END_KEY:
		return editor.Command{Kind: editor.MoveCursor, Dir: editor.LineEnd}, true
	case terminal.PAGE_UP:
		return editor.Command{Kind: editor.PageMove, Dir: editor.Up}, true
	case terminal.PAGE_DOWN:
		return editor.Command{Kind: editor.PageMove, Dir: editor.Down}, true
	case keySelect:
		return editor.Command{Kind: editor.BeginSelection}, true
	case terminal.ESCAPE:
		return editor.Command{Kind: editor.Deselect}, true
	case keyCopy:
		return editor.Command{Kind: editor.Copy}, true
	case keyCut:
		return editor.Command{Kind: editor.Cut}, true
	case keyPaste:
		return editor.Command{Kind: editor.Paste}, true
	case keyTab:
		return editor.Command{Kind: editor.InsertChar, Char: '\t'}, true
	}

	// Insert regular character (including Unicode), skip the rest
	if key.IsControl() || key.IsSpecial() {
		return editor.Command{}, false
	}
	return editor.Command{Kind: editor.InsertChar, Char: rune(key)}, true
}

// searchCommand maps a key pressed at the search prompt to an engine
// command.
func searchCommand(key terminal.Key) (editor.Command, bool) {
	switch key {
	case terminal.ESCAPE:
		return editor.Command{Kind: editor.SearchCancel}, true
	case terminal.ENTER:
		return editor.Command{Kind: editor.SearchConfirm}, true
	case terminal.BACKSPACE, terminal.DELETE_KEY, keyCtrlH:
		return editor.Command{Kind: editor.SearchBackspace}, true
	case terminal.ARROW_RIGHT, terminal.ARROW_DOWN, keyFind:
		return editor.Command{Kind: editor.SearchNext}, true
	case terminal.ARROW_LEFT, terminal.ARROW_UP:
		return editor.Command{Kind: editor.SearchPrev}, true
	}
	if key.IsControl() || key.IsSpecial() {
		return editor.Command{}, false
	}
	return editor.Command{Kind: editor.SearchTypeChar, Char: rune(key)}, true
}
