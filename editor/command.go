package editor

// CommandKind identifies one of the logical editing commands.
type CommandKind int

const (
	InsertChar CommandKind = iota
	NewLine
	DeleteBackward
	DeleteForward
	MoveCursor
	PageMove
	BeginSelection
	Deselect
	Copy
	Cut
	Paste
	EnterSearch
	SearchTypeChar
	SearchBackspace
	SearchNext
	SearchPrev
	SearchConfirm
	SearchCancel
	RequestSave
)

var commandNames = [...]string{
	InsertChar:      "InsertChar",
	NewLine:         "NewLine",
	DeleteBackward:  "DeleteBackward",
	DeleteForward:   "DeleteForward",
	MoveCursor:      "MoveCursor",
	PageMove:        "PageMove",
	BeginSelection:  "BeginSelection",
	Deselect:        "Deselect",
	Copy:            "Copy",
	Cut:             "Cut",
	Paste:           "Paste",
	EnterSearch:     "EnterSearch",
	SearchTypeChar:  "SearchTypeChar",
	SearchBackspace: "SearchBackspace",
	SearchNext:      "SearchNext",
	SearchPrev:      "SearchPrev",
	SearchConfirm:   "SearchConfirm",
	SearchCancel:    "SearchCancel",
	RequestSave:     "RequestSave",
}

func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(commandNames) {
		return commandNames[k]
	}
	return "Unknown"
}

// isSearch reports whether k is handled while search mode is active.
func (k CommandKind) isSearch() bool {
	return k >= SearchTypeChar && k <= SearchCancel
}

// Direction is the direction of a cursor or page movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	LineStart
	LineEnd
)

// Command is a single logical command. Char is used by InsertChar and
// SearchTypeChar, Dir by MoveCursor and PageMove.
type Command struct {
	Kind CommandKind
	Char rune
	Dir  Direction
}
