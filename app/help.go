package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hnnsb/red/editor"
	"github.com/hnnsb/red/terminal"
)

var helpContent = []string{
	"=== RED HELP ===",
	"",
	"NAVIGATION:",
	"  Arrow Keys       - Move cursor",
	"  Page Up/Down     - Scroll by page",
	"  Home/End         - Move to line start/end",
	"",
	"EDITING:",
	"  Ctrl+S           - Save file",
	"  Ctrl+Q           - Quit (with confirmation if unsaved)",
	"  Delete/Backspace - Delete characters",
	"",
	"SELECTION:",
	"  Ctrl+Space       - Start selection at the cursor",
	"  Ctrl+C / Ctrl+X  - Copy / cut the selection",
	"  Ctrl+V           - Paste",
	"  Escape           - Drop the selection",
	"",
	"SEARCH:",
	"  Ctrl+F           - Find text",
	"  Arrow Keys       - Previous/next match",
	"  Enter            - Keep the match",
	"  Escape           - Cancel search",
	"",
	"OTHER:",
	"  Ctrl+G           - Show this help",
	"  Ctrl+R           - Redraw screen",
	"",
	fmt.Sprintf("RED version %s", RED_VERSION),
	"",
	"Press 'q' or Escape to close this help screen.",
}

// Help displays the help screen until 'q' or Escape is pressed. The help
// text is shown read-only in its own engine, so the document is untouched.
func (a *App) Help(ctx context.Context) error {
	help := editor.New(helpContent, editor.Options{
		ScreenRows: a.screen.TextRows(),
		ScreenCols: a.screen.TextCols(),
	})
	const status = "Help Screen - Use Arrow Keys to scroll, 'q' or Escape to exit"

	draw := func() error {
		help.Resize(a.screen.TextRows(), a.screen.TextCols())
		row, col := help.CursorScreen()
		return a.screen.Refresh(a.console, &terminal.Frame{
			Lines:     help.VisibleLines(),
			Status:    help.Status(),
			FileName:  "Help",
			Message:   status,
			CursorRow: row,
			CursorCol: col,
		})
	}
	a.paint = draw
	defer func() { a.paint = nil }()

	for {
		if err := draw(); err != nil {
			return err
		}

		key, err := a.readKey(ctx)
		if err != nil {
			return err
		}

		switch key {
		case 'q', 'Q', terminal.ESCAPE:
			a.SetStatusMessage("Returned to editor")
			return nil
		case terminal.ARROW_UP, terminal.ARROW_DOWN, terminal.PAGE_UP, terminal.PAGE_DOWN,
			terminal.HOME_KEY, terminal.END_KEY:
			cmd, _ := editCommand(key)
			if err := help.Apply(cmd); err != nil {
				log.Error().Err(err).Stringer("command", cmd.Kind).Msg("help scroll failed")
			}
		}
	}
}
