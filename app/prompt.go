package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hnnsb/red/editor"
	"github.com/hnnsb/red/syntax"
	"github.com/hnnsb/red/terminal"
)

// Prompt shows prompt in the message bar, with %s replaced by the input
// typed so far, until the user presses Enter on a non-empty input or
// Escape. Escape returns "". The callback, if any, sees every key together
// with the current input.
func (a *App) Prompt(ctx context.Context, prompt string, callback func(input string, key terminal.Key)) (string, error) {
	var buf []rune

	for {
		a.SetStatusMessage(prompt, string(buf))
		if err := a.refresh(); err != nil {
			return "", err
		}

		key, err := a.readKey(ctx)
		if err != nil {
			return "", err
		}

		// Handle special keys and control characters
		switch key {
		case terminal.DELETE_KEY, terminal.BACKSPACE, keyCtrlH:
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case terminal.ESCAPE:
			a.SetStatusMessage("")
			if callback != nil {
				callback(string(buf), key)
			}
			return "", nil

		case terminal.ENTER:
			if len(buf) != 0 {
				a.SetStatusMessage("")
				if callback != nil {
					callback(string(buf), key)
				}
				return string(buf), nil
			}
			continue

		default:
			if !key.IsControl() && !key.IsSpecial() {
				buf = append(buf, rune(key))
			}
		}

		if callback != nil {
			callback(string(buf), key)
		}
	}
}

// Save writes the document, asking for a file name first when it has none.
func (a *App) Save(ctx context.Context) error {
	if a.file.Path == "" {
		name, err := a.Prompt(ctx, "Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if name == "" {
			a.SetStatusMessage("Save aborted")
			return nil
		}
		a.file.Path = name
		a.engine.SetSyntax(syntax.Select(name))
	}

	if err := a.engine.Apply(editor.Command{Kind: editor.RequestSave}); err != nil {
		a.SetStatusMessage("Can't save! I/O error: %v", err)
		return nil
	}
	a.SetStatusMessage("%d bytes written to disk", a.file.written)
	return nil
}

// Find runs an incremental search driven from the prompt. Escape puts the
// cursor back where the search started.
func (a *App) Find(ctx context.Context) error {
	if err := a.engine.Apply(editor.Command{Kind: editor.EnterSearch}); err != nil {
		return err
	}

	_, err := a.Prompt(ctx, "Search: %s (Use ESC/Arrows/Enter)", func(_ string, key terminal.Key) {
		cmd, ok := searchCommand(key)
		if !ok {
			return
		}
		if err := a.engine.Apply(cmd); err != nil {
			log.Error().Err(err).Stringer("command", cmd.Kind).Msg("search command failed")
		}
	})
	if a.engine.Searching() {
		// The prompt ended without Enter or Escape reaching the engine.
		if cerr := a.engine.Apply(editor.Command{Kind: editor.SearchCancel}); cerr != nil {
			log.Error().Err(cerr).Msg("failed to cancel search")
		}
	}
	return err
}
