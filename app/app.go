// Package app runs the interactive editor: it reads keys from the terminal,
// turns them into engine commands and repaints the screen after each one.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/hnnsb/red/config"
	"github.com/hnnsb/red/editor"
	"github.com/hnnsb/red/syntax"
	"github.com/hnnsb/red/terminal"
	"github.com/hnnsb/red/textfile"
)

const RED_VERSION = "0.1.0"

// How long a status message stays visible.
const messageTimeout = 5 * time.Second

// Console is the terminal the app draws on.
type Console interface {
	io.ReadWriter
	Size() (rows, cols int, err error)
}

// fileSaver remembers the byte count of the last save for the status
// message.
type fileSaver struct {
	textfile.File
	written int
}

func (f *fileSaver) Save(lines []string) (int, error) {
	n, err := f.File.Save(lines)
	f.written = n
	return n, err
}

// App represents the interactive editor session.
type App struct {
	console Console
	keys    *terminal.KeyReader
	screen  *terminal.Screen
	engine  *editor.Engine
	file    *fileSaver
	cfg     *config.Config

	statusMessage     string
	statusMessageTime time.Time
	quitTimes         int
	resized           atomic.Bool
	// paint repaints the screen currently shown; nil means the document.
	paint             func() error
	quit              bool
}

// New creates an editing session over lines loaded from filename, which
// may be empty for an unnamed document.
func New(console Console, filename string, lines []string, cfg *config.Config, palette terminal.Palette) (*App, error) {
	rows, cols, err := console.Size()
	if err != nil {
		return nil, err
	}

	a := &App{
		console:   console,
		keys:      terminal.NewKeyReader(console),
		screen:    terminal.NewScreen(rows, cols, palette),
		file:      &fileSaver{File: textfile.File{Path: filename}},
		cfg:       cfg,
		quitTimes: cfg.QuitTimes,
	}

	opts := editor.Options{
		Syntax:     syntax.Select(filename),
		TabStop:    cfg.TabStop,
		IgnoreCase: cfg.Search.IgnoreCase,
		ScreenRows: a.screen.TextRows(),
		ScreenCols: a.screen.TextCols(),
		Saver:      a.file,
	}
	if cfg.Clipboard.System {
		if clipboard.Unsupported {
			log.Warn().Msg("system clipboard unsupported, keeping copies local")
		} else {
			opts.ClipboardMirror = clipboard.WriteAll
		}
	}
	a.engine = editor.New(lines, opts)

	a.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-G = help")
	return a, nil
}

// Engine returns the editing engine of the session.
func (a *App) Engine() *editor.Engine { return a.engine }

// Run processes key presses until the user quits, the context is done or
// reading input fails.
func (a *App) Run(ctx context.Context) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)
	defer func() {
		signal.Stop(sig)
		close(sig)
	}()
	go func() {
		for range sig {
			a.resized.Store(true)
		}
	}()

	for !a.quit {
		if err := a.refresh(); err != nil {
			return fmt.Errorf("refreshing screen: %w", err)
		}
		key, err := a.readKey(ctx)
		if err != nil {
			return err
		}
		if err := a.processKeypress(ctx, key); err != nil {
			return err
		}
	}
	log.Info().Str("file", a.file.Path).Msg("editor closed")
	return nil
}

// readKey waits for the next key press. Window resizes are handled while
// waiting.
func (a *App) readKey(ctx context.Context) (terminal.Key, error) {
	for {
		key, err := a.keys.ReadKey()
		switch {
		case err == nil:
			return key, nil
		case errors.Is(err, terminal.ErrNoInput):
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			if a.resized.Swap(false) {
				a.Redraw()
				a.repaint()
			}
		case errors.Is(err, terminal.ErrInvalidUTF8):
			a.ShowError("%v", err)
			a.repaint()
		default:
			return 0, err
		}
	}
}

func (a *App) processKeypress(ctx context.Context, key terminal.Key) error {
	switch key {
	case keyQuit:
		if a.engine.Dirty() && a.quitTimes > 0 {
			a.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", a.quitTimes)
			a.quitTimes--
			return nil
		}
		a.quit = true
		return nil

	case keySave:
		if err := a.Save(ctx); err != nil {
			return err
		}

	case keyFind:
		if err := a.Find(ctx); err != nil {
			return err
		}

	case keyRedraw:
		a.Redraw()

	case keyHelp:
		if err := a.Help(ctx); err != nil {
			return err
		}

	default:
		if cmd, ok := editCommand(key); ok {
			if err := a.engine.Apply(cmd); err != nil {
				a.ShowError("%v", err)
			}
		}
	}

	a.quitTimes = a.cfg.QuitTimes // Reset quit times after processing a key
	return nil
}

// Redraw re-reads the terminal size and fits the viewport to it.
func (a *App) Redraw() {
	rows, cols, err := a.console.Size()
	if err != nil {
		a.ShowError("%v", err)
		return
	}
	a.screen.Resize(rows, cols)
	a.engine.Resize(a.screen.TextRows(), a.screen.TextCols())
	log.Debug().Int("rows", rows).Int("cols", cols).Msg("terminal resized")
}

func (a *App) frame() *terminal.Frame {
	row, col := a.engine.CursorScreen()
	f := &terminal.Frame{
		Lines:     a.engine.VisibleLines(),
		Status:    a.engine.Status(),
		FileName:  a.file.Path,
		CursorRow: row,
		CursorCol: col,
	}
	if time.Since(a.statusMessageTime) < messageTimeout {
		f.Message = a.statusMessage
	}
	if a.file.Path == "" && !a.engine.Dirty() && a.engine.RowCount() == 1 && a.engine.RowText(0) == "" {
		f.Welcome = "RED editor -- version " + RED_VERSION
	}
	return f
}

func (a *App) refresh() error {
	return a.screen.Refresh(a.console, a.frame())
}

// repaint redraws whatever is on screen while waiting for a key.
func (a *App) repaint() {
	paint := a.refresh
	if a.paint != nil {
		paint = a.paint
	}
	if err := paint(); err != nil {
		log.Warn().Err(err).Msg("failed to repaint screen")
	}
}

// SetStatusMessage shows a message in the message bar for a few seconds.
func (a *App) SetStatusMessage(format string, args ...any) {
	a.statusMessage = fmt.Sprintf(format, args...)
	a.statusMessageTime = time.Now()
}

// ShowError displays an error message in the status bar instead of terminating
func (a *App) ShowError(format string, args ...any) {
	a.SetStatusMessage("Warn: "+format, args...)
}
