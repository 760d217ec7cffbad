package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hnnsb/red/app"
	"github.com/hnnsb/red/config"
	"github.com/hnnsb/red/terminal"
	"github.com/hnnsb/red/textfile"
)

func main() {
	configPath := flag.String("config", "", "path to the TOML config file (default ~/.config/red/config.toml)")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(filename, configPath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logPath != "" {
		cfg.Log.File = logPath
	}
	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	palette, err := terminal.ThemePalette(cfg.UI.Theme)
	if err != nil {
		log.Warn().Err(err).Msg("using the default palette")
	}

	var lines []string
	if filename != "" {
		if lines, err = textfile.Load(filename); err != nil {
			return err
		}
	}

	t, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		t.Clear()
		t.Restore()
	}()

	a, err := app.New(t, filename, lines, cfg, palette)
	if err != nil {
		return err
	}
	log.Info().Str("file", filename).Int("rows", a.Engine().RowCount()).Msg("editor started")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// setupLogging points the global logger at the configured file. The
// terminal is in raw mode, so without a file logs are discarded.
func setupLogging(cfg config.LogConfig) (func(), error) {
	level, err := cfg.ParseLevel()
	if err != nil {
		return nil, err
	}
	zerolog.SetGlobalLevel(level)

	if cfg.File == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }, nil
}
