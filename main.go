package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/assets"
	"github.com/milk9111/tricolor/config"
	"github.com/milk9111/tricolor/levels"
	"github.com/milk9111/tricolor/term"
)

func main() {
	configPath := flag.String("config", "", "YAML config file layered over the defaults")
	levelsPath := flag.String("levels", "", "level set JSON (bundled levels when empty)")
	start := flag.Int("level", -1, "index of the first level (-1 uses the config)")
	termMode := flag.Bool("term", false, "play in the terminal instead of a window")
	mute := flag.Bool("mute", false, "disable sound")
	debug := flag.Bool("debug", false, "enable debug mode")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *levelsPath != "" {
		cfg.Levels.Path = *levelsPath
	}
	if *start >= 0 {
		cfg.Levels.Start = *start
	}

	closeLog, err := setupLogging(cfg, *logPath, *termMode, *debug)
	if err != nil {
		log.Fatal().Err(err).Msg("open log")
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	open := levels.Embedded
	if cfg.Levels.Path != "" {
		open = levels.OpenFile(cfg.Levels.Path)
	}
	handle := levels.LoadAsync(ctx, open)

	if *termMode {
		err := term.Run(ctx, term.Options{
			Config: cfg,
			Levels: handle,
			Mute:   *mute,
		})
		if err != nil {
			log.Error().Err(err).Msg("terminal")
			os.Exit(1)
		}
		return
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game, err := NewGame(cfg, handle, assets.NewBank(cfg, *mute), *debug)
	if err != nil {
		log.Fatal().Err(err).Msg("create game")
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}

// setupLogging routes zerolog to a console writer on stderr, or to a file.
// The terminal frontend owns the screen, so without a file its logs are
// discarded.
func setupLogging(cfg *config.Config, path string, termMode, debug bool) (func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	closeFn := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case termMode:
		out = io.Discard
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closeFn, nil
}
