package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/levels"
)

func main() {
	file := flag.String("file", "levels/levels.level.json", "level set to edit; created on save if missing")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Str("file", *file).Msg("editor starting")

	var set *levels.Set
	loaded, err := levels.LoadFile(*file)
	switch {
	case err == nil:
		set = loaded
	case errors.Is(err, os.ErrNotExist):
		log.Info().Msg("starting a new level set")
	default:
		log.Fatal().Err(err).Msg("load level set")
	}

	clip, err := NewClipboard()
	if err != nil {
		log.Warn().Err(err).Msg("clipboard disabled")
	}

	game, err := NewEditorGame(levels.NewDraft(set), *file, clip)
	if err != nil {
		log.Fatal().Err(err).Msg("build editor")
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(leftPanelWidth+component.GridWidth*cellSize+200, 720)
	ebiten.SetWindowTitle("tricolor editor")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run editor")
	}
}
