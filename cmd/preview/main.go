package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/system"
	"github.com/milk9111/tricolor/geom"
	"github.com/milk9111/tricolor/levels"
	"github.com/milk9111/tricolor/render"
)

// previewGame cycles through the levels of a set, or writes one PNG per
// level and exits when out is set.
type previewGame struct {
	set         *levels.Set
	worlds      []*ecs.World
	views       *render.Views
	width       int
	height      int
	out         string
	current     int
	tick        int
	ticksPerLvl int
	done        bool
}

func newPreviewGame(set *levels.Set, width, height int, out string, seconds float64) (*previewGame, error) {
	views, err := render.NewViews(geom.DefaultCamera())
	if err != nil {
		return nil, err
	}
	views.Resize(width, height)

	g := &previewGame{
		set:         set,
		views:       views,
		width:       width,
		height:      height,
		out:         out,
		ticksPerLvl: int(seconds * float64(ebiten.DefaultTPS)),
	}
	if g.ticksPerLvl < 1 {
		g.ticksPerLvl = 1
	}
	for i := 0; i < set.Len(); i++ {
		g.worlds = append(g.worlds, levelWorld(set, i))
	}
	return g, nil
}

// levelWorld spawns level i with its presentation components and no input.
func levelWorld(set *levels.Set, i int) *ecs.World {
	w := ecs.NewWorld()
	system.Install(w, system.Options{Levels: levels.Ready(set), StartLevel: i})
	w.Update(0)
	return w
}

func (g *previewGame) Update() error {
	if g.done {
		return ebiten.Termination
	}
	if len(g.worlds) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerLvl {
		g.tick = 0
		g.current = (g.current + 1) % len(g.worlds)
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	if len(g.worlds) == 0 {
		return
	}
	// Pixels can only be read once the game loop is running.
	if g.out != "" && !g.done {
		if err := g.export(); err != nil {
			log.Error().Err(err).Msg("export")
		}
		g.done = true
	}

	g.views.Render(g.worlds[g.current])
	g.views.Draw(screen)
}

func (g *previewGame) export() error {
	if err := os.MkdirAll(g.out, 0o755); err != nil {
		return err
	}
	frame := ebiten.NewImage(g.width, g.height)
	defer frame.Deallocate()

	for i, w := range g.worlds {
		frame.Clear()
		g.views.Render(w)
		g.views.Draw(frame)

		rgba := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
		frame.ReadPixels(rgba.Pix)

		path := filepath.Join(g.out, fmt.Sprintf("level_%02d.png", i))
		if err := writePNG(path, rgba); err != nil {
			return err
		}
		log.Info().Int("level", i).Str("path", path).Msg("wrote preview")
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	levelsPath := flag.String("levels", "", "level set JSON (bundled levels when empty)")
	out := flag.String("out", "", "write one PNG per level into this directory and exit")
	width := flag.Int("width", 1280, "image width")
	height := flag.Int("height", 720, "image height")
	seconds := flag.Float64("cycle", 2, "seconds each level is shown in the window")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var (
		set *levels.Set
		err error
	)
	if *levelsPath != "" {
		set, err = levels.LoadFile(*levelsPath)
	} else {
		set, err = levels.LoadEmbedded()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("load levels")
	}
	if set.Len() == 0 {
		log.Fatal().Err(errors.New("level set is empty")).Msg("load levels")
	}

	g, err := newPreviewGame(set, *width, *height, *out, *seconds)
	if err != nil {
		log.Fatal().Err(err).Msg("create preview")
	}

	ebiten.SetWindowSize(*width/2, *height/2)
	ebiten.SetWindowTitle("tricolor preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("run preview")
	}
}
