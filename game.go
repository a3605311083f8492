package main

import (
	"fmt"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/config"
	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/system"
	"github.com/milk9111/tricolor/geom"
	"github.com/milk9111/tricolor/levels"
	"github.com/milk9111/tricolor/render"
)

type Game struct {
	world  *ecs.World
	levels *levels.Handle
	views  *render.Views
	hud    *HUD
	pause  *ebitenui.UI

	paused bool
	quit   bool
	debug  bool
}

func NewGame(cfg *config.Config, handle *levels.Handle, sounds system.SoundPlayer, debug bool) (*Game, error) {
	views, err := render.NewViews(geom.DefaultCamera())
	if err != nil {
		return nil, fmt.Errorf("views: %w", err)
	}
	hud, err := NewHUD()
	if err != nil {
		return nil, fmt.Errorf("hud: %w", err)
	}

	world := ecs.NewWorld()
	system.Install(world, system.Options{
		Input:      Keyboard{},
		Levels:     handle,
		Sounds:     sounds,
		Timer:      cfg.Timer(),
		StartLevel: cfg.Levels.Start,
	})
	log.Debug().Object("world", world).Msg("world ready")

	g := &Game{
		world:  world,
		levels: handle,
		views:  views,
		hud:    hud,
		debug:  debug,
	}
	g.pause = NewPauseUI(g, cfg.Window.Width, cfg.Window.Height)
	return g, nil
}

func (g *Game) Update() error {
	if err := g.levels.Err(); err != nil {
		return err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
		log.Debug().Bool("paused", g.paused).Msg("pause toggled")
	}
	if g.quit {
		return ebiten.Termination
	}
	if g.paused {
		g.pause.Update()
		return nil
	}

	g.world.Update(time.Second / time.Duration(ebiten.TPS()))
	g.hud.Update(g.world.Resources().Text)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.views.Render(g.world)
	g.views.Draw(screen)
	g.hud.Draw(screen, g.world.Resources().Text)

	if g.paused {
		g.pause.Draw(screen)
	}

	if g.debug {
		res := g.world.Resources()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f  frame: %d  level: %d/%d  entities: %d",
			ebiten.ActualFPS(), res.Frame, res.Progress.Current, res.Progress.Total, len(g.world.Entities()),
		))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.views.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
