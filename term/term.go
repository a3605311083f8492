// Package term plays the game in a terminal. The three views are drawn as
// top-down boards side by side, each tinted to its channel.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/config"
	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/ecs/system"
	"github.com/milk9111/tricolor/sfx/speaker"
)

// LevelSource is a level set being loaded; Err reports a failed load.
type LevelSource interface {
	system.LevelSource
	Err() error
}

type Options struct {
	Config *config.Config
	Levels LevelSource
	Mute   bool
}

const tick = 16 * time.Millisecond

// Run opens the terminal and plays until the player quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init: %w", err)
	}
	defer screen.Fini()

	var sounds system.SoundPlayer
	if !opts.Mute {
		p, err := speaker.New(volumes(opts.Config))
		if err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			defer p.Stop()
			sounds = p
		}
	}

	return NewApp(screen, opts, sounds).Run(ctx)
}

func volumes(cfg *config.Config) map[component.Sound]float64 {
	out := make(map[component.Sound]float64, len(component.Sounds))
	if cfg == nil {
		return out
	}
	for _, s := range component.Sounds {
		out[s] = cfg.Sound(s).Volume
	}
	return out
}

// App is the terminal frontend: a world, the keys pressed since the last
// frame and the screen it draws to.
type App struct {
	screen tcell.Screen
	world  *ecs.World
	levels LevelSource
	keys   *keyInput
	paused bool
}

func NewApp(screen tcell.Screen, opts Options, sounds system.SoundPlayer) *App {
	timer := component.DefaultCountdown
	start := 0
	if opts.Config != nil {
		timer = opts.Config.Timer()
		start = opts.Config.Levels.Start
	}

	keys := &keyInput{}
	world := ecs.NewWorld()
	system.Install(world, system.Options{
		Input:      keys,
		Levels:     opts.Levels,
		Sounds:     sounds,
		Timer:      timer,
		StartLevel: start,
	})
	log.Debug().Object("world", world).Msg("world ready")

	return &App{screen: screen, world: world, levels: opts.Levels, keys: keys}
}

// World exposes the simulated world.
func (a *App) World() *ecs.World {
	return a.world
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			a.keys.up = true
		case tcell.KeyLeft:
			a.keys.left = true
		case tcell.KeyDown:
			a.keys.down = true
		case tcell.KeyRight:
			a.keys.right = true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'p', 'P':
				a.paused = !a.paused
			case 'w', 'W':
				a.keys.up = true
			case 'a', 'A':
				a.keys.left = true
			case 's', 'S':
				a.keys.down = true
			case 'd', 'D':
				a.keys.right = true
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Step advances the world by dt and redraws. Keys pressed while paused are
// dropped.
func (a *App) Step(dt time.Duration) error {
	if a.levels != nil {
		if err := a.levels.Err(); err != nil {
			return err
		}
	}
	if a.paused {
		a.keys.reset()
	} else {
		a.world.Update(dt)
	}
	Draw(a.screen, a.world, a.paused)
	return nil
}

func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				log.Info().Msg("quit")
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if err := a.Step(dt); err != nil {
				return err
			}
		}
	}
}

// keyInput collects the movement keys pressed since the previous frame.
type keyInput struct {
	up, left, down, right bool
}

func (k *keyInput) Direction() component.Direction {
	d := component.FirstDirection(k.up, k.left, k.down, k.right)
	k.reset()
	return d
}

func (k *keyInput) reset() {
	*k = keyInput{}
}
