package system

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/ecs/entity"
	"github.com/milk9111/tricolor/levels"
)

// LevelSource is polled for the level set; false means still loading.
type LevelSource interface {
	Levels() (*levels.Set, bool)
}

// LevelSystem commits pending level changes: it despawns every grid entity,
// then spawns the requested level and restarts the countdown.
type LevelSystem struct {
	source LevelSource
	timer  time.Duration
}

func NewLevelSystem(source LevelSource, timer time.Duration) *LevelSystem {
	if timer <= 0 {
		timer = component.DefaultCountdown
	}
	return &LevelSystem{source: source, timer: timer}
}

func (l *LevelSystem) Update(w *ecs.World) {
	if w == nil || l.source == nil {
		return
	}

	res := w.Resources()
	if !res.Progress.NeedsLoad() {
		return
	}
	set, ok := l.source.Levels()
	if !ok {
		return
	}

	for _, e := range w.Query(component.GridTagComponent.Kind()) {
		w.DestroyEntity(e)
	}
	res.Progress.Commit(set.Len())

	lvl, ok := set.At(res.Progress.Current)
	if !ok {
		res.Timer = nil
		log.Info().
			Int("index", res.Progress.Current).
			Int("total", res.Progress.Total).
			Msg("all levels finished")
		return
	}
	if err := entity.SpawnLevel(w, lvl); err != nil {
		log.Error().Err(err).Int("index", res.Progress.Current).Msg("spawn level")
		return
	}
	res.Timer = component.NewCountdown(l.timer)
	log.Info().
		Int("index", res.Progress.Current).
		Int("total", res.Progress.Total).
		Int("goals", len(lvl.Goals)).
		Int("traps", len(lvl.Traps)).
		Msg("level loaded")
}
