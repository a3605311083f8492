package system

import (
	"github.com/rs/zerolog/log"

	"github.com/milk9111/tricolor/ecs"
)

// ProgressSystem turns gameplay signals into level requests. Signals are
// applied in the order they were raised.
type ProgressSystem struct{}

func NewProgressSystem() *ProgressSystem {
	return &ProgressSystem{}
}

func (p *ProgressSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	res := w.Resources()
	for _, evt := range w.Events().All() {
		switch evt.Kind {
		case ecs.EventReachedGoal:
			res.Progress.Advance()
			log.Debug().Int("desired", res.Progress.Desired).Msg("goal reached")
		case ecs.EventHitTrap, ecs.EventTimerExpired:
			res.Progress.Reload()
			res.Timer = nil
			log.Info().
				Str("cause", string(evt.Kind)).
				Int("desired", res.Progress.Desired).
				Msg("level reload")
		}
	}
}
