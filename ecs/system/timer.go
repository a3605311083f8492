package system

import "github.com/milk9111/tricolor/ecs"

// TimerSystem advances the level countdown and raises EventTimerExpired once
// when it runs out.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{}
}

func (t *TimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	res := w.Resources()
	if res.Timer == nil {
		return
	}
	res.Timer.Tick(res.Delta)
	if !res.Timer.Finished() {
		return
	}
	res.Timer = nil
	w.Events().Push(ecs.Event{Kind: ecs.EventTimerExpired})
}
