package system

import (
	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
)

// SoundPlayer plays a cue. Implementations must not block the frame.
type SoundPlayer interface {
	Play(s component.Sound)
}

type AudioSystem struct {
	player SoundPlayer
}

func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil || a.player == nil {
		return
	}

	for _, evt := range w.Events().All() {
		sound, ok := soundFor(evt.Kind)
		if !ok {
			continue
		}
		a.player.Play(sound)
	}
}

func soundFor(kind ecs.EventKind) (component.Sound, bool) {
	switch kind {
	case ecs.EventReachedGoal:
		return component.SoundGoalReached, true
	case ecs.EventHitTrap:
		return component.SoundHitTrap, true
	case ecs.EventPlayerMoved:
		return component.SoundPlayerMoved, true
	case ecs.EventTimerExpired:
		return component.SoundTimerExpired, true
	}
	return 0, false
}
