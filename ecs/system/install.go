package system

import (
	"time"

	"github.com/milk9111/tricolor/ecs"
)

type Options struct {
	Input      InputSource
	Levels     LevelSource
	Sounds     SoundPlayer
	Timer      time.Duration
	StartLevel int
}

// Install registers the gameplay systems in frame order and requests the
// start level.
func Install(w *ecs.World, opts Options) {
	w.AddSystem(NewInputSystem(opts.Input))
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewGoalSystem())
	w.AddSystem(NewTrapSystem())
	w.AddSystem(NewTimerSystem())
	w.AddSystem(NewProgressSystem())
	w.AddSystem(NewLevelSystem(opts.Levels, opts.Timer))
	w.AddSystem(NewMeshSystem())
	w.AddSystem(NewTransformSystem())
	w.AddSystem(NewVisibilitySystem())
	w.AddSystem(NewAudioSystem(opts.Sounds))
	w.AddSystem(NewTextSystem())

	start := opts.StartLevel
	if start < 0 {
		start = 0
	}
	w.Resources().Progress.Request(start)
}
