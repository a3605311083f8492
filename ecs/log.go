package ecs

import (
	"fmt"

	"github.com/rs/zerolog"
)

// MarshalZerologObject logs a summary of the world: entity count, frame and
// the system order.
func (w *World) MarshalZerologObject(e *zerolog.Event) {
	if w == nil {
		return
	}
	systems := zerolog.Arr()
	for _, s := range w.systems.Systems() {
		systems = systems.Str(fmt.Sprintf("%T", s))
	}
	e.Int("total_entities", w.entities.count).
		Uint64("frame", w.res.Frame).
		Str("progress", w.res.Progress.State().String()).
		Array("systems", systems)
}
