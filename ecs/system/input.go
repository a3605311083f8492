package system

import (
	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
)

// InputSource reports the direction pressed this frame, already reduced to
// one direction in priority order.
type InputSource interface {
	Direction() component.Direction
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dir := component.DirNone
	if i.source != nil {
		dir = i.source.Direction()
	}
	w.Resources().Input.Direction = dir
}
