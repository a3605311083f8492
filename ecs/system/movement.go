package system

import (
	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
)

// MovementSystem applies the frame's direction to the player. Moves that would
// leave the grid are dropped without an event.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dir := w.Resources().Input.Direction
	if dir == component.DirNone {
		return
	}

	player, ok := w.Single(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pos, ok := ecs.Get(w, player, component.GridPosComponent.Kind())
	if !ok {
		return
	}

	next, moved := pos.Step(dir)
	if !moved {
		return
	}
	*pos = next
	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerMoved, Entity: player})
}
