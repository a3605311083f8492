package system

import (
	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
)

// GoalSystem emits one EventReachedGoal per goal under the player after a
// move.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem {
	return &GoalSystem{}
}

func (g *GoalSystem) Update(w *ecs.World) {
	overlapping(w, component.GoalTagComponent.Kind(), ecs.EventReachedGoal)
}

// TrapSystem emits one EventHitTrap per trap under the player after a move.
type TrapSystem struct{}

func NewTrapSystem() *TrapSystem {
	return &TrapSystem{}
}

func (t *TrapSystem) Update(w *ecs.World) {
	overlapping(w, component.TrapTagComponent.Kind(), ecs.EventHitTrap)
}

func overlapping(w *ecs.World, tag component.Kind, kind ecs.EventKind) {
	if w == nil || w.Events().Count(ecs.EventPlayerMoved) == 0 {
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

	for _, e := range w.Query(tag, component.GridPosComponent.Kind()) {
		other, ok := ecs.Get(w, e, component.GridPosComponent.Kind())
		if !ok || *other != *pos {
			continue
		}
		w.Events().Push(ecs.Event{Kind: kind, Entity: e})
	}
}
