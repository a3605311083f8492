package entity

import (
	"fmt"

	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/levels"
)

// SpawnLevel creates the player, goals and traps of lvl. Every entity gets a
// GridTag so the next level change can despawn it.
func SpawnLevel(w *ecs.World, lvl *levels.Level) error {
	if lvl == nil {
		return fmt.Errorf("spawn level: nil level")
	}
	if _, err := spawnPlaced(w, lvl.Player, component.PlayerTagComponent.Kind(), "Player"); err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	for i, g := range lvl.Goals {
		if _, err := spawnPlaced(w, g, component.GoalTagComponent.Kind(), "Goal"); err != nil {
			return fmt.Errorf("spawn goal %d: %w", i, err)
		}
	}
	for i, t := range lvl.Traps {
		if _, err := spawnPlaced(w, t, component.TrapTagComponent.Kind(), "Trap"); err != nil {
			return fmt.Errorf("spawn trap %d: %w", i, err)
		}
	}
	return nil
}

func spawnPlaced[T any](w *ecs.World, p levels.Placement, tag component.ComponentKind[T], name string) (ecs.Entity, error) {
	e := w.CreateEntity()
	var zero T
	if err := ecs.Add(w, e, tag, &zero); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.GridTagComponent.Kind(), &component.GridTag{}); err != nil {
		return 0, err
	}
	pos := p.Pos()
	if err := ecs.Add(w, e, component.GridPosComponent.Kind(), &pos); err != nil {
		return 0, err
	}
	c := p.Color
	if err := ecs.Add(w, e, component.GameColorComponent.Kind(), &c); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return 0, err
	}
	return e, nil
}
