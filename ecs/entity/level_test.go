package entity

import (
	"testing"

	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/levels"
)

func TestSpawnLevel(t *testing.T) {
	w := ecs.NewWorld()
	lvl := &levels.Level{
		Player: levels.Placement{X: 5, Y: 5, Color: component.ColorRed},
		Goals: []levels.Placement{
			{X: 5, Y: 6, Color: component.ColorRed},
			{X: 5, Y: 6, Color: component.ColorBlue},
		},
		Traps: []levels.Placement{{X: 1, Y: 1, Color: component.ColorWhite}},
	}
	if err := SpawnLevel(w, lvl); err != nil {
		t.Fatalf("spawn: %v", err)
	}

	counts := []struct {
		name string
		kind component.Kind
		want int
	}{
		{"player", component.PlayerTagComponent.Kind(), 1},
		{"goals", component.GoalTagComponent.Kind(), 2},
		{"traps", component.TrapTagComponent.Kind(), 1},
		{"grid", component.GridTagComponent.Kind(), 4},
		{"positions", component.GridPosComponent.Kind(), 4},
		{"colors", component.GameColorComponent.Kind(), 4},
	}
	for _, c := range counts {
		t.Run(c.name, func(t *testing.T) {
			if got := w.Count(c.kind); got != c.want {
				t.Fatalf("expected %d, got %d", c.want, got)
			}
		})
	}

	player, ok := w.Single(component.PlayerTagComponent.Kind())
	if !ok {
		t.Fatalf("expected one player")
	}
	pos, _ := ecs.Get(w, player, component.GridPosComponent.Kind())
	col, _ := ecs.Get(w, player, component.GameColorComponent.Kind())
	if *pos != (component.GridPos{X: 5, Y: 5}) || *col != component.ColorRed {
		t.Fatalf("unexpected player %v %v", pos, col)
	}
}

func TestSpawnLevelNil(t *testing.T) {
	if err := SpawnLevel(ecs.NewWorld(), nil); err == nil {
		t.Fatalf("expected an error for a nil level")
	}
}
