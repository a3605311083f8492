package scene

import (
	"testing"

	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/ecs/system"
	"github.com/milk9111/tricolor/geom"
	"github.com/milk9111/tricolor/levels"
)

func spawn(t *testing.T, lvl levels.Level) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	system.Install(w, system.Options{Levels: levels.Ready(&levels.Set{Levels: []levels.Level{lvl}})})
	w.Update(0)
	return w
}

func TestCollectFiltersByLayer(t *testing.T) {
	w := spawn(t, levels.Level{
		Player: levels.Placement{X: 1, Y: 1, Color: component.ColorYellow},
		Goals:  []levels.Placement{{X: 1, Y: 10, Color: component.ColorBlue}},
		Traps:  []levels.Placement{{X: 4, Y: 4, Color: component.ColorPink}},
	})
	cam := geom.DefaultCamera()

	cases := []struct {
		name   string
		layer  component.RenderLayers
		shapes []component.Shape
	}{
		// Farthest first: the goal row is far from the camera.
		{"red", component.LayerRed, []component.Shape{component.ShapeCube, component.ShapeSphere}},
		{"green", component.LayerGreen, []component.Shape{component.ShapeSphere}},
		{"blue", component.LayerBlue, []component.Shape{component.ShapeTorus, component.ShapeCube}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := Collect(w, tc.layer, cam)
			if len(items) != len(tc.shapes) {
				t.Fatalf("expected %d items, got %d", len(tc.shapes), len(items))
			}
			for i, s := range tc.shapes {
				if items[i].Mesh.Shape != s {
					t.Fatalf("item %d: expected %s, got %s", i, s, items[i].Mesh.Shape)
				}
			}
			for i := 1; i < len(items); i++ {
				if items[i].Depth > items[i-1].Depth {
					t.Fatalf("items not sorted far to near")
				}
			}
		})
	}
}

func TestFloor(t *testing.T) {
	tiles := Floor(geom.DefaultCamera())
	if len(tiles) != component.GridWidth*component.GridHeight {
		t.Fatalf("expected a full floor, got %d tiles", len(tiles))
	}
	if tiles[0].Cell.Y != component.GridHeight-1 {
		t.Fatalf("farthest tile should be on the back row, got %s", tiles[0].Cell)
	}
	if last := tiles[len(tiles)-1]; last.Cell.Y != 0 {
		t.Fatalf("nearest tile should be on the front row, got %s", last.Cell)
	}
}

func TestBuildBoard(t *testing.T) {
	w := spawn(t, levels.Level{
		Player: levels.Placement{X: 2, Y: 3, Color: component.ColorWhite},
		Goals: []levels.Placement{
			{X: 5, Y: 5, Color: component.ColorGreen},
			{X: 6, Y: 6, Color: component.ColorRed},
		},
		Traps: []levels.Placement{{X: 5, Y: 5, Color: component.ColorGreen}},
	})

	green := BuildBoard(w, component.LayerGreen)
	if green[3][2].Shape != component.ShapeSphere {
		t.Fatalf("expected player at (2,3)")
	}
	if green[5][5].Shape != component.ShapeCube {
		t.Fatalf("trap should cover the goal on the same cell, got %s", green[5][5].Shape)
	}
	if !green[6][6].Empty() {
		t.Fatalf("red goal must not show in the green view")
	}

	red := BuildBoard(w, component.LayerRed)
	if red[6][6].Shape != component.ShapeTorus || red[6][6].Color != component.ColorRed.RGBA() {
		t.Fatalf("expected red goal in red view, got %+v", red[6][6])
	}
}
