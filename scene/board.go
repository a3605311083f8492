package scene

import (
	"image/color"

	"github.com/milk9111/tricolor/ecs"
	"github.com/milk9111/tricolor/ecs/component"
)

// Cell is the top-down content of one grid cell in a view.
type Cell struct {
	Shape component.Shape
	Color color.RGBA
}

func (c Cell) Empty() bool {
	return c.Shape == component.ShapeNone
}

// Board is a top-down view indexed [y][x] with y = 0 nearest the viewer.
type Board [component.GridHeight][component.GridWidth]Cell

// shapeRank orders shapes sharing a cell: the player is drawn over traps and
// traps over goals.
func shapeRank(s component.Shape) int {
	switch s {
	case component.ShapeSphere:
		return 3
	case component.ShapeCube:
		return 2
	case component.ShapeTorus:
		return 1
	}
	return 0
}

// BuildBoard returns what layer shows in each cell.
func BuildBoard(w *ecs.World, layer component.RenderLayers) Board {
	var b Board
	ecs.ForEach3(w, component.GridPosComponent.Kind(), component.MeshComponent.Kind(), component.RenderLayersComponent.Kind(),
		func(e ecs.Entity, pos *component.GridPos, mesh *component.Mesh, layers *component.RenderLayers) {
			if !layers.Has(layer) || !pos.InBounds() {
				return
			}
			cell := &b[pos.Y][pos.X]
			if shapeRank(mesh.Shape) <= shapeRank(cell.Shape) {
				return
			}
			cell.Shape = mesh.Shape
			cell.Color = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			if mat, ok := ecs.Get(w, e, component.MaterialComponent.Kind()); ok {
				cell.Color = mat.Color
			}
		})
	return b
}
