package component

import "github.com/milk9111/tricolor/geom"

// Transform is the world-space position derived from GridPos.
type Transform struct {
	Translation geom.Vec3
}

var TransformComponent = NewComponent[Transform]()

// GridToWorld maps a cell to world space: x is kept, y is flipped into z and
// every entity sits one unit above the floor.
func GridToWorld(p GridPos) geom.Vec3 {
	return geom.V3(float64(p.X), 1, float64(GridHeight-p.Y-1))
}
