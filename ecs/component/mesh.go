package component

import "image/color"

type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeSphere
	ShapeCube
	ShapeTorus
)

func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeCube:
		return "cube"
	case ShapeTorus:
		return "torus"
	}
	return "none"
}

// Mesh selects the primitive drawn for an entity. Sizes are in world units.
type Mesh struct {
	Shape Shape
	// Size is the sphere/torus radius or the cube edge.
	Size float64
	// Ring is the torus tube radius.
	Ring float64
}

var MeshComponent = NewComponent[Mesh]()

var (
	PlayerMesh = Mesh{Shape: ShapeSphere, Size: 0.5}
	TrapMesh   = Mesh{Shape: ShapeCube, Size: 1.0}
	GoalMesh   = Mesh{Shape: ShapeTorus, Size: 0.5, Ring: 0.1}
)

type Material struct {
	Color color.RGBA
}

var MaterialComponent = NewComponent[Material]()
