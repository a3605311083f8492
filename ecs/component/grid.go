package component

import "fmt"

const (
	GridWidth  = 8
	GridHeight = 12
)

// GridPos is a cell on the playfield. Valid cells satisfy
// 0 <= X < GridWidth and 0 <= Y < GridHeight; Y grows away from the viewer.
type GridPos struct {
	X int
	Y int
}

var GridPosComponent = NewComponent[GridPos]()

func (p GridPos) InBounds() bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

// Step returns the neighbouring cell in direction d. ok is false when d is
// DirNone or the neighbour lies outside the grid.
func (p GridPos) Step(d Direction) (GridPos, bool) {
	dx, dy := d.Delta()
	if dx == 0 && dy == 0 {
		return p, false
	}
	next := GridPos{X: p.X + dx, Y: p.Y + dy}
	if !next.InBounds() {
		return p, false
	}
	return next, true
}

func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
