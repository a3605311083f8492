package component

// Direction is a single grid step.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	}
	return "none"
}

// Delta is the cell offset of one step. Up increases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, -1
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// FirstDirection picks one direction from the pressed set in the order up,
// left, down, right.
func FirstDirection(up, left, down, right bool) Direction {
	switch {
	case up:
		return DirUp
	case left:
		return DirLeft
	case down:
		return DirDown
	case right:
		return DirRight
	}
	return DirNone
}

// Input is this frame's edge-triggered move request.
type Input struct {
	Direction Direction
}
