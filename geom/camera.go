package geom

import "math"

// Camera is a perspective look-at camera.
type Camera struct {
	Eye    Vec3
	Target Vec3
	Up     Vec3
	// FovY is the vertical field of view in radians.
	FovY float64
	Near float64
}

// DefaultCamera frames the 8×12 board from above and in front.
func DefaultCamera() Camera {
	return Camera{
		Eye:    V3(3, 35, 12),
		Target: V3(3, 10, 5),
		Up:     V3(0, 1, 0),
		FovY:   math.Pi / 4,
		Near:   0.1,
	}
}

// basis returns the camera right, up and forward unit vectors.
func (c Camera) basis() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Eye).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// Project maps a world point onto a viewport of width×height pixels with the
// origin at the top left. depth is the distance along the view direction;
// ok is false for points behind the near plane.
func (c Camera) Project(p Vec3, width, height float64) (x, y, depth float64, ok bool) {
	right, up, forward := c.basis()
	rel := p.Sub(c.Eye)
	depth = rel.Dot(forward)
	if depth < c.Near {
		return 0, 0, depth, false
	}
	f := 1 / math.Tan(c.FovY/2)
	aspect := width / height
	ndcX := rel.Dot(right) * f / (aspect * depth)
	ndcY := rel.Dot(up) * f / depth
	x = (ndcX + 1) * width / 2
	y = (1 - ndcY) * height / 2
	return x, y, depth, true
}

// ScreenRadius approximates the on-screen radius of a sphere of world radius r
// centred at p.
func (c Camera) ScreenRadius(p Vec3, r, width, height float64) float64 {
	right, _, _ := c.basis()
	x0, y0, _, ok0 := c.Project(p, width, height)
	x1, y1, _, ok1 := c.Project(p.Add(right.Scale(r)), width, height)
	if !ok0 || !ok1 {
		return 0
	}
	return math.Hypot(x1-x0, y1-y0)
}

// Depth is the distance of p along the view direction. ok is false behind
// the near plane.
func (c Camera) Depth(p Vec3) (float64, bool) {
	_, _, forward := c.basis()
	d := p.Sub(c.Eye).Dot(forward)
	return d, d >= c.Near
}
