package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/tricolor/ecs/component"
	"github.com/milk9111/tricolor/geom"
	"github.com/milk9111/tricolor/scene"
)

const (
	ambient      = 0.35
	torusSegment = 32
)

// Light is the point light used for face shading.
var Light = geom.V3(4, 8, 4)

// Shapes draws projected primitives onto a view image.
type Shapes struct {
	cam   geom.Camera
	white *ebiten.Image
}

func NewShapes(cam geom.Camera) *Shapes {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &Shapes{
		cam:   cam,
		white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (s *Shapes) Tile(dst *ebiten.Image, t scene.Tile) {
	half := scene.FloorSize / 2
	top := t.Center.Y + half
	corners := []geom.Vec3{
		geom.V3(t.Center.X-half, top, t.Center.Z-half),
		geom.V3(t.Center.X+half, top, t.Center.Z-half),
		geom.V3(t.Center.X+half, top, t.Center.Z+half),
		geom.V3(t.Center.X-half, top, t.Center.Z+half),
	}
	s.face(dst, corners, geom.V3(0, 1, 0), scene.FloorColor)
}

func (s *Shapes) Item(dst *ebiten.Image, item scene.Item) {
	switch item.Mesh.Shape {
	case component.ShapeSphere:
		s.sphere(dst, item.Center, item.Mesh.Size, item.Color)
	case component.ShapeCube:
		s.cube(dst, item.Center, item.Mesh.Size, item.Color)
	case component.ShapeTorus:
		s.torus(dst, item.Center, item.Mesh.Size, item.Mesh.Ring, item.Color)
	}
}

func (s *Shapes) sphere(dst *ebiten.Image, c geom.Vec3, r float64, clr color.RGBA) {
	w, h := viewSize(dst)
	x, y, _, ok := s.cam.Project(c, w, h)
	if !ok {
		return
	}
	sr := s.cam.ScreenRadius(c, r, w, h)
	lit := shade(clr, geom.V3(0, 1, 0), c)
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(sr), shade(clr, geom.V3(0, 0, 1), c), true)
	vector.DrawFilledCircle(dst, float32(x-sr*0.2), float32(y-sr*0.2), float32(sr*0.65), lit, true)
}

func (s *Shapes) cube(dst *ebiten.Image, c geom.Vec3, size float64, clr color.RGBA) {
	h := size / 2
	x0, x1 := c.X-h, c.X+h
	y0, y1 := c.Y-h, c.Y+h
	z0, z1 := c.Z-h, c.Z+h

	// Side facing the camera, then front, then top.
	switch {
	case x0 > s.cam.Eye.X:
		s.face(dst, []geom.Vec3{
			geom.V3(x0, y0, z0), geom.V3(x0, y1, z0), geom.V3(x0, y1, z1), geom.V3(x0, y0, z1),
		}, geom.V3(-1, 0, 0), clr)
	case x1 < s.cam.Eye.X:
		s.face(dst, []geom.Vec3{
			geom.V3(x1, y0, z0), geom.V3(x1, y1, z0), geom.V3(x1, y1, z1), geom.V3(x1, y0, z1),
		}, geom.V3(1, 0, 0), clr)
	}
	if z1 < s.cam.Eye.Z {
		s.face(dst, []geom.Vec3{
			geom.V3(x0, y0, z1), geom.V3(x1, y0, z1), geom.V3(x1, y1, z1), geom.V3(x0, y1, z1),
		}, geom.V3(0, 0, 1), clr)
	}
	s.face(dst, []geom.Vec3{
		geom.V3(x0, y1, z0), geom.V3(x1, y1, z0), geom.V3(x1, y1, z1), geom.V3(x0, y1, z1),
	}, geom.V3(0, 1, 0), clr)
}

// torus draws a flat ring lying in the XZ plane.
func (s *Shapes) torus(dst *ebiten.Image, c geom.Vec3, radius, ring float64, clr color.RGBA) {
	w, h := viewSize(dst)
	outer, inner := radius+ring, radius-ring
	vs := make([]ebiten.Vertex, 0, 2*(torusSegment+1))
	is := make([]uint16, 0, 6*torusSegment)
	fill := shade(clr, geom.V3(0, 1, 0), c)
	for i := 0; i <= torusSegment; i++ {
		a := 2 * math.Pi * float64(i) / torusSegment
		dir := geom.V3(math.Cos(a), 0, math.Sin(a))
		for _, r := range []float64{outer, inner} {
			x, y, _, ok := s.cam.Project(c.Add(dir.Scale(r)), w, h)
			if !ok {
				return
			}
			vs = append(vs, vertex(x, y, fill))
		}
		if i > 0 {
			base := uint16(2 * (i - 1))
			is = append(is, base, base+1, base+2, base+1, base+3, base+2)
		}
	}
	dst.DrawTriangles(vs, is, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// face fills a projected planar polygon shaded by its normal.
func (s *Shapes) face(dst *ebiten.Image, corners []geom.Vec3, normal geom.Vec3, clr color.RGBA) {
	w, h := viewSize(dst)
	var path vector.Path
	for i, p := range corners {
		x, y, _, ok := s.cam.Project(p, w, h)
		if !ok {
			return
		}
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	center := geom.Vec3{}
	for _, p := range corners {
		center = center.Add(p)
	}
	center = center.Scale(1 / float64(len(corners)))
	fill := shade(clr, normal, center)

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(fill.R) / 255
		vs[i].ColorG = float32(fill.G) / 255
		vs[i].ColorB = float32(fill.B) / 255
		vs[i].ColorA = float32(fill.A) / 255
	}
	dst.DrawTriangles(vs, is, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func vertex(x, y float64, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	}
}

// shade applies ambient plus Lambert light from Light.
func shade(c color.RGBA, normal, at geom.Vec3) color.RGBA {
	k := normal.Normalize().Dot(Light.Sub(at).Normalize())
	k = ambient + (1-ambient)*math.Max(0, k)
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

func viewSize(img *ebiten.Image) (float64, float64) {
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
