package geom

import (
	"math"
	"testing"
)

func TestProjectTargetIsCentred(t *testing.T) {
	cam := DefaultCamera()
	x, y, depth, ok := cam.Project(cam.Target, 400, 600)
	if !ok {
		t.Fatalf("target should be in front of the camera")
	}
	if math.Abs(x-200) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Fatalf("expected target at viewport centre, got (%v, %v)", x, y)
	}
	if want := cam.Target.Sub(cam.Eye).Len(); math.Abs(depth-want) > 1e-9 {
		t.Fatalf("expected depth %v, got %v", want, depth)
	}
}

func TestProjectOrientation(t *testing.T) {
	cam := DefaultCamera()
	cases := []struct {
		name  string
		a, b  Vec3
		check func(ax, ay, bx, by float64) bool
	}{
		{
			name:  "larger_x_is_right",
			a:     V3(1, 1, 5),
			b:     V3(6, 1, 5),
			check: func(ax, _, bx, _ float64) bool { return bx > ax },
		},
		{
			name:  "nearer_row_is_lower",
			a:     V3(3, 1, 0),
			b:     V3(3, 1, 11),
			check: func(_, ay, _, by float64) bool { return by > ay },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ax, ay, _, okA := cam.Project(tc.a, 400, 600)
			bx, by, _, okB := cam.Project(tc.b, 400, 600)
			if !okA || !okB {
				t.Fatalf("points should be visible")
			}
			if !tc.check(ax, ay, bx, by) {
				t.Fatalf("unexpected projection a=(%v,%v) b=(%v,%v)", ax, ay, bx, by)
			}
		})
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := DefaultCamera()
	if _, _, _, ok := cam.Project(V3(3, 60, 20), 400, 600); ok {
		t.Fatalf("point behind the eye should not project")
	}
}

func TestScreenRadiusShrinksWithDistance(t *testing.T) {
	cam := DefaultCamera()
	near := cam.ScreenRadius(V3(3, 1, 11), 0.5, 400, 600)
	far := cam.ScreenRadius(V3(3, 1, 0), 0.5, 400, 600)
	if near <= 0 || far <= 0 {
		t.Fatalf("radii should be positive, got near=%v far=%v", near, far)
	}
	if near <= far {
		t.Fatalf("nearer sphere should appear larger: near=%v far=%v", near, far)
	}
}

func TestDepthMatchesProject(t *testing.T) {
	cam := DefaultCamera()
	p := V3(2, 1, 7)
	_, _, want, _ := cam.Project(p, 400, 600)
	got, ok := cam.Depth(p)
	if !ok || math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected depth %v, got %v (ok=%v)", want, got, ok)
	}
}
