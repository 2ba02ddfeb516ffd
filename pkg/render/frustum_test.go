package render

import (
	"math"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
)

func TestPlaneSignedDistance(t *testing.T) {
	// Plane at Z=0, normal pointing +Z
	plane := Plane{Normal: math3d.V3(0, 0, 1), D: 0}

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected float64
	}{
		{"origin", math3d.V3(0, 0, 0), 0},
		{"in front", math3d.V3(0, 0, 5), 5},
		{"behind", math3d.V3(0, 0, -3), -3},
		{"offset XY", math3d.V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist := plane.SignedDistance(tc.point)
			if math.Abs(dist-tc.expected) > 1e-9 {
				t.Errorf("got %v, want %v", dist, tc.expected)
			}
		})
	}
}

func TestPlaneNormalize(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 3, 4), D: 10}
	plane.Normalize()

	length := plane.Normal.Len()
	if math.Abs(length-1.0) > 1e-9 {
		t.Errorf("normalized normal length = %v, want 1.0", length)
	}
	if math.Abs(plane.Normal.Y-0.6) > 1e-9 {
		t.Errorf("normal.Y = %v, want 0.6", plane.Normal.Y)
	}
	if math.Abs(plane.Normal.Z-0.8) > 1e-9 {
		t.Errorf("normal.Z = %v, want 0.8", plane.Normal.Z)
	}
	if math.Abs(plane.D-2.0) > 1e-9 {
		t.Errorf("D = %v, want 2.0", plane.D)
	}
}

func testFrustum() Frustum {
	view := math3d.LookAt(math3d.V3(0, 0, 10), math3d.Zero3(), math3d.Up())
	proj := math3d.Perspective(math.Pi/3, 1.0, 0.1, 100)
	return ExtractFrustum(proj.Mul(view))
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name    string
		sphere  Sphere
		visible bool
	}{
		{"at look target", Sphere{Center: math3d.Zero3(), Radius: 1}, true},
		{"behind camera", Sphere{Center: math3d.V3(0, 0, 50), Radius: 1}, false},
		{"past far plane", Sphere{Center: math3d.V3(0, 0, -200), Radius: 1}, false},
		{"far left", Sphere{Center: math3d.V3(-100, 0, 0), Radius: 1}, false},
		{"far up", Sphere{Center: math3d.V3(0, 100, 0), Radius: 1}, false},
		{"straddling left plane", Sphere{Center: math3d.V3(-6, 0, 0), Radius: 3}, true},
		{"huge sphere containing frustum", Sphere{Center: math3d.Zero3(), Radius: 500}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.IntersectsSphere(tc.sphere); got != tc.visible {
				t.Errorf("IntersectsSphere(%v) = %v, want %v", tc.sphere, got, tc.visible)
			}
		})
	}
}

func TestFrustumPlanesFaceInward(t *testing.T) {
	f := testFrustum()

	// The look target is inside the frustum, so every plane sees it on
	// its positive side.
	for i, p := range f.Planes {
		if p.SignedDistance(math3d.Zero3()) < 0 {
			t.Errorf("plane %d puts the look target outside", i)
		}
	}
}
