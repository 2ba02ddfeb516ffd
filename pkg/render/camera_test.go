package render

import (
	"math"
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
)

func TestOrbitPreservesDistance(t *testing.T) {
	c := NewCamera(math3d.V3(10, 30, 50), math3d.Zero3(), math3d.Up())
	want := c.Distance()

	for i := 0; i < 100; i++ {
		c.Orbit(0.1, 0.05)
	}

	if math.Abs(c.Distance()-want) > 0.001 {
		t.Errorf("distance after orbiting = %v, want %v", c.Distance(), want)
	}
}

func TestOrbitRoundTrip(t *testing.T) {
	c := NewCamera(math3d.V3(0, 0, 20), math3d.Zero3(), math3d.Up())
	start := c.Eye

	c.Orbit(0.7, 0.3)
	c.Orbit(-0.7, -0.3)

	if start.Distance(c.Eye) > 0.001 {
		t.Errorf("eye after round trip = %v, want %v", c.Eye, start)
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := NewCamera(math3d.V3(0, 0, 20), math3d.Zero3(), math3d.Up())

	// Push far past the pole; the camera must stay short of it.
	for i := 0; i < 200; i++ {
		c.Orbit(0, 0.1)
	}

	offset := c.Eye.Sub(c.Center)
	pitch := math.Asin(offset.Y / offset.Len())
	if pitch > math.Pi/2-0.005 {
		t.Errorf("pitch = %v, want clamped below the pole", pitch)
	}

	// The view matrix must stay well formed at the clamp.
	m := c.ViewMatrix()
	for _, v := range m {
		if math.IsNaN(v) {
			t.Fatal("view matrix has NaN at pitch clamp")
		}
	}
}

func TestZoomClampsMinDistance(t *testing.T) {
	c := NewCamera(math3d.V3(0, 0, 5), math3d.Zero3(), math3d.Up())

	c.Zoom(100)

	if c.Distance() < 1.0-1e-9 {
		t.Errorf("distance = %v, want >= 1", c.Distance())
	}

	// Zooming back out still works after hitting the clamp.
	c.Zoom(-4)
	if math.Abs(c.Distance()-5.0) > 0.001 {
		t.Errorf("distance after zoom out = %v, want 5", c.Distance())
	}
}

func TestMoveCenterTranslatesBoth(t *testing.T) {
	c := NewCamera(math3d.V3(0, 0, 10), math3d.Zero3(), math3d.Up())
	want := c.Distance()

	delta := math3d.V3(3, -2, 1)
	c.MoveCenter(delta)

	if c.Center.Distance(delta) > 1e-9 {
		t.Errorf("center = %v, want %v", c.Center, delta)
	}
	if math.Abs(c.Distance()-want) > 1e-9 {
		t.Errorf("distance changed to %v during pan, want %v", c.Distance(), want)
	}
}

func TestViewMatrixLooksAtCenter(t *testing.T) {
	c := NewCamera(math3d.V3(0, 0, 10), math3d.Zero3(), math3d.Up())
	m := c.ViewMatrix()

	// The center maps onto the -Z axis in view space.
	p := m.MulPoint(math3d.Zero3())
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("center maps to (%v,%v), want on the view axis", p.X, p.Y)
	}
	if p.Z >= 0 {
		t.Errorf("center at view-space z = %v, want negative (in front)", p.Z)
	}
}
