package render

import (
	"math"
	"testing"
)

func TestClearFillsColorAndDepth(t *testing.T) {
	fb := NewFramebuffer(8, 6)
	fb.SetBackground(RGB(10, 20, 30))

	fb.WritePoint(3, 3, 0.5, RGB(255, 0, 0))
	fb.Clear()

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.GetPixel(x, y) != RGB(10, 20, 30) {
				t.Fatalf("pixel (%d,%d) = %v, want background", x, y, fb.GetPixel(x, y))
			}
			if fb.DepthAt(x, y) != FarDepth {
				t.Fatalf("depth (%d,%d) = %v, want FarDepth", x, y, fb.DepthAt(x, y))
			}
		}
	}
}

func TestWritePointDepthTest(t *testing.T) {
	// The visible result must not depend on write order.
	near := RGB(255, 0, 0)
	far := RGB(0, 0, 255)

	t.Run("near then far", func(t *testing.T) {
		fb := NewFramebuffer(4, 4)
		fb.Clear()
		if !fb.WritePoint(1, 1, 0.25, near) {
			t.Error("near write rejected")
		}
		if fb.WritePoint(1, 1, 0.75, far) {
			t.Error("far write accepted over nearer depth")
		}
		if fb.GetPixel(1, 1) != near {
			t.Errorf("pixel = %v, want near color", fb.GetPixel(1, 1))
		}
	})

	t.Run("far then near", func(t *testing.T) {
		fb := NewFramebuffer(4, 4)
		fb.Clear()
		if !fb.WritePoint(1, 1, 0.75, far) {
			t.Error("far write rejected on empty buffer")
		}
		if !fb.WritePoint(1, 1, 0.25, near) {
			t.Error("near write rejected over farther depth")
		}
		if fb.GetPixel(1, 1) != near {
			t.Errorf("pixel = %v, want near color", fb.GetPixel(1, 1))
		}
	})
}

func TestWritePointTieKeepsFirst(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear()

	first := RGB(1, 2, 3)
	fb.WritePoint(2, 2, 0.5, first)
	if fb.WritePoint(2, 2, 0.5, RGB(200, 200, 200)) {
		t.Error("equal depth should not overwrite")
	}
	if fb.GetPixel(2, 2) != first {
		t.Errorf("pixel = %v, want first write", fb.GetPixel(2, 2))
	}
}

func TestWritePointRejectsBadInput(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetBackground(RGB(0, 0, 0))
	fb.Clear()

	tests := []struct {
		name  string
		x, y  int
		depth float64
	}{
		{"negative x", -1, 0, 0.5},
		{"negative y", 0, -1, 0.5},
		{"x past width", 4, 0, 0.5},
		{"y past height", 0, 4, 0.5},
		{"NaN depth", 1, 1, math.NaN()},
		{"+Inf depth", 1, 1, math.Inf(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if fb.WritePoint(tc.x, tc.y, tc.depth, RGB(255, 255, 255)) {
				t.Error("write accepted, want rejected")
			}
		})
	}

	// Nothing should have been painted.
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.GetPixel(x, y) != RGB(0, 0, 0) {
				t.Fatalf("pixel (%d,%d) modified by rejected write", x, y)
			}
		}
	}
}

func TestSetPixelBypassesDepth(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear()

	fb.WritePoint(1, 1, 0.1, RGB(255, 0, 0))
	fb.SetPixel(1, 1, RGB(0, 255, 0))

	if fb.GetPixel(1, 1) != RGB(0, 255, 0) {
		t.Errorf("overlay pixel = %v, want green", fb.GetPixel(1, 1))
	}
	if fb.DepthAt(1, 1) != 0.1 {
		t.Errorf("depth = %v, want untouched 0.1", fb.DepthAt(1, 1))
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.SetBackground(RGB(0, 0, 0))
	fb.Clear()

	c := RGB(0, 255, 128)
	fb.DrawLine(1, 1, 8, 6, c)

	if fb.GetPixel(1, 1) != c {
		t.Error("start point not drawn")
	}
	if fb.GetPixel(8, 6) != c {
		t.Error("end point not drawn")
	}
}

func TestDrawLineClipsOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(5, 5)
	fb.Clear()

	// Must not panic; off-screen portions are dropped.
	fb.DrawLine(-10, -10, 20, 20, RGB(255, 255, 255))
	if fb.GetPixel(2, 2) != RGB(255, 255, 255) {
		t.Error("on-screen portion of line not drawn")
	}
}

func TestToImageMatchesPixels(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.SetBackground(RGB(5, 6, 7))
	fb.Clear()
	fb.SetPixel(2, 1, RGB(250, 100, 50))

	img := fb.ToImage()
	if got := img.RGBAAt(2, 1); got != RGB(250, 100, 50) {
		t.Errorf("image pixel = %v, want written color", got)
	}
	if got := img.RGBAAt(0, 0); got != RGB(5, 6, 7) {
		t.Errorf("image pixel = %v, want background", got)
	}
}
