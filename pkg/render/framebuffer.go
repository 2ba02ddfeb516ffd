// Package render provides the software rendering pipeline for Orrery.
package render

import (
	"image"
	"image/png"
	"math"
	"os"
)

// FarDepth is the depth-buffer clear sentinel, larger than any depth a
// shaded vertex can produce.
const FarDepth = math.MaxFloat64

// Framebuffer owns the color and depth buffers for one frame.
// Both are row-major and the same size; DepthAt(x,y) always holds the
// minimum depth written since the last Clear, and the color at (x,y)
// is the color supplied with that minimal-depth write.
type Framebuffer struct {
	Width  int
	Height int

	pixels     []Color
	depth      []float64
	background Color
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]Color, width*height),
		depth:  make([]float64, width*height),
	}
	fb.Clear()
	return fb
}

// SetBackground sets the color Clear fills the color buffer with.
func (fb *Framebuffer) SetBackground(c Color) {
	fb.background = c
}

// Background returns the configured background color.
func (fb *Framebuffer) Background() Color {
	return fb.background
}

// Clear resets every color cell to the background color and every
// depth cell to FarDepth. Cost is linear in pixel count.
func (fb *Framebuffer) Clear() {
	n := len(fb.pixels)
	if n == 0 {
		return
	}
	// Copy-doubling fill, same trick for both buffers.
	fb.pixels[0] = fb.background
	fb.depth[0] = FarDepth
	for i := 1; i < n; i *= 2 {
		copy(fb.pixels[i:], fb.pixels[:i])
		copy(fb.depth[i:], fb.depth[:i])
	}
}

// WritePoint performs a depth-tested write of c at (x, y).
// Out-of-bounds coordinates and non-finite depths are dropped.
// The test is strict less-than, so at a tied depth the first writer
// wins. Reports whether the write happened.
func (fb *Framebuffer) WritePoint(x, y int, depth float64, c Color) bool {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return false
	}
	if math.IsNaN(depth) || math.IsInf(depth, 0) {
		return false
	}
	i := y*fb.Width + x
	if depth >= fb.depth[i] {
		return false
	}
	fb.depth[i] = depth
	fb.pixels[i] = c
	return true
}

// SetPixel sets a pixel unconditionally, bypassing the depth test.
// Used by depth-less overlays; bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.pixels[y*fb.Width+x]
}

// DepthAt returns the depth at (x, y), or FarDepth if out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return FarDepth
	}
	return fb.depth[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm, ignoring depth.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
