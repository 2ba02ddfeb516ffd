package render

import (
	"image/color"
	"math"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromHex unpacks a 24-bit 0xRRGGBB value into a Color.
func FromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// Hex packs a Color into a 24-bit 0xRRGGBB value. Alpha is discarded.
func Hex(c Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromFloats creates a Color from normalized [0,1] components,
// clamping values outside that range.
func FromFloats(r, g, b float64) Color {
	return RGB(clampByte(r*255), clampByte(g*255), clampByte(b*255))
}

// Floats returns the normalized [0,1] components of a Color.
func Floats(c Color) (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// LerpColor linearly interpolates between two colors.
// t is clamped to [0,1].
func LerpColor(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Color{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}

// ScaleColor multiplies a color by a scalar (for lighting), clamping
// each component to [0,255].
func ScaleColor(c Color, s float64) Color {
	return Color{
		R: clampByte(float64(c.R) * s),
		G: clampByte(float64(c.G) * s),
		B: clampByte(float64(c.B) * s),
		A: c.A,
	}
}

// AddColor adds two colors component-wise with clamping.
func AddColor(a, b Color) Color {
	return Color{
		R: clampByte(float64(a.R) + float64(b.R)),
		G: clampByte(float64(a.G) + float64(b.G)),
		B: clampByte(float64(a.B) + float64(b.B)),
		A: 255,
	}
}

func clampByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, v)))
}
