package render

import "math"

// RasterizeTriangle scans the screen-space triangle formed by three
// already vertex-shaded vertices and calls emit once per covered pixel
// center. The emitted Fragment is reused between calls; consumers must
// not retain it past the callback.
//
// Attributes (depth, object-space position, normal, base color) are
// interpolated linearly in screen space by barycentric weights; the
// interpolation is not perspective-corrected, which is acceptable at
// this fidelity since the procedural shading depends only on
// object-space coordinates.
//
// Degenerate triangles (zero signed area, or any non-finite screen
// coordinate from a zero-w perspective divide) emit nothing. The scan
// is clamped to [0,width)x[0,height) only to bound its cost; the
// framebuffer's own bounds check remains the authoritative clip.
func RasterizeTriangle(a, b, c Vertex, width, height int, emit func(*Fragment)) {
	p0, p1, p2 := a.ScreenPos, b.ScreenPos, c.ScreenPos

	if !p0.IsFinite() || !p1.IsFinite() || !p2.IsFinite() {
		return
	}

	// Twice the signed area via the edge function of the full triangle.
	area := edge(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
	if area == 0 {
		return
	}

	minX := int(math.Max(0, math.Floor(min3(p0.X, p1.X, p2.X))))
	maxX := int(math.Min(float64(width-1), math.Ceil(max3(p0.X, p1.X, p2.X))))
	minY := int(math.Max(0, math.Floor(min3(p0.Y, p1.Y, p2.Y))))
	maxY := int(math.Min(float64(height-1), math.Ceil(max3(p0.Y, p1.Y, p2.Y))))

	invArea := 1.0 / area

	var frag Fragment
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5

			// Edge functions against the pixel center. Dividing by
			// the signed area folds the winding into the weights, so
			// inside means all three are >= 0 for either winding.
			w0 := edge(p1.X, p1.Y, p2.X, p2.Y, px, py) * invArea
			w1 := edge(p2.X, p2.Y, p0.X, p0.Y, px, py) * invArea
			w2 := edge(p0.X, p0.Y, p1.X, p1.Y, px, py) * invArea
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			frag.X = x
			frag.Y = y
			frag.Depth = w0*p0.Z + w1*p1.Z + w2*p2.Z
			frag.Position = a.Position.Scale(w0).
				Add(b.Position.Scale(w1)).
				Add(c.Position.Scale(w2))
			frag.Normal = a.ShadedNormal.Scale(w0).
				Add(b.ShadedNormal.Scale(w1)).
				Add(c.ShadedNormal.Scale(w2))
			frag.Color = interpolateColor3(a.Color, b.Color, c.Color, w0, w1, w2)

			emit(&frag)
		}
	}
}

// edge evaluates the edge function of (x0,y0)->(x1,y1) at (px,py):
// positive on one side, negative on the other, zero on the line.
func edge(x0, y0, x1, y1, px, py float64) float64 {
	return (x1-x0)*(py-y0) - (y1-y0)*(px-x0)
}

// interpolateColor3 blends 3 colors by barycentric weights.
func interpolateColor3(c0, c1, c2 Color, w0, w1, w2 float64) Color {
	return RGB(
		clampByte(float64(c0.R)*w0+float64(c1.R)*w1+float64(c2.R)*w2),
		clampByte(float64(c0.G)*w0+float64(c1.G)*w1+float64(c2.G)*w2),
		clampByte(float64(c0.B)*w0+float64(c1.B)*w1+float64(c2.B)*w2),
	)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
