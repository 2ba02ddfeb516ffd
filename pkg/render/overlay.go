package render

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
)

// Overlay draws depth-less line art (orbit paths, axes) into a
// framebuffer through the same view/projection/viewport chain the
// pipeline uses, so overlays line up with shaded geometry.
type Overlay struct {
	fb *Framebuffer
}

// NewOverlay creates an overlay writing into fb.
func NewOverlay(fb *Framebuffer) *Overlay {
	return &Overlay{fb: fb}
}

// SetFramebuffer swaps the output buffer (after a terminal resize).
func (o *Overlay) SetFramebuffer(fb *Framebuffer) {
	o.fb = fb
}

// project transforms a world point to screen coordinates.
// ok is false when the point is behind the camera.
func (o *Overlay) project(p math3d.Vec3, u *Uniforms) (x, y int, ok bool) {
	clip := u.Projection.Mul(u.View).MulVec4(math3d.V4FromV3(p, 1))
	if clip.W <= 0 {
		return 0, 0, false
	}
	ndc := math3d.V4FromV3(clip.PerspectiveDivide(), 1)
	screen := u.Viewport.MulVec4(ndc)
	return int(screen.X), int(screen.Y), true
}

// DrawLine3D draws a world-space line segment. Segments fully behind
// the camera are skipped; partial clipping is left to the framebuffer
// bounds check.
func (o *Overlay) DrawLine3D(a, b math3d.Vec3, u *Uniforms, c Color) {
	x0, y0, ok0 := o.project(a, u)
	x1, y1, ok1 := o.project(b, u)
	if !ok0 || !ok1 {
		return
	}
	o.fb.DrawLine(x0, y0, x1, y1, c)
}

// DrawCircle draws a circle of the given radius around center, lying
// in the plane perpendicular to the world up axis. Used for orbit
// paths.
func (o *Overlay) DrawCircle(center math3d.Vec3, radius float64, segments int, u *Uniforms, c Color) {
	if segments < 3 {
		segments = 3
	}
	step := 2 * math.Pi / float64(segments)

	prev := center.Add(math3d.V3(radius, 0, 0))
	for i := 1; i <= segments; i++ {
		angle := float64(i) * step
		next := center.Add(math3d.V3(radius*math.Cos(angle), 0, radius*math.Sin(angle)))
		o.DrawLine3D(prev, next, u, c)
		prev = next
	}
}

// DrawAxes draws the world coordinate axes at the origin.
func (o *Overlay) DrawAxes(length float64, u *Uniforms) {
	origin := math3d.Zero3()
	o.DrawLine3D(origin, math3d.V3(length, 0, 0), u, RGB(255, 0, 0))
	o.DrawLine3D(origin, math3d.V3(0, length, 0), u, RGB(0, 255, 0))
	o.DrawLine3D(origin, math3d.V3(0, 0, length), u, RGB(0, 0, 255))
}
