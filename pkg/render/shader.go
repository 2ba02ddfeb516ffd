package render

import "github.com/taigrr/orrery/pkg/math3d"

// Spatial frequency of the surface-relief noise and how far a vertex
// moves along its normal per unit of sampled noise.
const (
	reliefZoom  = 5.0
	reliefScale = 0.5
)

// ShadeVertex runs the vertex stage for a single vertex: procedural
// relief displacement, model/view/projection transform, perspective
// divide, viewport mapping, and normal transform.
//
// The returned vertex keeps the original object-space attributes and
// gains the derived ScreenPos and ShadedNormal fields. A vertex whose
// clip-space w is zero yields non-finite screen coordinates; the
// rasterizer treats any triangle containing one as producing no
// fragments, so no guard is needed here.
func ShadeVertex(v Vertex, u *Uniforms) Vertex {
	// Displace along the normal by noise sampled at the object-space
	// position. Sampling object space keeps the relief glued to the
	// surface regardless of where the body orbits.
	d := u.Noise.Sample3(
		v.Position.X*reliefZoom,
		v.Position.Y*reliefZoom,
		v.Position.Z*reliefZoom,
	)
	displaced := v.Position.Add(v.Normal.Scale(d * reliefScale))

	clip := u.Projection.Mul(u.View).Mul(u.Model).
		MulVec4(math3d.V4FromV3(displaced, 1))

	ndc := math3d.V4FromV3(
		math3d.V3(clip.X/clip.W, clip.Y/clip.W, clip.Z/clip.W), 1)

	screen := u.Viewport.MulVec4(ndc)

	// Normal matrix: inverse-transpose of the model's upper 3x3.
	// A singular model matrix degrades lighting to the untransformed
	// basis instead of aborting the frame.
	normalMat := normalMatrix(math3d.Mat3FromMat4(u.Model))

	out := v
	out.ScreenPos = math3d.V3(screen.X, screen.Y, screen.Z)
	// Not renormalized: matches the documented shading behavior.
	// Shaders that need a unit normal normalize locally.
	out.ShadedNormal = normalMat.MulVec3(v.Normal)
	return out
}

// normalMatrix returns transpose(inverse(m)), or the identity when m
// has no inverse.
func normalMatrix(m math3d.Mat3) math3d.Mat3 {
	inv, ok := m.Transpose().Inverse()
	if !ok {
		return math3d.Identity3()
	}
	return inv
}
