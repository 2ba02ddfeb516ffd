package render

import "github.com/taigrr/orrery/pkg/math3d"

// Plane represents a plane via Ax + By + Cz + D = 0, where (A, B, C)
// is the normal and D the offset from the origin.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// Normalize scales the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// SignedDistance returns the signed distance from the plane to a
// point. Positive means the same side as the normal.
func (p Plane) SignedDistance(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Sphere is a world-space bounding sphere.
type Sphere struct {
	Center math3d.Vec3
	Radius float64
}

// Frustum holds the 6 planes of a view frustum with normals pointing
// inward, ordered left, right, bottom, top, near, far.
type Frustum struct {
	Planes [6]Plane
}

// ExtractFrustum extracts the frustum planes from a combined
// view-projection matrix using the Gribb/Hartmann method.
// For the column-major matrix m, row i element j sits at m[i+j*4].
func ExtractFrustum(m math3d.Mat4) Frustum {
	row := func(i int) math3d.Vec4 {
		return math3d.V4(m[i], m[i+4], m[i+8], m[i+12])
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	plane := func(v math3d.Vec4) Plane {
		p := Plane{Normal: v.Vec3(), D: v.W}
		p.Normalize()
		return p
	}

	return Frustum{Planes: [6]Plane{
		plane(r3.Add(r0)),            // left
		plane(r3.Add(r0.Scale(-1))),  // right
		plane(r3.Add(r1)),            // bottom
		plane(r3.Add(r1.Scale(-1))),  // top
		plane(r3.Add(r2)),            // near
		plane(r3.Add(r2.Scale(-1))),  // far
	}}
}

// IntersectsSphere reports whether the sphere is at least partially
// inside the frustum. A sphere entirely behind any plane is out.
func (f Frustum) IntersectsSphere(s Sphere) bool {
	for _, p := range f.Planes {
		if p.SignedDistance(s.Center) < -s.Radius {
			return false
		}
	}
	return true
}
