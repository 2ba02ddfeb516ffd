// Package models provides 3D mesh loading and representation for
// Orrery.
package models

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/render"
)

// Mesh represents a triangle mesh with indexed vertices.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    [][3]int
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// BoundingRadius returns the radius of the smallest origin-centered
// sphere containing every vertex. Scene bodies are modeled around the
// origin, so this is the cull radius before the model transform.
func (m *Mesh) BoundingRadius() float64 {
	var maxSq float64
	for _, v := range m.Vertices {
		if l := v.Position.LenSq(); l > maxSq {
			maxSq = l
		}
	}
	return math.Sqrt(maxSq)
}

// CalculateSmoothNormals computes averaged per-vertex normals.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	for _, f := range m.Faces {
		v0 := m.Vertices[f[0]].Position
		v1 := m.Vertices[f[1]].Position
		v2 := m.Vertices[f[2]].Position

		// Area-weighted: the un-normalized cross product weights
		// larger faces more heavily.
		n := v1.Sub(v0).Cross(v2.Sub(v0))

		m.Vertices[f[0]].Normal = m.Vertices[f[0]].Normal.Add(n)
		m.Vertices[f[1]].Normal = m.Vertices[f[1]].Normal.Add(n)
		m.Vertices[f[2]].Normal = m.Vertices[f[2]].Normal.Add(n)
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// VertexArray flattens the indexed mesh into the stride-3 triangle
// vertex sequence the pipeline consumes, stamping each vertex with the
// given base color.
func (m *Mesh) VertexArray(base render.Color) []render.Vertex {
	out := make([]render.Vertex, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		for _, idx := range f {
			v := m.Vertices[idx]
			out = append(out, render.Vertex{
				Position: v.Position,
				Normal:   v.Normal,
				UV:       v.UV,
				Color:    base,
			})
		}
	}
	return out
}

// UVSphere generates a unit sphere with the given number of latitude
// stacks and longitude slices. Used as the fallback body mesh when no
// model file is supplied.
func UVSphere(stacks, slices int) *Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	m := NewMesh("sphere")

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)

			p := math3d.V3(
				math.Sin(phi)*math.Cos(theta),
				math.Cos(phi),
				math.Sin(phi)*math.Sin(theta),
			)
			m.Vertices = append(m.Vertices, MeshVertex{
				Position: p,
				Normal:   p, // unit sphere: normal equals position
				UV: math3d.V2(
					float64(j)/float64(slices),
					float64(i)/float64(stacks),
				),
			})
		}
	}

	ring := slices + 1
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*ring + j
			b := a + ring
			m.Faces = append(m.Faces,
				[3]int{a, b, a + 1},
				[3]int{a + 1, b, b + 1},
			)
		}
	}

	return m
}
