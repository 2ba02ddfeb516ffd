package render

import "github.com/taigrr/orrery/pkg/math3d"

// NoiseField samples a stateless, deterministic scalar field over 2D or
// 3D coordinates. Values are roughly in [-1, 1]. Injecting it through
// Uniforms keeps the pipeline free of hidden state: identical inputs
// always shade identically.
type NoiseField interface {
	Sample2(x, y float64) float64
	Sample3(x, y, z float64) float64
}

// Vertex carries the per-vertex attributes of a mesh.
// ScreenPos and ShadedNormal are derived fields populated by
// ShadeVertex; they are meaningless before the vertex shader runs.
type Vertex struct {
	Position math3d.Vec3 // Object-space position
	Normal   math3d.Vec3 // Object-space normal
	UV       math3d.Vec2 // Texture coordinates
	Color    Color       // Base color

	ScreenPos    math3d.Vec3 // Screen-space (x, y, depth); derived
	ShadedNormal math3d.Vec3 // Normal-matrix-transformed normal; derived
}

// Uniforms hold the per-frame, per-object read-only pipeline inputs.
// Model and View are rebuilt once per drawn object per frame; Time
// advances once per frame, driven externally.
type Uniforms struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4

	Time  int
	Noise NoiseField
}

// Fragment is the ephemeral record produced by the rasterizer for one
// candidate pixel and consumed immediately by the fragment shader.
// Position and Normal are interpolated in object space, so procedural
// surface detail stays stable under camera motion.
type Fragment struct {
	X, Y  int
	Depth float64

	Position math3d.Vec3
	Normal   math3d.Vec3
	Color    Color
}

// FragmentShader computes the final color of one fragment.
// Implementations must be pure with respect to (fragment, uniforms).
type FragmentShader interface {
	Shade(frag *Fragment, u *Uniforms) Color
}
