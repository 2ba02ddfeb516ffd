// Package planet provides the per-body fragment shaders and their
// dispatch registry. Every shader derives color analytically from the
// fragment's object-space position through the injected noise field;
// no imagery is sampled.
//
// Bodies come in two classes: emissive ones (the sun, ring bands)
// return their color unmodulated, and lit ones attenuate by a diffuse
// term from a fixed point light.
package planet

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/render"
)

// Light is a point light. The scene places one at the origin, inside
// the sun.
type Light struct {
	Position  math3d.Vec3
	Color     render.Color
	Intensity float64
}

// Diffuse returns the attenuation for a fragment:
// max(0, N·L) * intensity / distance². The fragment normal is
// normalized here because the vertex stage leaves it unnormalized.
func (l Light) Diffuse(frag *render.Fragment) float64 {
	toLight := l.Position.Sub(frag.Position)
	dist := toLight.Len()
	if dist == 0 {
		return l.Intensity
	}
	d := frag.Normal.Normalize().Dot(toLight.Scale(1 / dist))
	return math.Max(0, d*l.Intensity/(dist*dist))
}

// Registry maps body identifiers to shaders. Dispatch is total:
// unknown identifiers resolve to the designated default shader, so a
// bad id degrades appearance instead of failing.
type Registry struct {
	shaders  map[int]render.FragmentShader
	fallback render.FragmentShader
}

// NewRegistry creates a registry with the given default shader.
func NewRegistry(fallback render.FragmentShader) *Registry {
	return &Registry{
		shaders:  make(map[int]render.FragmentShader),
		fallback: fallback,
	}
}

// Register binds a body identifier to a shader. New bodies are added
// here, not by editing a dispatcher.
func (r *Registry) Register(id int, s render.FragmentShader) {
	r.shaders[id] = s
}

// Get returns the shader for id, or the default when id is unknown.
func (r *Registry) Get(id int) render.FragmentShader {
	if s, ok := r.shaders[id]; ok {
		return s
	}
	return r.fallback
}
