// Package noise provides the coordinate-to-scalar noise field the
// pipeline samples for surface relief and procedural shading.
package noise

import opensimplex "github.com/ojrac/opensimplex-go"

// Field is a fixed-seed fractal noise field. It is stateless after
// construction and deterministic: identical coordinates always yield
// identical samples, which is what makes procedural shading testable.
// Values are roughly in [-1, 1].
//
// Field implements render.NoiseField.
type Field struct {
	src        opensimplex.Noise
	octaves    int
	lacunarity float64
	gain       float64
	norm       float64 // 1 / sum of octave amplitudes
}

// Option configures a Field.
type Option func(*Field)

// WithOctaves sets the number of fractal octaves (default 3).
func WithOctaves(n int) Option {
	return func(f *Field) {
		if n > 0 {
			f.octaves = n
		}
	}
}

// WithLacunarity sets the per-octave frequency multiplier (default 2).
func WithLacunarity(l float64) Option {
	return func(f *Field) { f.lacunarity = l }
}

// WithGain sets the per-octave amplitude multiplier (default 0.5).
func WithGain(g float64) Option {
	return func(f *Field) { f.gain = g }
}

// New creates a Field with the given seed.
func New(seed int64, opts ...Option) *Field {
	f := &Field{
		src:        opensimplex.New(seed),
		octaves:    3,
		lacunarity: 2.0,
		gain:       0.5,
	}
	for _, opt := range opts {
		opt(f)
	}

	amp, sum := 1.0, 0.0
	for range f.octaves {
		sum += amp
		amp *= f.gain
	}
	f.norm = 1 / sum
	return f
}

// Sample2 returns the fractal-sum sample at (x, y).
func (f *Field) Sample2(x, y float64) float64 {
	// Coordinates arrive pre-scaled by the caller's zoom; the base
	// frequency here only keeps octave spacing sensible.
	const base = 0.01
	freq, amp, sum := base, 1.0, 0.0
	for range f.octaves {
		sum += amp * f.src.Eval2(x*freq, y*freq)
		freq *= f.lacunarity
		amp *= f.gain
	}
	return sum * f.norm
}

// Sample3 returns the fractal-sum sample at (x, y, z).
func (f *Field) Sample3(x, y, z float64) float64 {
	const base = 0.01
	freq, amp, sum := base, 1.0, 0.0
	for range f.octaves {
		sum += amp * f.src.Eval3(x*freq, y*freq, z*freq)
		freq *= f.lacunarity
		amp *= f.gain
	}
	return sum * f.norm
}
