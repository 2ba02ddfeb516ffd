package main

import (
	"math"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/planet"
	"github.com/taigrr/orrery/pkg/render"
)

// Shader ids for the body catalog. The registry treats unknown ids as
// the sun, so the catalog can never dispatch to a missing shader.
const (
	shaderSun = iota
	shaderMercury
	shaderVenus
	shaderEarth
	shaderMars
	shaderJupiter
	shaderSaturn
	shaderUranus
	shaderNeptune
	shaderMoon
)

// Body is one entry in the scene catalog. Orbiting bodies circle the
// origin in the XZ plane; the central body has a zero orbit radius.
type Body struct {
	Name        string
	Shader      int
	OrbitRadius float64
	Phase       float64 // starting angle, radians
	AngularVel  float64 // radians per frame
	Scale       float64
	SpinRate    float64 // self rotation, radians per frame
}

// Position returns the body's world position at the given frame time.
func (b Body) Position(time int) math3d.Vec3 {
	angle := b.Phase + float64(time)*b.AngularVel
	return math3d.V3(
		b.OrbitRadius*math.Cos(angle),
		0,
		b.OrbitRadius*math.Sin(angle),
	)
}

// ModelMatrix builds the body's model transform at the given frame time.
func (b Body) ModelMatrix(time int) math3d.Mat4 {
	spin := float64(time) * b.SpinRate
	return math3d.Translate(b.Position(time)).
		Mul(math3d.RotateY(spin)).
		Mul(math3d.ScaleUniform(b.Scale))
}

// Moon rides along with its parent body at a fixed offset.
type Moon struct {
	Body
	Parent int // index into the scene's body slice
	Offset math3d.Vec3
}

// ModelMatrixAt builds the moon's transform relative to the parent's
// world position.
func (m Moon) ModelMatrixAt(parentPos math3d.Vec3, time int) math3d.Mat4 {
	spin := float64(time) * m.SpinRate
	return math3d.Translate(parentPos.Add(m.Offset)).
		Mul(math3d.RotateY(spin)).
		Mul(math3d.ScaleUniform(m.Scale))
}

// Scene holds the full body catalog plus shared lighting.
type Scene struct {
	Bodies   []Body
	Moon     Moon
	Registry *planet.Registry
	Light    planet.Light
}

// NewScene builds the default solar-system catalog. The orbit radii
// step outward from the sun; angular velocities fall off with radius
// so inner bodies lap outer ones.
func NewScene() *Scene {
	light := planet.Light{
		Position:  math3d.Zero3(),
		Color:     render.RGB(255, 255, 150),
		Intensity: 1.5,
	}

	radii := []float64{12, 14, 16, 18, 20, 28, 34, 40}
	names := []string{"mercury", "venus", "earth", "mars", "jupiter", "saturn", "uranus", "neptune"}
	shaders := []int{shaderMercury, shaderVenus, shaderEarth, shaderMars, shaderJupiter, shaderSaturn, shaderUranus, shaderNeptune}
	scales := []float64{0.6, 0.9, 1.0, 0.8, 1.8, 1.6, 1.2, 1.2}

	bodies := []Body{{
		Name:     "sun",
		Shader:   shaderSun,
		Scale:    1.5,
		SpinRate: 0.002,
	}}
	step := 2 * math.Pi / float64(len(radii))
	for i, r := range radii {
		bodies = append(bodies, Body{
			Name:        names[i],
			Shader:      shaders[i],
			OrbitRadius: r,
			Phase:       float64(i) * step,
			AngularVel:  0.06 / math.Sqrt(r),
			Scale:       scales[i],
			SpinRate:    0.01,
		})
	}

	return &Scene{
		Bodies: bodies,
		Moon: Moon{
			Body: Body{
				Name:     "moon",
				Shader:   shaderMoon,
				Scale:    0.35,
				SpinRate: 0.02,
			},
			Parent: 3, // earth
			Offset: math3d.V3(2.5, 1.0, 0),
		},
		Registry: newRegistry(light),
		Light:    light,
	}
}

// newRegistry wires every body shader with its palette. The sun
// doubles as the fallback for unknown ids.
func newRegistry(light planet.Light) *planet.Registry {
	sun := planet.Sun{
		Base:      render.RGB(255, 200, 50),
		Highlight: render.RGB(255, 255, 150),
		Zoom:      50,
		PulseRate: 0.05,
		PulseAmp:  0.3,
	}

	r := planet.NewRegistry(sun)
	r.Register(shaderSun, sun)

	r.Register(shaderMercury, planet.Rocky{
		Base:         render.RGB(169, 169, 169),
		Rock:         render.RGB(169, 169, 169),
		Crater:       render.RGB(105, 105, 105),
		Zoom:         20,
		CraterZoom:   20,
		CraterCutoff: -0.2,
		Light:        light,
	})

	r.Register(shaderVenus, planet.Gas{
		Base:      render.RGB(218, 165, 32),
		Highlight: render.RGB(255, 228, 181),
		Zoom:      8,
		AbsBlend:  true,
		Light:     light,
	})

	r.Register(shaderEarth, planet.Terra{
		Ocean:     render.RGB(30, 144, 255),
		DeepOcean: render.RGB(25, 105, 210),
		Land:      render.RGB(34, 139, 34),
		Snow:      render.RGB(255, 250, 250),
		Cloud:     render.RGB(255, 255, 255),
		BiomeZoom: 15,
		Light:     light,
	})

	r.Register(shaderMars, planet.Rocky{
		Base:         render.RGB(139, 69, 19),
		Rock:         render.RGB(169, 86, 30),
		Crater:       render.RGB(105, 54, 30),
		Zoom:         20,
		CraterZoom:   8,
		CraterCutoff: -0.3,
		Light:        light,
	})

	r.Register(shaderJupiter, planet.Banded{
		BandA: render.RGB(205, 133, 63),
		BandB: render.RGB(255, 222, 173),
		Storm: render.RGB(255, 69, 0),
		Zoom:  10,
		Light: light,
	})

	// Ring geometry lives on the unit sphere, so the radial constants
	// stay below 1.
	r.Register(shaderSaturn, planet.Ringed{
		Body:          render.RGB(255, 225, 180),
		Ring:          render.RGB(220, 220, 220),
		RingThreshold: 0.55,
		RingWidth:     0.18,
		BandWidth:     0.06,
		Light:         light,
	})

	r.Register(shaderUranus, planet.Gas{
		Base:      render.RGB(173, 216, 230),
		Highlight: render.RGB(224, 255, 255),
		Zoom:      5,
		Light:     light,
	})

	r.Register(shaderNeptune, planet.Gas{
		Base:      render.RGB(0, 0, 128),
		Highlight: render.RGB(70, 130, 180),
		Zoom:      5,
		Light:     light,
	})

	r.Register(shaderMoon, planet.Rocky{
		Base:         render.RGB(200, 200, 200),
		Rock:         render.RGB(160, 160, 160),
		Crater:       render.RGB(110, 110, 110),
		Zoom:         25,
		CraterZoom:   25,
		CraterCutoff: -0.15,
		Light:        light,
	})

	return r
}
