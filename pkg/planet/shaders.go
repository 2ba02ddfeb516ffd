package planet

import (
	"math"

	"github.com/taigrr/orrery/pkg/render"
)

// Sun shades an emissive star: surface noise blended between a warm
// base and a bright highlight, with a sine-of-time pulsation that
// breathes the blend threshold.
type Sun struct {
	Base      render.Color
	Highlight render.Color
	Zoom      float64
	PulseRate float64 // radians of pulse phase per frame
	PulseAmp  float64
}

// Shade implements render.FragmentShader.
func (s Sun) Shade(frag *render.Fragment, u *render.Uniforms) render.Color {
	pulse := (math.Sin(float64(u.Time)*s.PulseRate)*0.5 + 0.5) * s.PulseAmp
	n := u.Noise.Sample2(frag.Position.X*s.Zoom, frag.Position.Y*s.Zoom) + pulse
	return render.LerpColor(s.Base, s.Highlight, n)
}

// Rocky shades cratered solid bodies. The base surface lerps between
// two rock colors by low-frequency noise; a second, higher-frequency
// sample below the crater cutoff blends in the crater color.
type Rocky struct {
	Base         render.Color
	Rock         render.Color
	Crater       render.Color
	Zoom         float64
	CraterZoom   float64
	CraterCutoff float64
	Light        Light
}

// Shade implements render.FragmentShader.
func (s Rocky) Shade(frag *render.Fragment, u *render.Uniforms) render.Color {
	n := u.Noise.Sample2(frag.Position.X*s.Zoom, frag.Position.Y*s.Zoom)
	c := render.LerpColor(s.Base, s.Rock, n*0.5+0.5)

	cn := u.Noise.Sample2(frag.Position.X*s.CraterZoom, frag.Position.Y*s.CraterZoom)
	if cn < s.CraterCutoff {
		c = render.LerpColor(c, s.Crater, (s.CraterCutoff-cn)/(1+s.CraterCutoff))
	}

	return render.ScaleColor(c, s.Light.Diffuse(frag))
}

// Gas shades featureless atmospheric bodies with a single two-color
// noise blend. AbsBlend folds the noise to [0,1] instead of shifting
// it, giving a veiled, cloud-washed look.
type Gas struct {
	Base      render.Color
	Highlight render.Color
	Zoom      float64
	AbsBlend  bool
	Light     Light
}

// Shade implements render.FragmentShader.
func (s Gas) Shade(frag *render.Fragment, u *render.Uniforms) render.Color {
	n := u.Noise.Sample2(frag.Position.X*s.Zoom, frag.Position.Y*s.Zoom)
	if s.AbsBlend {
		n = math.Abs(n)
	}
	c := render.LerpColor(s.Base, s.Highlight, n)
	return render.ScaleColor(c, s.Light.Diffuse(frag))
}

// Terra shades an earth-like body: ocean/land/snow biomes thresholded
// on 3D noise, under two moving cloud layers. Each cloud layer warps
// its sampling coordinates with a secondary noise displacement so the
// cover drifts against the surface.
type Terra struct {
	Ocean     render.Color
	DeepOcean render.Color
	Land      render.Color
	Snow      render.Color
	Cloud     render.Color
	BiomeZoom float64
	Light     Light
}

// Biome thresholds on the [-1,1] noise sample.
const (
	terraOceanCutoff = -0.3
	terraSnowCutoff  = 0.7
)

// Shade implements render.FragmentShader.
func (s Terra) Shade(frag *render.Fragment, u *render.Uniforms) render.Color {
	p := frag.Position
	n := u.Noise.Sample3(p.X*s.BiomeZoom, p.Y*s.BiomeZoom, p.Z*s.BiomeZoom)

	var base render.Color
	switch {
	case n < terraOceanCutoff:
		base = render.LerpColor(s.Ocean, s.DeepOcean, (terraOceanCutoff-n)/(1+terraOceanCutoff))
	case n > terraSnowCutoff:
		base = render.LerpColor(s.Land, s.Snow, (n-terraSnowCutoff)/(1-terraSnowCutoff))
	default:
		base = render.LerpColor(s.Ocean, s.Land, (n-terraOceanCutoff)/(terraSnowCutoff-terraOceanCutoff))
	}

	clouds := render.AddColor(
		render.ScaleColor(s.Cloud, s.cloudCover(frag, u, 10.0, 0.3)),
		render.ScaleColor(s.Cloud, s.cloudCover(frag, u, 8.0, 0.4)),
	)
	c := render.LerpColor(base, clouds, 0.5)

	return render.ScaleColor(c, s.Light.Diffuse(frag))
}

// cloudCover returns the [0,1] opacity of one drifting cloud layer.
func (s Terra) cloudCover(frag *render.Fragment, u *render.Uniforms, zoom, drift float64) float64 {
	p := frag.Position
	dx := u.Noise.Sample2(p.X*zoom, p.Y*zoom) * drift
	dz := u.Noise.Sample2(p.Z*zoom, p.Y*zoom) * drift
	n := u.Noise.Sample3(p.X*zoom+dx, p.Y*zoom, p.Z*zoom+dz)
	return math.Max(0, math.Min(1, n*0.5+0.5))
}

// Banded shades a gas giant: sinusoidal latitude bands with a fixed
// storm patch.
type Banded struct {
	BandA render.Color
	BandB render.Color
	Storm render.Color
	Zoom  float64
	Light Light
}

// Shade implements render.FragmentShader.
func (s Banded) Shade(frag *render.Fragment, u *render.Uniforms) render.Color {
	var c render.Color
	switch {
	case math.Abs(frag.Position.X) < 0.3 && frag.Position.Y > 0.5:
		c = s.Storm
	case math.Sin(frag.Position.Y*s.Zoom)*0.5+0.5 > 0.5:
		c = s.BandA
	default:
		c = s.BandB
	}
	return render.ScaleColor(c, s.Light.Diffuse(frag))
}

// Ringed shades a saturn-like body: discrete concentric bands from a
// modulo test on the radial distance from the polar axis. Ring bands
// are emissive; the body surface between them is lit.
type Ringed struct {
	Body          render.Color
	Ring          render.Color
	RingThreshold float64
	RingWidth     float64
	BandWidth     float64
	Light         Light
}

// Shade implements render.FragmentShader.
func (s Ringed) Shade(frag *render.Fragment, u *render.Uniforms) render.Color {
	dist := math.Hypot(frag.Position.X, frag.Position.Y)
	if dist > s.RingThreshold && math.Mod(dist, s.RingWidth) < s.BandWidth {
		return s.Ring
	}
	return render.ScaleColor(s.Body, s.Light.Diffuse(frag))
}
