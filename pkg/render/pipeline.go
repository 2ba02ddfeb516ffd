package render

// Pipeline drives one object through the full software pipeline:
// vertex shading, stride-3 primitive assembly, rasterization, fragment
// shading, and the depth-tested framebuffer write.
//
// A Pipeline is single-threaded and owned by the render loop; per-frame
// ordering is clear first, then any number of Draw calls. Draw order
// among objects does not affect the final image because the depth test
// keeps only the minimum-depth write per pixel.
type Pipeline struct {
	fb *Framebuffer

	// Scratch buffer for shaded vertices, reused across draws.
	shaded []Vertex

	// Stats counts bounding-sphere culling outcomes for the frame.
	Stats CullStats
}

// CullStats tracks per-frame object culling.
type CullStats struct {
	Tested int
	Culled int
	Drawn  int
}

// NewPipeline creates a pipeline writing into fb.
func NewPipeline(fb *Framebuffer) *Pipeline {
	return &Pipeline{fb: fb}
}

// Framebuffer returns the framebuffer this pipeline writes to.
func (p *Pipeline) Framebuffer() *Framebuffer {
	return p.fb
}

// SetFramebuffer swaps the output buffer (after a terminal resize).
func (p *Pipeline) SetFramebuffer(fb *Framebuffer) {
	p.fb = fb
}

// ResetStats zeroes the culling counters (call once per frame).
func (p *Pipeline) ResetStats() {
	p.Stats = CullStats{}
}

// Draw renders a flat triangle-vertex sequence with the given uniforms
// and fragment shader. Every 3 consecutive vertices form one triangle;
// a trailing group of fewer than 3 is discarded.
func (p *Pipeline) Draw(vertices []Vertex, u *Uniforms, shader FragmentShader) {
	p.shaded = p.shaded[:0]
	for _, v := range vertices {
		p.shaded = append(p.shaded, ShadeVertex(v, u))
	}

	w, h := p.fb.Width, p.fb.Height
	for i := 0; i+2 < len(p.shaded); i += 3 {
		RasterizeTriangle(p.shaded[i], p.shaded[i+1], p.shaded[i+2], w, h,
			func(frag *Fragment) {
				p.fb.WritePoint(frag.X, frag.Y, frag.Depth, shader.Shade(frag, u))
			})
	}
}

// DrawCulled renders like Draw but first tests the object's
// world-space bounding sphere against the view frustum, skipping the
// whole vertex stage for invisible objects. Reports whether the object
// was drawn.
func (p *Pipeline) DrawCulled(vertices []Vertex, u *Uniforms, shader FragmentShader, bounds Sphere) bool {
	p.Stats.Tested++

	frustum := ExtractFrustum(u.Projection.Mul(u.View))
	if !frustum.IntersectsSphere(bounds) {
		p.Stats.Culled++
		return false
	}

	p.Stats.Drawn++
	p.Draw(vertices, u, shader)
	return true
}
