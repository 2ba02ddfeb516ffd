// orrery - Terminal Solar System Renderer
// A software-rendered planetary scene with procedural surfaces.
//
// Controls:
//
//	Mouse drag  - Orbit camera (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Orbit up/down
//	A/D         - Orbit left/right
//	Arrow keys  - Pan the camera target
//	O           - Toggle orbit-path overlay
//	P           - Pause the animation
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/noise"
	"github.com/taigrr/orrery/pkg/render"
)

var (
	targetFPS  = flag.Int("fps", 60, "Target FPS")
	bgColor    = flag.String("bg", "51,51,85", "Background color (R,G,B)")
	spherePath = flag.String("model", "", "Path to a sphere mesh (.obj or .glb); procedural sphere if empty")
	screenshot = flag.String("screenshot", "", "Render one frame to a PNG and exit")
	showOrbits = flag.Bool("orbits", true, "Draw orbit-path overlay")
	seed       = flag.Int64("seed", 0, "Noise seed")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "orrery - Terminal Solar System Renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: orrery [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Orbit up/down/left/right\n")
		fmt.Fprintf(os.Stderr, "  Arrow keys  - Pan camera target\n")
		fmt.Fprintf(os.Stderr, "  O           - Toggle orbit paths\n")
		fmt.Fprintf(os.Stderr, "  P           - Pause animation\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// CameraAxis tracks velocity for one camera control with spring decay.
type CameraAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

// NewCameraAxis creates an axis with a critically damped spring so
// velocity eases back to zero after input stops.
func NewCameraAxis(fps int) CameraAxis {
	return CameraAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update decays velocity toward zero and returns the step to apply
// this frame.
func (a *CameraAxis) Update() float64 {
	step := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return step
}

// CameraInput holds the smoothed camera control state.
type CameraInput struct {
	Yaw, Pitch, Zoom CameraAxis
	fps              int
}

func NewCameraInput(fps int) *CameraInput {
	return &CameraInput{
		Yaw:   NewCameraAxis(fps),
		Pitch: NewCameraAxis(fps),
		Zoom:  NewCameraAxis(fps),
		fps:   fps,
	}
}

// Apply steps the camera by this frame's smoothed velocities.
func (in *CameraInput) Apply(camera *render.Camera) {
	dYaw := in.Yaw.Update()
	dPitch := in.Pitch.Update()
	if dYaw != 0 || dPitch != 0 {
		camera.Orbit(dYaw, dPitch)
	}
	if dZoom := in.Zoom.Update(); dZoom != 0 {
		camera.Zoom(dZoom)
	}
}

func (in *CameraInput) Impulse(yaw, pitch, zoom float64) {
	in.Yaw.Velocity += yaw
	in.Pitch.Velocity += pitch
	in.Zoom.Velocity += zoom
}

// loadSphere loads the shared sphere mesh, falling back to a
// procedural UV sphere when no asset is given.
func loadSphere(path string) (*models.Mesh, error) {
	if path == "" {
		return models.UVSphere(24, 48), nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return models.LoadOBJ(path)
	case ".glb", ".gltf":
		return models.LoadGLB(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj or .glb)", ext)
	}
}

// renderScene draws one full frame of the catalog into the pipeline's
// framebuffer.
func renderScene(pipeline *render.Pipeline, scene *Scene, vertices []render.Vertex, boundingRadius float64, u *render.Uniforms, orbits bool) {
	pipeline.Framebuffer().Clear()
	pipeline.ResetStats()

	for _, body := range scene.Bodies {
		u.Model = body.ModelMatrix(u.Time)
		bounds := render.Sphere{
			Center: body.Position(u.Time),
			Radius: boundingRadius * body.Scale,
		}
		pipeline.DrawCulled(vertices, u, scene.Registry.Get(body.Shader), bounds)
	}

	moon := scene.Moon
	parentPos := scene.Bodies[moon.Parent].Position(u.Time)
	u.Model = moon.ModelMatrixAt(parentPos, u.Time)
	moonBounds := render.Sphere{
		Center: parentPos.Add(moon.Offset),
		Radius: boundingRadius * moon.Scale,
	}
	pipeline.DrawCulled(vertices, u, scene.Registry.Get(moon.Shader), moonBounds)

	if orbits {
		overlay := render.NewOverlay(pipeline.Framebuffer())
		u.Model = math3d.Identity()
		for _, body := range scene.Bodies {
			if body.OrbitRadius > 0 {
				overlay.DrawCircle(math3d.Zero3(), body.OrbitRadius, 96, u, render.RGB(70, 70, 110))
			}
		}
	}
}

func run() error {
	var bgR, bgG, bgB uint8 = 51, 51, 85
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	mesh, err := loadSphere(*spherePath)
	if err != nil {
		return fmt.Errorf("load sphere: %w", err)
	}
	vertices := mesh.VertexArray(render.RGB(255, 255, 255))
	boundingRadius := mesh.BoundingRadius()

	scene := NewScene()
	field := noise.New(*seed)

	camera := render.NewCamera(
		math3d.V3(10, 30, 50),
		math3d.Zero3(),
		math3d.Up(),
	)

	uniforms := render.Uniforms{
		Model:      math3d.Identity(),
		View:       camera.ViewMatrix(),
		Projection: math3d.Identity(),
		Viewport:   math3d.Identity(),
		Noise:      field,
	}

	// Screenshot mode renders one frame without touching the terminal.
	if *screenshot != "" {
		const shotW, shotH = 800, 600
		fb := render.NewFramebuffer(shotW, shotH)
		fb.SetBackground(render.RGB(bgR, bgG, bgB))
		pipeline := render.NewPipeline(fb)

		uniforms.Projection = math3d.Perspective(math.Pi/3, float64(shotW)/float64(shotH), 0.1, 200)
		uniforms.Viewport = math3d.Viewport(shotW, shotH)
		renderScene(pipeline, scene, vertices, boundingRadius, &uniforms, *showOrbits)

		if err := fb.SavePNG(*screenshot); err != nil {
			return fmt.Errorf("save screenshot: %w", err)
		}
		fmt.Printf("Saved %s (%dx%d, %d bodies)\n", *screenshot, shotW, shotH, len(scene.Bodies)+1)
		return nil
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	fb.SetBackground(render.RGB(bgR, bgG, bgB))
	pipeline := render.NewPipeline(fb)

	uniforms.Projection = math3d.Perspective(math.Pi/3, float64(fbWidth)/float64(fbHeight), 0.1, 200)
	uniforms.Viewport = math3d.Viewport(float64(fbWidth), float64(fbHeight))

	input := NewCameraInput(*targetFPS)
	orbitsOn := *showOrbits
	paused := false

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	const orbitStep = math.Pi / 50
	const zoomStep = 1.0

	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				fb.SetBackground(render.RGB(bgR, bgG, bgB))
				pipeline.SetFramebuffer(fb)
				uniforms.Projection = math3d.Perspective(math.Pi/3, float64(fbWidth)/float64(fbHeight), 0.1, 200)
				uniforms.Viewport = math3d.Viewport(float64(fbWidth), float64(fbHeight))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("a"):
					input.Impulse(-orbitStep, 0, 0)
				case ev.MatchString("d"):
					input.Impulse(orbitStep, 0, 0)
				case ev.MatchString("w"):
					input.Impulse(0, orbitStep, 0)
				case ev.MatchString("s"):
					input.Impulse(0, -orbitStep, 0)
				case ev.MatchString("up"):
					camera.MoveCenter(math3d.V3(0, 1, 0))
				case ev.MatchString("down"):
					camera.MoveCenter(math3d.V3(0, -1, 0))
				case ev.MatchString("left"):
					camera.MoveCenter(math3d.V3(-1, 0, 0))
				case ev.MatchString("right"):
					camera.MoveCenter(math3d.V3(1, 0, 0))
				case ev.MatchString("+", "="):
					input.Impulse(0, 0, zoomStep)
				case ev.MatchString("-", "_"):
					input.Impulse(0, 0, -zoomStep)
				case ev.MatchString("o"):
					orbitsOn = !orbitsOn
				case ev.MatchString("p", "space"):
					paused = !paused
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					input.Impulse(float64(dx)*0.01, float64(-dy)*0.01, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					input.Impulse(0, 0, zoomStep)
				case uv.MouseWheelDown:
					input.Impulse(0, 0, -zoomStep)
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()

		if !paused {
			uniforms.Time++
		}

		input.Apply(camera)
		uniforms.View = camera.ViewMatrix()

		renderScene(pipeline, scene, vertices, boundingRadius, &uniforms, orbitsOn)

		termRenderer.Render(pipeline.Framebuffer())
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
