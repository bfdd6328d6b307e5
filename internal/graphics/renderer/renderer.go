package renderer

import (
	"voxelview/internal/graphics"
	"voxelview/internal/observer"
	"voxelview/internal/profiling"
	"voxelview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features.
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
}

// NewRenderer configures GL state shared by all features and initializes
// every renderable.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
	}

	for _, renderable := range rs {
		if err := renderable.Init(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render draws one frame. The camera frame is assembled exactly once per
// frame from the observer's pose; every renderable reads the same frame.
func (r *Renderer) Render(w *world.World, obs *observer.Observer, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	frame := graphics.NewCameraFrame(r.camera, obs.Chunk(), obs.ChunkOffset(), obs.Front())
	ctx := RenderContext{Frame: &frame, World: w, DT: dt}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// SetViewport propagates a window resize.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose releases all renderable resources.
func (r *Renderer) Dispose() {
	for _, renderable := range r.renderables {
		renderable.Dispose()
	}
}
