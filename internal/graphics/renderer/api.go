package renderer

import (
	"voxelview/internal/graphics"
	"voxelview/internal/world"
)

// RenderContext provides the shared per-frame context for all renderables.
// Frame is rewritten once per frame before any renderable runs; renderables
// only read it.
type RenderContext struct {
	Frame *graphics.CameraFrame
	World *world.World
	DT    float64
}

// Renderable defines the lifecycle of a renderable feature.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
