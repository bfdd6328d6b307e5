package boundary

import (
	"fmt"

	"voxelview/internal/config"
	"voxelview/internal/graphics"
	"voxelview/internal/graphics/renderer"
	"voxelview/internal/profiling"
	"voxelview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Overlay attribute layout. Per-vertex: position, color, flags (stride 44).
// Per-instance: model matrix, tint color, chunk coordinate (stride 92).
const (
	vertexFloats = 3 + 4 + 4
	vertexStride = vertexFloats * 4

	instanceFloats = 16 + 4 + 3
	instanceStride = instanceFloats * 4
)

// Boundary draws chunk boundary line sets plus a camera-anchored axis
// gizmo. It is a separate instanced pipeline from the block renderable:
// different attributes, different shading stages.
type Boundary struct {
	shader *graphics.Shader

	vao, vbo, ivbo uint32

	builtMode     config.BoundaryMode
	boundaryVerts int32
	gizmoVerts    int32
	lastChunk     world.ChunkCoord
	haveChunk     bool
}

func NewBoundary() *Boundary {
	return &Boundary{builtMode: -1}
}

// Init compiles the overlay pipeline and allocates its buffers.
func (b *Boundary) Init() error {
	var err error
	b.shader, err = graphics.NewShader(VertexShaderSource(), FragmentShaderSource())
	if err != nil {
		return fmt.Errorf("boundary pipeline: %w", err)
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, vertexStride, 7*4)

	gl.GenBuffers(1, &b.ivbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.ivbo)
	for col := uint32(0); col < 4; col++ {
		loc := 3 + col
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, instanceStride, uintptr(col*16))
		gl.VertexAttribDivisor(loc, 1)
	}
	gl.EnableVertexAttribArray(7)
	gl.VertexAttribPointerWithOffset(7, 4, gl.FLOAT, false, instanceStride, 16*4)
	gl.VertexAttribDivisor(7, 1)
	gl.EnableVertexAttribArray(8)
	gl.VertexAttribPointerWithOffset(8, 3, gl.FLOAT, false, instanceStride, 20*4)
	gl.VertexAttribDivisor(8, 1)

	gl.BindVertexArray(0)
	return nil
}

// Render draws the overlay for the camera's current chunk when a boundary
// mode is active.
func (b *Boundary) Render(ctx renderer.RenderContext) {
	mode := config.GetBoundaryMode()
	if mode == config.BoundaryNone {
		return
	}
	defer profiling.Track("boundary.Render")()

	if mode != b.builtMode {
		b.rebuildVertices(mode)
	}
	chunk := ctx.Frame.ChunkOfCamera
	if !b.haveChunk || chunk != b.lastChunk {
		b.rebuildInstances(chunk)
	}

	b.shader.Use()
	ctx.Frame.Apply(b.shader)

	gl.BindVertexArray(b.vao)
	gl.LineWidth(1.0)
	// boundary lines use instance record 0, the gizmo record 1
	b.pointInstance(0)
	gl.DrawArraysInstanced(gl.LINES, 0, b.boundaryVerts, 1)
	b.pointInstance(1)
	gl.DrawArraysInstanced(gl.LINES, b.boundaryVerts, b.gizmoVerts, 1)
	gl.BindVertexArray(0)
}

func (b *Boundary) pointInstance(index int) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.ivbo)
	offset := uintptr(index * instanceStride)
	for col := uint32(0); col < 4; col++ {
		gl.VertexAttribPointerWithOffset(3+col, 4, gl.FLOAT, false, instanceStride, offset+uintptr(col*16))
	}
	gl.VertexAttribPointerWithOffset(7, 4, gl.FLOAT, false, instanceStride, offset+16*4)
	gl.VertexAttribPointerWithOffset(8, 3, gl.FLOAT, false, instanceStride, offset+20*4)
}

func (b *Boundary) rebuildVertices(mode config.BoundaryMode) {
	boundary := SegmentsFor(mode)
	gizmo := axisGizmoSegments()

	data := make([]float32, 0, (len(boundary)+len(gizmo))*2*vertexFloats)
	for _, s := range boundary {
		data = appendSegment(data, s)
	}
	for _, s := range gizmo {
		data = appendSegment(data, s)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	b.boundaryVerts = int32(len(boundary) * 2)
	b.gizmoVerts = int32(len(gizmo) * 2)
	b.builtMode = mode
}

func (b *Boundary) rebuildInstances(chunk world.ChunkCoord) {
	white := mgl32.Vec4{1, 1, 1, 1}
	data := make([]float32, 0, 2*instanceFloats)
	data = appendInstance(data, mgl32.Ident4(), white, chunk.Vec3())
	// gizmo: camera-anchored, pushed to the lower-left of the view
	gizmoModel := mgl32.Translate3D(-2.0, -1.3, -4.0)
	data = appendInstance(data, gizmoModel, white, mgl32.Vec3{})

	gl.BindBuffer(gl.ARRAY_BUFFER, b.ivbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
	b.lastChunk = chunk
	b.haveChunk = true
}

func appendSegment(dst []float32, s LineSegment) []float32 {
	for _, p := range [2]mgl32.Vec3{s.A, s.B} {
		dst = append(dst, p[0], p[1], p[2])
		dst = append(dst, s.Color[0], s.Color[1], s.Color[2], s.Color[3])
		dst = append(dst, s.Flags[0], s.Flags[1], s.Flags[2], s.Flags[3])
	}
	return dst
}

func appendInstance(dst []float32, model mgl32.Mat4, color mgl32.Vec4, chunk mgl32.Vec3) []float32 {
	dst = append(dst, model[:]...)
	dst = append(dst, color[0], color[1], color[2], color[3])
	return append(dst, chunk[0], chunk[1], chunk[2])
}

// SetViewport is part of the Renderable contract; the overlay has no
// viewport-dependent state.
func (b *Boundary) SetViewport(width, height int) {}

// Dispose releases GL resources.
func (b *Boundary) Dispose() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.ivbo != 0 {
		gl.DeleteBuffers(1, &b.ivbo)
	}
	if b.shader != nil {
		b.shader.Delete()
	}
}
