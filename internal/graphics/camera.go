package graphics

import (
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the projection parameters.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// CameraFrame is the per-frame uniform data shared by every camera-relative
// pipeline. The renderer rewrites it once per frame; draws within the frame
// only read it.
//
// View already contains the camera's fractional offset within its current
// chunk. Positions downstream are expressed relative to ChunkOfCamera, never
// in absolute world units, which keeps every value entering vertex math
// bounded by the render distance instead of the world size.
type CameraFrame struct {
	View          mgl32.Mat4
	Proj          mgl32.Mat4
	InvRotation   mgl32.Mat4
	ChunkOfCamera world.ChunkCoord
}

// NewCameraFrame assembles the frame uniform from the camera projection and
// the observer's pose, already split into owning chunk + intra-chunk offset.
func NewCameraFrame(cam *Camera, chunk world.ChunkCoord, offset, front mgl32.Vec3) CameraFrame {
	view := mgl32.LookAtV(offset, offset.Add(front), mgl32.Vec3{0, 1, 0})

	// Rotation-only inverse, for geometry anchored to camera space.
	rot := view.Mat3().Transpose()
	return CameraFrame{
		View:          view,
		Proj:          cam.ProjectionMatrix(),
		InvRotation:   rot.Mat4(),
		ChunkOfCamera: chunk,
	}
}

// Apply uploads the frame to the uniforms every camera-relative shader in
// this module declares. The shader must already be in use.
func (f *CameraFrame) Apply(s *Shader) {
	view := f.View
	proj := f.Proj
	invRot := f.InvRotation
	s.SetMatrix4("view", &view[0])
	s.SetMatrix4("proj", &proj[0])
	s.SetMatrix4("invRotation", &invRot[0])
	chunk := f.ChunkOfCamera.Vec3()
	s.SetVector3("posOfCurrentChunk", chunk.X(), chunk.Y(), chunk.Z())
}
