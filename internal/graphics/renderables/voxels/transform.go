package voxels

import (
	"voxelview/internal/graphics"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// CPU mirrors of the vertex-stage transform. The shader in shaders.go is the
// hot path; these exist for tests, picking and debug tooling, and must stay
// in lockstep with the GLSL.

// RelativePosition converts a block-local position in the given chunk into
// the camera-relative frame: chunk delta times chunk size plus the local
// position. The chunk delta is bounded by the render distance, so the result
// never grows with absolute world coordinates.
func RelativePosition(chunk, cameraChunk world.ChunkCoord, local mgl32.Vec3) mgl32.Vec3 {
	d := chunk.Sub(cameraChunk)
	return mgl32.Vec3{
		float32(d.X*world.ChunkSize) + local.X(),
		float32(d.Y*world.ChunkSize) + local.Y(),
		float32(d.Z*world.ChunkSize) + local.Z(),
	}
}

// ClipPosition composes the full block-pipeline transform:
// proj * view * model * (relativePosition, 1).
func ClipPosition(frame *graphics.CameraFrame, model mgl32.Mat4, chunk world.ChunkCoord, local mgl32.Vec3) mgl32.Vec4 {
	rel := RelativePosition(chunk, frame.ChunkOfCamera, local)
	return frame.Proj.Mul4(frame.View).Mul4(model).Mul4x1(rel.Vec4(1))
}

// OverlayClipPosition composes the debug-overlay transform: a blend between
// the world-anchored result and a camera-anchored result that undoes camera
// rotation only. The blend flag is authored as 0 or 1; fractional values
// interpolate linearly but nothing in this module emits them.
func OverlayClipPosition(frame *graphics.CameraFrame, model mgl32.Mat4, chunk world.ChunkCoord, local mgl32.Vec3, blend float32) mgl32.Vec4 {
	rel := RelativePosition(chunk, frame.ChunkOfCamera, local)
	worldPos := frame.Proj.Mul4(frame.View).Mul4(model).Mul4x1(rel.Vec4(1))
	cameraPos := frame.Proj.Mul4(model).Mul4(frame.InvRotation).Mul4x1(local.Vec4(1))
	return lerpVec4(worldPos, cameraPos, blend)
}

func lerpVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
