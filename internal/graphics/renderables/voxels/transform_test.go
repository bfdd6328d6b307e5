package voxels

import (
	"testing"

	"voxelview/internal/graphics"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func testFrame(chunk world.ChunkCoord) *graphics.CameraFrame {
	cam := graphics.NewCamera(1280, 720)
	frame := graphics.NewCameraFrame(cam, chunk, mgl32.Vec3{4, 9, 4}, mgl32.Vec3{0, 0, -1})
	return &frame
}

func TestRelativePositionScenario(t *testing.T) {
	// Camera at chunk (0,0,0), block at chunk (1,0,0), local (0,0,0):
	// relative position before model/view/proj must be (16,0,0).
	got := RelativePosition(world.ChunkCoord{X: 1}, world.ChunkCoord{}, mgl32.Vec3{})
	if got != (mgl32.Vec3{16, 0, 0}) {
		t.Fatalf("got %v, want (16,0,0)", got)
	}
}

func TestRelativePositionTranslationInvariance(t *testing.T) {
	local := mgl32.Vec3{3, 0.5, 12}
	chunk := world.ChunkCoord{X: 4, Y: -1, Z: 7}
	camera := world.ChunkCoord{X: 2, Y: 0, Z: 5}
	base := RelativePosition(chunk, camera, local)

	deltas := []world.ChunkCoord{
		{X: 1}, {Y: -3}, {Z: 1000},
		{X: -250000, Y: 64, Z: 250000},
		{X: 1 << 30, Y: -(1 << 30), Z: 1 << 30},
	}
	for _, d := range deltas {
		shifted := RelativePosition(
			chunk.Add(d.X, d.Y, d.Z),
			camera.Add(d.X, d.Y, d.Z),
			local,
		)
		if shifted != base {
			t.Errorf("delta %+v: got %v, want %v", d, shifted, base)
		}
	}
}

func TestRelativePositionBoundedByViewDistance(t *testing.T) {
	// At any absolute world position, the magnitude entering vertex math is
	// bounded by render-distance * chunk-size, not world size.
	const radius = 16
	far := world.ChunkCoord{X: 1 << 40, Y: 0, Z: -(1 << 40)}
	for _, d := range []world.ChunkCoord{{X: radius}, {X: -radius, Z: radius}, {Y: radius}} {
		rel := RelativePosition(far.Add(d.X, d.Y, d.Z), far, mgl32.Vec3{15, 15, 15})
		limit := float32((radius + 1) * world.ChunkSize)
		for i := 0; i < 3; i++ {
			if rel[i] > limit || rel[i] < -limit {
				t.Fatalf("component %d out of bounds: %v", i, rel)
			}
		}
	}
}

func TestClipPositionComposition(t *testing.T) {
	frame := testFrame(world.ChunkCoord{X: 100000, Y: 3, Z: -100000})
	chunk := frame.ChunkOfCamera.Add(2, 0, -1)
	local := mgl32.Vec3{1, 2, 3}
	model := mgl32.Translate3D(0.5, 0, 0)

	rel := RelativePosition(chunk, frame.ChunkOfCamera, local)
	want := frame.Proj.Mul4(frame.View).Mul4(model).Mul4x1(rel.Vec4(1))
	got := ClipPosition(frame, model, chunk, local)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestOverlayClipPositionBlendEndpoints(t *testing.T) {
	frame := testFrame(world.ChunkCoord{X: 7, Y: 1, Z: 7})
	chunk := world.ChunkCoord{X: 8, Y: 1, Z: 7}
	local := mgl32.Vec3{2, 2, 2}
	model := mgl32.Translate3D(-1, 0, -4)

	// blend 0 is exactly the world-anchored block transform
	world0 := OverlayClipPosition(frame, model, chunk, local, 0)
	if want := ClipPosition(frame, model, chunk, local); world0 != want {
		t.Fatalf("blend 0: got %v, want %v", world0, want)
	}

	// blend 1 ignores camera position entirely: only rotation is undone
	cam1 := OverlayClipPosition(frame, model, chunk, local, 1)
	want := frame.Proj.Mul4(model).Mul4(frame.InvRotation).Mul4x1(local.Vec4(1))
	if cam1 != want {
		t.Fatalf("blend 1: got %v, want %v", cam1, want)
	}
}

func TestOverlayCameraAnchoredIgnoresChunk(t *testing.T) {
	frame := testFrame(world.ChunkCoord{})
	local := mgl32.Vec3{1, 0, 0}
	model := mgl32.Ident4()

	near := OverlayClipPosition(frame, model, world.ChunkCoord{}, local, 1)
	far := OverlayClipPosition(frame, model, world.ChunkCoord{X: 1 << 20}, local, 1)
	if near != far {
		t.Fatalf("camera-anchored result depends on chunk: %v vs %v", near, far)
	}
}
