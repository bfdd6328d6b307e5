package boundary

import (
	"testing"

	"voxelview/internal/config"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSegmentsForModeCounts(t *testing.T) {
	// grids: 2 faces per axis pair, 15 interior lines, 2 directions
	grid := 3 * 2 * (world.ChunkSize - 1) * 2
	cases := []struct {
		mode config.BoundaryMode
		want int
	}{
		{config.BoundaryNone, 0},
		{config.BoundaryColumn, 4},
		{config.BoundaryCube, 4 + 8},
		{config.BoundaryFaceGrid, 4 + 8 + grid},
	}
	for _, c := range cases {
		if got := len(SegmentsFor(c.mode)); got != c.want {
			t.Errorf("%v: %d segments, want %d", c.mode, got, c.want)
		}
	}
}

func TestSegmentSetsAreCumulative(t *testing.T) {
	modes := []config.BoundaryMode{
		config.BoundaryColumn,
		config.BoundaryCube,
		config.BoundaryFaceGrid,
	}
	prev := SegmentsFor(config.BoundaryNone)
	for _, mode := range modes {
		cur := SegmentsFor(mode)
		if len(cur) < len(prev) {
			t.Fatalf("%v shrank the line set", mode)
		}
		for i := range prev {
			if cur[i] != prev[i] {
				t.Fatalf("%v: segment %d differs from predecessor set", mode, i)
			}
		}
		prev = cur
	}
}

func TestBoundarySegmentsAreWorldAnchored(t *testing.T) {
	for i, s := range SegmentsFor(config.BoundaryFaceGrid) {
		if s.Flags != (mgl32.Vec4{}) {
			t.Fatalf("segment %d flags %v, want world placement", i, s.Flags)
		}
	}
}

func TestColumnSpansSixteenChunks(t *testing.T) {
	const size = float32(world.ChunkSize)
	for i, s := range SegmentsFor(config.BoundaryColumn) {
		if s.A.Y() != -8*size || s.B.Y() != 8*size {
			t.Errorf("segment %d spans y %v..%v, want ±%v", i, s.A.Y(), s.B.Y(), 8*size)
		}
		if s.Color != (mgl32.Vec4{0, 1, 0, 1}) {
			t.Errorf("segment %d color %v, want green", i, s.Color)
		}
	}
}

func TestCubeEdgesOnChunkFaces(t *testing.T) {
	const size = float32(world.ChunkSize)
	all := SegmentsFor(config.BoundaryCube)
	for _, s := range all[4:] { // after the column set
		if s.Color != (mgl32.Vec4{1, 0, 0, 1}) {
			t.Fatalf("cube edge color %v, want red", s.Color)
		}
		if (s.A.Y() != 0 && s.A.Y() != size) || s.A.Y() != s.B.Y() {
			t.Fatalf("cube edge %v..%v not on a horizontal chunk face", s.A, s.B)
		}
	}
}

func TestFaceGridStaysInsideChunk(t *testing.T) {
	const size = float32(world.ChunkSize)
	all := SegmentsFor(config.BoundaryFaceGrid)
	for _, s := range all[12:] { // after column + cube sets
		if s.Color != (mgl32.Vec4{0, 0, 1, 1}) {
			t.Fatalf("grid line color %v, want blue", s.Color)
		}
		for _, p := range [2]mgl32.Vec3{s.A, s.B} {
			for axis := 0; axis < 3; axis++ {
				if p[axis] < 0 || p[axis] > size {
					t.Fatalf("grid point %v outside chunk", p)
				}
			}
		}
	}
}

func TestAxisGizmoIsCameraAnchored(t *testing.T) {
	gizmo := axisGizmoSegments()
	if len(gizmo) != 3 {
		t.Fatalf("%d gizmo lines, want 3", len(gizmo))
	}
	colors := []mgl32.Vec4{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}}
	for i, s := range gizmo {
		if s.Flags.X() != 1 {
			t.Errorf("gizmo line %d placement blend %v, want 1", i, s.Flags.X())
		}
		if s.Color != colors[i] {
			t.Errorf("gizmo line %d color %v, want %v", i, s.Color, colors[i])
		}
		if s.A != (mgl32.Vec3{}) {
			t.Errorf("gizmo line %d does not start at origin: %v", i, s.A)
		}
	}
}
