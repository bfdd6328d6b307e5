package meshing

import (
	"testing"

	"voxelview/internal/graphics/renderables/voxels"
	"voxelview/internal/world"
)

func TestExposedFacesIsolatedBlock(t *testing.T) {
	w := world.NewEmpty()
	w.Set(5, 5, 5, world.BlockTypeStone)
	if got := ExposedFaces(w, 5, 5, 5); got != voxels.FaceMaskAll {
		t.Fatalf("isolated block mask %06b, want all six", got.Bits())
	}
}

func TestExposedFacesBuriedBlock(t *testing.T) {
	w := world.NewEmpty()
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				w.Set(5+dx, 5+dy, 5+dz, world.BlockTypeStone)
			}
		}
	}
	if got := ExposedFaces(w, 5, 5, 5); got != voxels.FaceMaskNone {
		t.Fatalf("buried block mask %06b, want none", got.Bits())
	}
}

func TestExposedFacesSingleNeighbor(t *testing.T) {
	w := world.NewEmpty()
	w.Set(5, 5, 5, world.BlockTypeStone)
	w.Set(5, 6, 5, world.BlockTypeDirt)
	got := ExposedFaces(w, 5, 5, 5)
	if got.Has(voxels.FaceUp) {
		t.Fatalf("up face exposed under an opaque neighbor")
	}
	for _, f := range []voxels.Face{voxels.FaceLeft, voxels.FaceRight, voxels.FaceDown, voxels.FaceFront, voxels.FaceBack} {
		if !got.Has(f) {
			t.Errorf("%v face missing from mask %06b", f, got.Bits())
		}
	}
}

func TestExposedFacesAcrossChunkBorder(t *testing.T) {
	// Block at local x=15 of chunk 0, occluded from the right by the first
	// block of chunk 1.
	w := world.NewEmpty()
	w.Set(15, 5, 5, world.BlockTypeStone)
	w.Set(16, 5, 5, world.BlockTypeStone)
	if got := ExposedFaces(w, 15, 5, 5); got.Has(voxels.FaceRight) {
		t.Fatalf("right face exposed across border: %06b", got.Bits())
	}
	if got := ExposedFaces(w, 16, 5, 5); got.Has(voxels.FaceLeft) {
		t.Fatalf("left face exposed across border: %06b", got.Bits())
	}
}

func TestExposedFacesUnloadedNeighborReadsAir(t *testing.T) {
	w := world.NewEmpty()
	w.Set(0, 0, 0, world.BlockTypeStone)
	// every neighbor chunk is unloaded except the owning one
	if got := ExposedFaces(w, 0, 0, 0); got != voxels.FaceMaskAll {
		t.Fatalf("edge-of-world mask %06b, want all six", got.Bits())
	}
}

func TestCollectSkipsBuriedBlocks(t *testing.T) {
	w := world.NewEmpty()
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				w.Set(5+dx, 5+dy, 5+dz, world.BlockTypeStone)
			}
		}
	}
	src := NewWorldSource(w)
	grouped, changed := src.Collect(world.ChunkCoord{}, 2)
	if !changed {
		t.Fatalf("first collect reported unchanged")
	}
	// 27 blocks placed, center one fully buried
	if got := len(grouped[world.BlockTypeStone]); got != 26 {
		t.Fatalf("collected %d stone instances, want 26", got)
	}
	for _, inst := range grouped[world.BlockTypeStone] {
		if inst.ExposedFaces() == voxels.FaceMaskNone {
			t.Fatalf("instance with empty exposure emitted")
		}
	}
}

func TestCollectCachesUntilDirty(t *testing.T) {
	w := world.NewEmpty()
	w.Set(3, 3, 3, world.BlockTypeGrass)
	src := NewWorldSource(w)

	first, changed := src.Collect(world.ChunkCoord{}, 1)
	if !changed || len(first[world.BlockTypeGrass]) != 1 {
		t.Fatalf("first collect: changed=%v groups=%v", changed, first)
	}

	second, changed := src.Collect(world.ChunkCoord{}, 1)
	if changed {
		t.Fatalf("unchanged world reported as changed")
	}
	if len(second[world.BlockTypeGrass]) != 1 {
		t.Fatalf("cached result lost instances")
	}

	w.Set(4, 3, 3, world.BlockTypeStone)
	third, changed := src.Collect(world.ChunkCoord{}, 1)
	if !changed {
		t.Fatalf("dirty chunk not detected")
	}
	if len(third[world.BlockTypeStone]) != 1 || len(third[world.BlockTypeGrass]) != 1 {
		t.Fatalf("rebuilt groups wrong: %v", third)
	}
}

func TestCollectDetectsCenterMove(t *testing.T) {
	w := world.NewEmpty()
	w.Set(3, 3, 3, world.BlockTypeStone)
	// a second cluster two chunks away
	w.Set(3+4*world.ChunkSize, 3, 3, world.BlockTypeStone)

	src := NewWorldSource(w)
	near, _ := src.Collect(world.ChunkCoord{}, 1)
	if len(near[world.BlockTypeStone]) != 1 {
		t.Fatalf("near collect: %d instances, want 1", len(near[world.BlockTypeStone]))
	}

	far, changed := src.Collect(world.ChunkCoord{X: 4}, 1)
	if !changed {
		t.Fatalf("center move not detected")
	}
	if len(far[world.BlockTypeStone]) != 1 {
		t.Fatalf("far collect: %d instances, want 1", len(far[world.BlockTypeStone]))
	}
}

func BenchmarkCollectRebuild(b *testing.B) {
	w := world.NewEmpty()
	for x := 0; x < 2*world.ChunkSize; x++ {
		for z := 0; z < 2*world.ChunkSize; z++ {
			for y := 0; y < 8; y++ {
				w.Set(x, y, z, world.BlockTypeStone)
			}
			w.Set(x, 8, z, world.BlockTypeGrass)
		}
	}
	src := NewWorldSource(w)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// dirty one chunk so every iteration pays the full rescan
		w.Set(1, 1, 1, world.BlockTypeStone)
		src.Collect(world.ChunkCoord{}, 2)
	}
}

func TestCollectRadiusChangeRescans(t *testing.T) {
	w := world.NewEmpty()
	w.Set(3, 3, 3, world.BlockTypeStone)
	w.Set(3+2*world.ChunkSize, 3, 3, world.BlockTypeStone)

	src := NewWorldSource(w)
	narrow, _ := src.Collect(world.ChunkCoord{}, 1)
	if len(narrow[world.BlockTypeStone]) != 1 {
		t.Fatalf("radius 1: %d instances, want 1", len(narrow[world.BlockTypeStone]))
	}
	wide, changed := src.Collect(world.ChunkCoord{}, 2)
	if !changed {
		t.Fatalf("radius change not detected")
	}
	if len(wide[world.BlockTypeStone]) != 2 {
		t.Fatalf("radius 2: %d instances, want 2", len(wide[world.BlockTypeStone]))
	}
}
