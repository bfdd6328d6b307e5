package main

import (
	"voxelview/internal/world"

	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	terrainRadiusChunks = 6
	seaLevel            = 18
)

// generateWorld builds a small rolling-hills terrain so the renderer has
// real chunk content: stone body, dirt cap, grass surface, sand near the
// water line and the occasional tree.
func generateWorld() *world.World {
	w := world.NewEmpty()
	noise := opensimplex.NewNormalized(1337)

	min := -terrainRadiusChunks * world.ChunkSize
	max := terrainRadiusChunks*world.ChunkSize - 1

	for x := min; x <= max; x++ {
		for z := min; z <= max; z++ {
			h := surfaceHeight(noise, x, z)
			for y := 0; y < h-3; y++ {
				w.Set(x, y, z, world.BlockTypeStone)
			}
			for y := maxInt(0, h-3); y < h; y++ {
				w.Set(x, y, z, world.BlockTypeDirt)
			}
			if h <= seaLevel+1 {
				w.Set(x, h, z, world.BlockTypeSand)
			} else {
				w.Set(x, h, z, world.BlockTypeGrass)
			}

			if shouldPlantTree(noise, x, z, h) {
				plantTree(w, x, h+1, z)
			}
		}
	}
	return w
}

func surfaceHeight(noise opensimplex.Noise, x, z int) int {
	n := noise.Eval2(float64(x)*0.02, float64(z)*0.02)
	detail := noise.Eval2(float64(x)*0.11, float64(z)*0.11)
	return seaLevel + int(n*14+detail*3) - 4
}

func shouldPlantTree(noise opensimplex.Noise, x, z, h int) bool {
	if h <= seaLevel+1 {
		return false
	}
	return noise.Eval2(float64(x)*1.7, float64(z)*1.7) > 0.97
}

func plantTree(w *world.World, x, y, z int) {
	const trunk = 4
	for i := 0; i < trunk; i++ {
		w.Set(x, y+i, z, world.BlockTypeLog)
	}
	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			for dy := trunk - 1; dy <= trunk+1; dy++ {
				if dx == 0 && dz == 0 && dy < trunk {
					continue
				}
				if abs(dx)+abs(dz)+abs(dy-trunk) <= 3 {
					w.Set(x+dx, y+dy, z+dz, world.BlockTypeLeaves)
				}
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
