package voxels

import (
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// BiomeColorSource supplies the flat tint blended into colorized materials.
// Per-region biome data is owned by a collaborator outside this module;
// until it exists, PlaceholderBiome stands in with a fixed color.
type BiomeColorSource interface {
	ColorAt(chunk world.ChunkCoord) mgl32.Vec3
}

// PlaceholderBiome returns the same color everywhere.
// TODO: replace with the region-data lookup once chunk biome ids are
// replicated to the client.
type PlaceholderBiome struct{}

func (PlaceholderBiome) ColorAt(world.ChunkCoord) mgl32.Vec3 {
	return mgl32.Vec3{0.333, 0.789, 0.247}
}

// CPU mirror of the fragment-stage compositor, kept in lockstep with the
// GLSL in shaders.go.

// TintWeight resolves the effective blend weight of the biome color:
// zero unless the material is colorized, gated by the mask alpha when the
// material is mask-gated.
func TintWeight(colorize, masked bool, maskAlpha float32) float32 {
	if !colorize {
		return 0
	}
	if masked {
		return maskAlpha
	}
	return 1
}

// Composite blends the biome tint into a base texture sample:
// lerp(white, biome, weight) multiplied component-wise into the base.
// The tint term's alpha is forced to 1 so transparency comes only from the
// base sample.
func Composite(base mgl32.Vec4, biome mgl32.Vec3, weight float32) mgl32.Vec4 {
	tint := mgl32.Vec4{
		1 + (biome.X()-1)*weight,
		1 + (biome.Y()-1)*weight,
		1 + (biome.Z()-1)*weight,
		1,
	}
	return mgl32.Vec4{
		tint.X() * base.X(),
		tint.Y() * base.Y(),
		tint.Z() * base.Z(),
		tint.W() * base.W(),
	}
}
