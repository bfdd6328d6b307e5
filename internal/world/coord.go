package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ChunkSize is the edge length, in blocks, of a cubic chunk.
	// Shader sources interpolate this value into their CHUNK_SIZE constant
	// at assembly time; CPU and GPU must agree or geometry is silently
	// misplaced.
	ChunkSize = 16

	// ChunkVolume is the number of block cells in one chunk.
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// ChunkCoord identifies a chunk's position on the world chunk grid.
type ChunkCoord struct {
	X, Y, Z int
}

// Add returns c offset by the given chunk delta.
func (c ChunkCoord) Add(dx, dy, dz int) ChunkCoord {
	return ChunkCoord{c.X + dx, c.Y + dy, c.Z + dz}
}

// Sub returns the component-wise chunk delta c - o.
func (c ChunkCoord) Sub(o ChunkCoord) ChunkCoord {
	return ChunkCoord{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

// Vec3 converts the coordinate to an integer-valued float vector, the form
// the instance buffer and camera uniform carry it in.
func (c ChunkCoord) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}
}

// BlockPos is a block position within one chunk, each component in [0, ChunkSize).
type BlockPos struct {
	X, Y, Z int
}

// InBounds reports whether every component is inside the chunk.
func (p BlockPos) InBounds() bool {
	return p.X >= 0 && p.X < ChunkSize &&
		p.Y >= 0 && p.Y < ChunkSize &&
		p.Z >= 0 && p.Z < ChunkSize
}

// Vec3 converts the position to block-unit floats.
func (p BlockPos) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// SplitBlockCoord splits absolute block coordinates into the owning chunk
// and the position inside it. Negative coordinates floor toward -inf so
// block -1 lands in chunk -1 at local position ChunkSize-1.
func SplitBlockCoord(x, y, z int) (ChunkCoord, BlockPos) {
	cx, lx := floorDiv(x, ChunkSize)
	cy, ly := floorDiv(y, ChunkSize)
	cz, lz := floorDiv(z, ChunkSize)
	return ChunkCoord{cx, cy, cz}, BlockPos{lx, ly, lz}
}

// SplitWorldPos splits a continuous world-space position into the chunk the
// position falls in and the fractional offset within that chunk. The renderer
// uses this for the camera so the view matrix only ever sees the intra-chunk
// remainder.
func SplitWorldPos(pos mgl32.Vec3) (ChunkCoord, mgl32.Vec3) {
	var chunk ChunkCoord
	var local mgl32.Vec3
	for i := 0; i < 3; i++ {
		c, l := floorDivF(pos[i], ChunkSize)
		switch i {
		case 0:
			chunk.X = c
		case 1:
			chunk.Y = c
		case 2:
			chunk.Z = c
		}
		local[i] = l
	}
	return chunk, local
}

func floorDiv(a, n int) (div, mod int) {
	div = a / n
	mod = a % n
	if mod < 0 {
		mod += n
		div--
	}
	return div, mod
}

func floorDivF(a float32, n float32) (int, float32) {
	div := int(a / n)
	mod := a - float32(div)*n
	if mod < 0 {
		mod += n
		div--
	}
	return div, mod
}
