package meshing

import (
	"voxelview/internal/graphics/renderables/voxels"
	"voxelview/internal/world"
)

// Exposure pass: turns world block content into the per-visible-block
// instance records the voxel pipeline consumes. Only the data format is
// interesting here; the occlusion test is plain neighbor lookup, including
// across chunk borders.

// ExposedFaces computes which faces of the block at absolute coordinates
// (x, y, z) are not occluded by an opaque neighbor. Neighbors in unloaded
// chunks read as air, so edge-of-world faces count as exposed.
func ExposedFaces(w *world.World, x, y, z int) voxels.FaceMask {
	var exposed voxels.FaceMask
	for face := voxels.Face(0); face < voxels.NumFaces; face++ {
		dx, dy, dz := face.NeighborOffset()
		if !w.Get(x+dx, y+dy, z+dz).IsOpaque() {
			exposed = exposed.With(face)
		}
	}
	return exposed
}

// WorldSource implements voxels.InstanceSource by scanning loaded chunks
// within the render radius. Results are cached until a covered chunk goes
// dirty or the covered area moves.
type WorldSource struct {
	world *world.World

	cache      map[world.BlockType][]voxels.Instance
	lastCenter world.ChunkCoord
	lastRadius int
	haveCache  bool
}

func NewWorldSource(w *world.World) *WorldSource {
	return &WorldSource{world: w}
}

// Collect gathers instance records grouped by block type for all chunks
// within radius of center. The second result reports whether the data
// differs from the previous call.
func (s *WorldSource) Collect(center world.ChunkCoord, radius int) (map[world.BlockType][]voxels.Instance, bool) {
	changed := !s.haveCache || center != s.lastCenter || radius != s.lastRadius
	if !changed {
		s.forEachCovered(center, radius, func(c *world.Chunk) {
			if c.Dirty() {
				changed = true
			}
		})
	}
	if !changed {
		return s.cache, false
	}

	grouped := make(map[world.BlockType][]voxels.Instance)
	s.forEachCovered(center, radius, func(c *world.Chunk) {
		s.collectChunk(c, grouped)
		c.ClearDirty()
	})

	s.cache = grouped
	s.lastCenter = center
	s.lastRadius = radius
	s.haveCache = true
	return grouped, true
}

func (s *WorldSource) forEachCovered(center world.ChunkCoord, radius int, fn func(*world.Chunk)) {
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				if c := s.world.Chunk(center.Add(dx, dy, dz), false); c != nil {
					fn(c)
				}
			}
		}
	}
}

// collectChunk emits one instance per block with at least one exposed face.
// Fully buried blocks are skipped: every fragment they produced would
// discard anyway.
func (s *WorldSource) collectChunk(c *world.Chunk, grouped map[world.BlockType][]voxels.Instance) {
	baseX := c.Coord.X * world.ChunkSize
	baseY := c.Coord.Y * world.ChunkSize
	baseZ := c.Coord.Z * world.ChunkSize
	c.ForEachBlock(func(p world.BlockPos, b world.BlockType) {
		exposed := ExposedFaces(s.world, baseX+p.X, baseY+p.Y, baseZ+p.Z)
		if exposed == voxels.FaceMaskNone {
			return
		}
		grouped[b] = append(grouped[b], voxels.NewInstance(c.Coord, p, exposed))
	})
}
