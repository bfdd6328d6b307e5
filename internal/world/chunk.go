package world

// Chunk is a cubic ChunkSize^3 region of blocks. Block storage is a flat
// array indexed x-major; empty chunks allocate no block slice.
type Chunk struct {
	Coord  ChunkCoord
	blocks []BlockType
	dirty  bool
}

// NewChunk creates an empty chunk at the given grid coordinate.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{Coord: coord, dirty: true}
}

func blockIndex(p BlockPos) int {
	return p.X*ChunkSize*ChunkSize + p.Y*ChunkSize + p.Z
}

// Get returns the block at the local position, or air when out of bounds
// or the chunk has no storage yet.
func (c *Chunk) Get(p BlockPos) BlockType {
	if !p.InBounds() || c.blocks == nil {
		return BlockTypeAir
	}
	return c.blocks[blockIndex(p)]
}

// Set stores a block at the local position and marks the chunk dirty.
// Out-of-bounds positions are ignored.
func (c *Chunk) Set(p BlockPos, b BlockType) {
	if !p.InBounds() {
		return
	}
	if c.blocks == nil {
		if b == BlockTypeAir {
			return
		}
		c.blocks = make([]BlockType, ChunkVolume)
	}
	c.blocks[blockIndex(p)] = b
	c.dirty = true
}

// IsEmpty reports whether the chunk has never stored a block.
func (c *Chunk) IsEmpty() bool { return c.blocks == nil }

// Dirty reports whether chunk content changed since the last ClearDirty.
// The instance buffer uses this to decide which chunks to re-emit.
func (c *Chunk) Dirty() bool { return c.dirty }

// ClearDirty resets the dirty flag after the chunk's instances are rebuilt.
func (c *Chunk) ClearDirty() { c.dirty = false }

// ForEachBlock calls fn for every non-air block in the chunk.
func (c *Chunk) ForEachBlock(fn func(BlockPos, BlockType)) {
	if c.blocks == nil {
		return
	}
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				p := BlockPos{x, y, z}
				if b := c.blocks[blockIndex(p)]; !b.IsAir() {
					fn(p, b)
				}
			}
		}
	}
}
