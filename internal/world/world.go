package world

// World holds loaded chunks keyed by grid coordinate. It is the CPU-side
// collaborator that owns block content; the renderer only ever reads it.
type World struct {
	chunks map[ChunkCoord]*Chunk
}

// NewEmpty creates a world with no chunks loaded.
func NewEmpty() *World {
	return &World{chunks: make(map[ChunkCoord]*Chunk)}
}

// Chunk returns the chunk at the coordinate, creating it when create is true.
func (w *World) Chunk(coord ChunkCoord, create bool) *Chunk {
	if c, ok := w.chunks[coord]; ok {
		return c
	}
	if !create {
		return nil
	}
	c := NewChunk(coord)
	w.chunks[coord] = c
	return c
}

// Get returns the block at absolute block coordinates, air for unloaded chunks.
func (w *World) Get(x, y, z int) BlockType {
	coord, local := SplitBlockCoord(x, y, z)
	c := w.chunks[coord]
	if c == nil {
		return BlockTypeAir
	}
	return c.Get(local)
}

// Set places a block at absolute block coordinates, creating the owning
// chunk if needed. Placing or removing a block also dirties any loaded
// neighbor chunk that touches the block, since its exposure masks change.
func (w *World) Set(x, y, z int, b BlockType) {
	coord, local := SplitBlockCoord(x, y, z)
	w.Chunk(coord, true).Set(local, b)

	for _, d := range [6][3]int{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}} {
		nCoord, _ := SplitBlockCoord(x+d[0], y+d[1], z+d[2])
		if nCoord == coord {
			continue
		}
		if n := w.chunks[nCoord]; n != nil {
			n.dirty = true
		}
	}
}

// ForEachChunk calls fn for every loaded chunk.
func (w *World) ForEachChunk(fn func(*Chunk)) {
	for _, c := range w.chunks {
		fn(c)
	}
}

// ChunkCount returns the number of loaded chunks.
func (w *World) ChunkCount() int { return len(w.chunks) }
