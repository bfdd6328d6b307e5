package voxels

import (
	"log"

	"voxelview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// InstanceSource produces the per-visible-block instance records, grouped by
// block type. Implemented by the exposure pass over world content; the
// renderable only consumes the data contract.
type InstanceSource interface {
	// Collect gathers instances for chunks within radius of center. The
	// second result is false when nothing changed since the previous call,
	// letting the caller skip the buffer rewrite.
	Collect(center world.ChunkCoord, radius int) (map[world.BlockType][]Instance, bool)
}

type instanceRange struct {
	first, count int
}

// InstanceBuffer owns the shared GL instance buffer and the contiguous
// per-block-type ranges within it. One buffer serves every block-type draw;
// the instance attribute pointers are re-aimed at a range's byte offset
// before each instanced draw.
type InstanceBuffer struct {
	vbo    uint32
	data   []float32
	ranges map[world.BlockType]instanceRange
	total  int

	// capacityBytes tracks the GPU allocation so steady-state rebuilds
	// orphan instead of reallocating.
	capacityBytes int
}

func NewInstanceBuffer() *InstanceBuffer {
	return &InstanceBuffer{ranges: make(map[world.BlockType]instanceRange)}
}

// Rebuild repacks and uploads all instances. Instances whose exposure mask
// is empty were already skipped by the source; an empty group simply gets no
// range.
func (b *InstanceBuffer) Rebuild(grouped map[world.BlockType][]Instance) {
	b.data = b.data[:0]
	clear(b.ranges)
	b.total = 0

	for _, t := range RenderedBlockTypes() {
		instances := grouped[t]
		if len(instances) == 0 {
			continue
		}
		b.ranges[t] = instanceRange{first: b.total, count: len(instances)}
		for i := range instances {
			b.data = instances[i].appendTo(b.data)
		}
		b.total += len(instances)
	}

	if b.vbo == 0 {
		gl.GenBuffers(1, &b.vbo)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	sizeBytes := len(b.data) * 4
	if sizeBytes > b.capacityBytes {
		gl.BufferData(gl.ARRAY_BUFFER, sizeBytes, gl.Ptr(b.data), gl.DYNAMIC_DRAW)
		b.capacityBytes = sizeBytes
		log.Printf("voxels: instance buffer grown to %d bytes (%d instances)", sizeBytes, b.total)
	} else if sizeBytes > 0 {
		// orphan, then refill
		gl.BufferData(gl.ARRAY_BUFFER, b.capacityBytes, nil, gl.DYNAMIC_DRAW)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, sizeBytes, gl.Ptr(b.data))
	}
}

// InstanceCount returns the total number of packed instances.
func (b *InstanceBuffer) InstanceCount() int { return b.total }

// Range returns the contiguous instance range of a block type.
func (b *InstanceBuffer) Range(t world.BlockType) (first, count int, ok bool) {
	r, ok := b.ranges[t]
	return r.first, r.count, ok
}

// PointTo binds the buffer and aims the instance attributes at the given
// range. The caller's VAO must be bound.
func (b *InstanceBuffer) PointTo(first int) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	setInstanceAttribPointers(first * InstanceStride)
}

// Dispose releases the GL buffer.
func (b *InstanceBuffer) Dispose() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
}
