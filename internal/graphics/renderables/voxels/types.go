package voxels

import (
	"fmt"

	"voxelview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Attribute-binding contract between one static block-type mesh and its N
// draw instances. Locations are fixed across every block pipeline:
//
//	0     vertex position (3f)
//	1     vertex texture coordinates (4f: xy main, zw biome mask)
//	2     vertex model flags (4f, lane x bit-reinterpreted)
//	3     instance chunk coordinate (3f)
//	4..7  instance model matrix (mat4 spans four slots)
//	8     instance flags (4f, lane x bit-reinterpreted)
const (
	locPosition      = 0
	locTexCoord      = 1
	locModelFlags    = 2
	locChunkCoord    = 3
	locModelMatrix   = 4 // through 7
	locInstanceFlags = 8

	vertexFloats = 3 + 4 + 4
	// VertexStride is the byte stride of one interleaved vertex record.
	VertexStride = vertexFloats * 4

	instanceFloats = 3 + 16 + 4
	// InstanceStride is the byte stride of one interleaved instance record.
	InstanceStride = instanceFloats * 4

	// GL guarantees at least 16 vertex attribute slots; the layout above
	// must fit without querying.
	maxUsedAttribLocation = locInstanceFlags
	minGuaranteedAttribs  = 16
)

// Vertex is one record of a block-type mesh: authored once per model,
// immutable at draw time, shared by all instances.
type Vertex struct {
	Position   mgl32.Vec3
	TexCoord   mgl32.Vec4
	ModelFlags [4]float32
}

func (v *Vertex) appendTo(dst []float32) []float32 {
	dst = append(dst, v.Position[0], v.Position[1], v.Position[2])
	dst = append(dst, v.TexCoord[0], v.TexCoord[1], v.TexCoord[2], v.TexCoord[3])
	return append(dst, v.ModelFlags[0], v.ModelFlags[1], v.ModelFlags[2], v.ModelFlags[3])
}

// Instance is one visible block occurrence: which chunk it sits in, its
// placement within that chunk, and which faces are exposed. Rebuilt by the
// exposure pass whenever chunk content changes.
type Instance struct {
	Chunk world.ChunkCoord
	Model mgl32.Mat4
	Flags [4]float32
}

// NewInstance places a block-type mesh at a block position within a chunk
// with the given exposed-face set.
func NewInstance(chunk world.ChunkCoord, pos world.BlockPos, exposed FaceMask) Instance {
	p := pos.Vec3()
	return Instance{
		Chunk: chunk,
		Model: mgl32.Translate3D(p.X(), p.Y(), p.Z()),
		Flags: InstanceFlags{Exposed: exposed}.Pack(),
	}
}

// ExposedFaces decodes the instance's exposure mask.
func (i *Instance) ExposedFaces() FaceMask {
	return DecodeInstanceFlags(i.Flags).Exposed
}

func (i *Instance) appendTo(dst []float32) []float32 {
	dst = append(dst, float32(i.Chunk.X), float32(i.Chunk.Y), float32(i.Chunk.Z))
	dst = append(dst, i.Model[:]...)
	return append(dst, i.Flags[0], i.Flags[1], i.Flags[2], i.Flags[3])
}

// assertLayout validates the attribute contract at pipeline-creation time.
// A mismatch here silently misplaces geometry at draw time, so it fails
// loudly instead.
func assertLayout() error {
	if maxUsedAttribLocation >= minGuaranteedAttribs {
		return fmt.Errorf("instance layout uses attribute %d, beyond the guaranteed %d slots",
			maxUsedAttribLocation, minGuaranteedAttribs)
	}
	if VertexStride != 44 || InstanceStride != 92 {
		return fmt.Errorf("unexpected record strides: vertex=%d instance=%d", VertexStride, InstanceStride)
	}
	return nil
}

// setVertexAttribPointers configures locations 0..2 against the currently
// bound vertex buffer.
func setVertexAttribPointers() {
	gl.EnableVertexAttribArray(locPosition)
	gl.VertexAttribPointerWithOffset(locPosition, 3, gl.FLOAT, false, VertexStride, 0)
	gl.EnableVertexAttribArray(locTexCoord)
	gl.VertexAttribPointerWithOffset(locTexCoord, 4, gl.FLOAT, false, VertexStride, 3*4)
	gl.EnableVertexAttribArray(locModelFlags)
	gl.VertexAttribPointerWithOffset(locModelFlags, 4, gl.FLOAT, false, VertexStride, 7*4)
}

// setInstanceAttribPointers configures locations 3..8 with divisor 1 against
// the currently bound instance buffer, starting at the given byte offset.
// Re-pointing with an offset stands in for base-instance draws, which GL 4.1
// does not have.
func setInstanceAttribPointers(byteOffset int) {
	offset := uintptr(byteOffset)
	gl.EnableVertexAttribArray(locChunkCoord)
	gl.VertexAttribPointerWithOffset(locChunkCoord, 3, gl.FLOAT, false, InstanceStride, offset)
	gl.VertexAttribDivisor(locChunkCoord, 1)
	for col := uint32(0); col < 4; col++ {
		loc := uint32(locModelMatrix) + col
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, InstanceStride, offset+uintptr(3*4+col*16))
		gl.VertexAttribDivisor(loc, 1)
	}
	gl.EnableVertexAttribArray(locInstanceFlags)
	gl.VertexAttribPointerWithOffset(locInstanceFlags, 4, gl.FLOAT, false, InstanceStride, offset+19*4)
	gl.VertexAttribDivisor(locInstanceFlags, 1)
}
