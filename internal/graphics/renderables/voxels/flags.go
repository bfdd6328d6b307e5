package voxels

import (
	"math"
)

// Packed flag words ride in lane 0 of a float-typed vec4 attribute channel.
// The integer bit pattern is reinterpreted into the float (and back out with
// floatBitsToUint on the GPU), never numerically converted: a truncating
// cast would destroy the mask.
const (
	// faceBits masks the face-membership field, bits [0..6).
	faceBits uint32 = 0x3F
	// colorizeBit marks a material whose base texture is blended with the
	// biome tint.
	colorizeBit uint32 = 1 << 6
	// colorizeMaskedBit additionally gates the tint by the alpha channel of
	// the material's secondary atlas region.
	colorizeMaskedBit uint32 = 1 << 7
)

// VertexFlags is the per-vertex packed word of a block-type model. The face
// mask records which cube faces the vertex belongs to; a vertex shared by
// several faces carries several bits, which is why visibility resolution is
// a bitwise AND against the instance word and not an equality test.
type VertexFlags struct {
	Faces          FaceMask
	Colorize       bool
	ColorizeMasked bool
}

// Bits returns the packed 32-bit word.
func (f VertexFlags) Bits() uint32 {
	bits := f.Faces.Bits()
	if f.Colorize {
		bits |= colorizeBit
	}
	if f.ColorizeMasked {
		bits |= colorizeMaskedBit
	}
	return bits
}

// Pack reinterprets the word into the vec4 attribute lane layout.
func (f VertexFlags) Pack() [4]float32 {
	return [4]float32{math.Float32frombits(f.Bits())}
}

// DecodeVertexFlags recovers the flags from a packed attribute value.
func DecodeVertexFlags(packed [4]float32) VertexFlags {
	bits := math.Float32bits(packed[0])
	return VertexFlags{
		Faces:          FaceMask(bits & faceBits),
		Colorize:       bits&colorizeBit != 0,
		ColorizeMasked: bits&colorizeMaskedBit != 0,
	}
}

// InstanceFlags is the per-instance packed word: the low six bits mark which
// faces of this block occurrence are exposed rather than occluded by a
// neighbor.
type InstanceFlags struct {
	Exposed FaceMask
}

// Bits returns the packed 32-bit word.
func (f InstanceFlags) Bits() uint32 {
	return f.Exposed.Bits()
}

// Pack reinterprets the word into the vec4 attribute lane layout.
func (f InstanceFlags) Pack() [4]float32 {
	return [4]float32{math.Float32frombits(f.Bits())}
}

// DecodeInstanceFlags recovers the flags from a packed attribute value.
func DecodeInstanceFlags(packed [4]float32) InstanceFlags {
	return InstanceFlags{Exposed: FaceMask(math.Float32bits(packed[0]) & faceBits)}
}
