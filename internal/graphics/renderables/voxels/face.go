package voxels

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one of the six sides of a block's unit cube.
type Face uint8

const (
	FaceLeft Face = iota // -X
	FaceRight
	FaceDown
	FaceUp
	FaceFront // -Z
	FaceBack

	NumFaces
)

func (f Face) String() string {
	switch f {
	case FaceLeft:
		return "Left"
	case FaceRight:
		return "Right"
	case FaceDown:
		return "Down"
	case FaceUp:
		return "Up"
	case FaceFront:
		return "Front"
	case FaceBack:
		return "Back"
	}
	return "Invalid"
}

// Bit returns the face's position in the packed 6-bit face mask.
func (f Face) Bit() uint32 {
	return 1 << uint32(f)
}

// NeighborOffset returns the block-grid offset of the neighbor that would
// occlude this face.
func (f Face) NeighborOffset() (int, int, int) {
	switch f {
	case FaceLeft:
		return -1, 0, 0
	case FaceRight:
		return 1, 0, 0
	case FaceDown:
		return 0, -1, 0
	case FaceUp:
		return 0, 1, 0
	case FaceFront:
		return 0, 0, -1
	}
	return 0, 0, 1
}

// FaceMask is a 6-bit set of faces, one bit per Face in bit-index order.
type FaceMask uint32

const (
	// FaceMaskAll has every face set.
	FaceMaskAll FaceMask = (1 << uint32(NumFaces)) - 1
	// FaceMaskNone is the empty set.
	FaceMaskNone FaceMask = 0
)

// MaskOf builds a mask from the given faces.
func MaskOf(faces ...Face) FaceMask {
	var m FaceMask
	for _, f := range faces {
		m |= FaceMask(f.Bit())
	}
	return m
}

// Has reports whether the face is in the set.
func (m FaceMask) Has(f Face) bool { return m&FaceMask(f.Bit()) != 0 }

// With returns the mask with the face added.
func (m FaceMask) With(f Face) FaceMask { return m | FaceMask(f.Bit()) }

// Bits returns the raw 6-bit pattern.
func (m FaceMask) Bits() uint32 { return uint32(m) & faceBits }

// Geometry of each face of the unit cube, in the corner-mask form the model
// builder consumes: position = axis + left*uNeg + right*uPos + up*vNeg + down*vPos.
// Texture U runs left edge to right edge, V runs top edge to bottom edge.
type faceBasis struct {
	axis  mgl32.Vec3
	left  mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
	down  mgl32.Vec3
}

var faceBases = [NumFaces]faceBasis{
	// Left reads back-to-front along +Z
	FaceLeft: {left: mgl32.Vec3{0, 0, 1}, up: mgl32.Vec3{0, 1, 0}},
	// Right sits on the x=1 plane, reads front-to-back
	FaceRight: {axis: mgl32.Vec3{1, 0, 0}, right: mgl32.Vec3{0, 0, 1}, up: mgl32.Vec3{0, 1, 0}},
	FaceDown:  {right: mgl32.Vec3{1, 0, 0}, down: mgl32.Vec3{0, 0, 1}},
	FaceUp:    {axis: mgl32.Vec3{0, 1, 0}, left: mgl32.Vec3{1, 0, 0}, down: mgl32.Vec3{0, 0, 1}},
	FaceFront: {right: mgl32.Vec3{1, 0, 0}, up: mgl32.Vec3{0, 1, 0}},
	FaceBack:  {axis: mgl32.Vec3{0, 0, 1}, left: mgl32.Vec3{1, 0, 0}, up: mgl32.Vec3{0, 1, 0}},
}

// cornerPosition resolves a corner of the face's quad on the unit cube.
func (f Face) cornerPosition(uNeg, uPos, vNeg, vPos float32) mgl32.Vec3 {
	b := faceBases[f]
	p := b.axis
	p = p.Add(b.left.Mul(uNeg))
	p = p.Add(b.right.Mul(uPos))
	p = p.Add(b.up.Mul(vNeg))
	p = p.Add(b.down.Mul(vPos))
	return p
}
