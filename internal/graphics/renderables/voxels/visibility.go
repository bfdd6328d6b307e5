package voxels

// Face-visibility resolution. A fragment is drawn iff at least one face its
// vertex belongs to is also exposed on the instance being drawn. The same
// rule runs per vertex on the GPU; the raw AND result is passed through ceil
// before interpolation so partially-covered fragments bias toward visible
// instead of bleeding discards across a face.

// FaceVisible reports whether the model-flag and instance-flag words share
// an exposed face: (model & 0x3F) & (instance & 0x3F) != 0.
func FaceVisible(modelBits, instanceBits uint32) bool {
	return (modelBits&faceBits)&(instanceBits&faceBits) != 0
}

// VisibilityScalar is the value the vertex stage forwards to the fragment
// stage: ceil of the masked AND. Zero means every covered fragment discards.
func VisibilityScalar(modelBits, instanceBits uint32) float32 {
	return float32((modelBits & faceBits) & (instanceBits & faceBits))
}

// FragmentDrawn applies the fragment-stage rule to an interpolated
// visibility value: discard when it rounds to zero.
func FragmentDrawn(interpolated float32) bool {
	return interpolated >= 0.5
}
