package boundary

import (
	"voxelview/internal/config"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// LineSegment is one authored overlay line. Flags lane x is the placement
// blend: 0 anchors the segment in world space (camera-relative chunk frame),
// 1 anchors it in camera space, undoing camera rotation only. Only those two
// values are authored.
type LineSegment struct {
	A, B  mgl32.Vec3
	Color mgl32.Vec4
	Flags mgl32.Vec4
}

var (
	red   = mgl32.Vec4{1, 0, 0, 1}
	green = mgl32.Vec4{0, 1, 0, 1}
	blue  = mgl32.Vec4{0, 0, 1, 1}
)

func seg(ax, ay, az, bx, by, bz float32, color mgl32.Vec4) LineSegment {
	return LineSegment{
		A:     mgl32.Vec3{ax, ay, az},
		B:     mgl32.Vec3{bx, by, bz},
		Color: color,
	}
}

// SegmentsFor returns the line set of a boundary mode. Each mode renders its
// predecessors' sets too, so cycling modes only ever adds lines.
func SegmentsFor(mode config.BoundaryMode) []LineSegment {
	var segments []LineSegment
	if mode >= config.BoundaryColumn {
		segments = append(segments, columnSegments()...)
	}
	if mode >= config.BoundaryCube {
		segments = append(segments, cubeSegments()...)
	}
	if mode >= config.BoundaryFaceGrid {
		segments = append(segments, faceGridSegments()...)
	}
	return segments
}

// columnSegments marks the four vertical edges of the chunk column,
// spanning sixteen chunks of height centered on the current chunk.
func columnSegments() []LineSegment {
	const size = float32(world.ChunkSize)
	lineHeight := 16 * size
	h1, h2 := -lineHeight/2, lineHeight/2
	return []LineSegment{
		seg(0, h1, 0, 0, h2, 0, green),
		seg(size, h1, 0, size, h2, 0, green),
		seg(size, h1, size, size, h2, size, green),
		seg(0, h1, size, 0, h2, size, green),
	}
}

// cubeSegments outlines the top and bottom faces of the current chunk.
func cubeSegments() []LineSegment {
	const size = float32(world.ChunkSize)
	var segments []LineSegment
	for _, y := range [2]float32{0, size} {
		segments = append(segments,
			seg(0, y, 0, size, y, 0, red),
			seg(size, y, 0, size, y, size, red),
			seg(0, y, 0, 0, y, size, red),
			seg(0, y, size, size, y, size, red),
		)
	}
	return segments
}

// faceGridSegments draws the interior block grid on all six chunk faces.
func faceGridSegments() []LineSegment {
	const size = float32(world.ChunkSize)
	var segments []LineSegment

	// Y faces (up/down)
	for _, y := range [2]float32{0, size} {
		for i := 1; i < world.ChunkSize; i++ {
			f := float32(i)
			segments = append(segments,
				seg(f, y, 0, f, y, size, blue),
				seg(0, y, f, size, y, f, blue),
			)
		}
	}
	// Z faces (front/back)
	for _, z := range [2]float32{0, size} {
		for i := 1; i < world.ChunkSize; i++ {
			f := float32(i)
			segments = append(segments,
				seg(f, 0, z, f, size, z, blue),
				seg(0, f, z, size, f, z, blue),
			)
		}
	}
	// X faces (left/right)
	for _, x := range [2]float32{0, size} {
		for i := 1; i < world.ChunkSize; i++ {
			f := float32(i)
			segments = append(segments,
				seg(x, f, 0, x, f, size, blue),
				seg(x, 0, f, x, size, f, blue),
			)
		}
	}
	return segments
}

// axisGizmoSegments is a camera-anchored axis cross: placement blend 1, so
// it ignores camera position entirely and only counter-rotates.
func axisGizmoSegments() []LineSegment {
	camSpace := mgl32.Vec4{1, 0, 0, 0}
	gizmo := []LineSegment{
		seg(0, 0, 0, 0.5, 0, 0, red),
		seg(0, 0, 0, 0, 0.5, 0, green),
		seg(0, 0, 0, 0, 0, 0.5, blue),
	}
	for i := range gizmo {
		gizmo[i].Flags = camSpace
	}
	return gizmo
}
