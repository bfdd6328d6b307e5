package observer

import (
	"math"

	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Observer is the free-flying viewpoint. Position is kept in float64 world
// units and only ever reaches the GPU split into an integer chunk coordinate
// plus a small intra-chunk offset, so view math stays precise at any
// distance from the origin.
type Observer struct {
	X, Y, Z float64

	// degrees; yaw 0 looks down -Z
	Yaw   float64
	Pitch float64

	MoveSpeed float64
}

func New(x, y, z float64) *Observer {
	return &Observer{X: x, Y: y, Z: z, Yaw: -90, Pitch: -20, MoveSpeed: 12}
}

// Look applies a mouse delta to the view angles, clamping pitch.
func (o *Observer) Look(dx, dy float64) {
	o.Yaw += dx
	o.Pitch += dy
	if o.Pitch > 89 {
		o.Pitch = 89
	}
	if o.Pitch < -89 {
		o.Pitch = -89
	}
}

// Front returns the unit view direction.
func (o *Observer) Front() mgl32.Vec3 {
	yaw := o.Yaw * math.Pi / 180
	pitch := o.Pitch * math.Pi / 180
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// Move advances the observer along its view basis: forward/right/up inputs
// in [-1, 1], scaled by MoveSpeed and the frame delta.
func (o *Observer) Move(forward, right, up float64, dt float64) {
	f := o.Front()
	r := f.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	step := o.MoveSpeed * dt
	o.X += (float64(f.X())*forward + float64(r.X())*right) * step
	o.Y += (float64(f.Y())*forward + float64(r.Y())*right + up) * step
	o.Z += (float64(f.Z())*forward + float64(r.Z())*right) * step
}

// Chunk returns the chunk the observer currently occupies.
func (o *Observer) Chunk() world.ChunkCoord {
	chunk, _ := o.split()
	return chunk
}

// ChunkOffset returns the fractional position within the current chunk,
// the only positional quantity that ever enters the view matrix.
func (o *Observer) ChunkOffset() mgl32.Vec3 {
	_, offset := o.split()
	return offset
}

func (o *Observer) split() (world.ChunkCoord, mgl32.Vec3) {
	cx, fx := floorSplit(o.X)
	cy, fy := floorSplit(o.Y)
	cz, fz := floorSplit(o.Z)
	return world.ChunkCoord{X: cx, Y: cy, Z: cz}, mgl32.Vec3{fx, fy, fz}
}

// floorSplit divides a world coordinate into chunk index and remainder in
// full float64 before the remainder is narrowed to float32.
func floorSplit(v float64) (int, float32) {
	c := math.Floor(v / world.ChunkSize)
	return int(c), float32(v - c*world.ChunkSize)
}
