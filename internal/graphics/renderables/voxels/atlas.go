package voxels

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// AtlasRegion is a tile's UV rectangle within the stitched atlas texture.
type AtlasRegion struct {
	Offset mgl32.Vec2
	Size   mgl32.Vec2
}

// UV resolves a corner coordinate (u, v in [0,1] within the tile) to
// atlas space.
func (r AtlasRegion) UV(u, v float32) mgl32.Vec2 {
	return mgl32.Vec2{
		r.Offset.X() + r.Size.X()*u,
		r.Offset.Y() + r.Size.Y()*v,
	}
}

// Atlas stitches fixed-size tiles into one texture sampled by every block
// pipeline. Tiles are placed row-major on a square grid; off-size source
// images are rescaled to the tile grid with nearest-neighbor so pixel-art
// edges stay crisp.
type Atlas struct {
	tileSize int
	cols     int
	img      *image.RGBA
	regions  map[string]AtlasRegion
	next     int

	texture uint32
}

// NewAtlas creates an empty atlas with cols*cols tile slots.
func NewAtlas(tileSize, cols int) *Atlas {
	side := tileSize * cols
	return &Atlas{
		tileSize: tileSize,
		cols:     cols,
		img:      image.NewRGBA(image.Rect(0, 0, side, side)),
		regions:  make(map[string]AtlasRegion),
	}
}

// AddTile stitches a tile under the given name and returns its UV region.
// Adding a name twice returns the existing region.
func (a *Atlas) AddTile(name string, src image.Image) (AtlasRegion, error) {
	if r, ok := a.regions[name]; ok {
		return r, nil
	}
	if a.next >= a.cols*a.cols {
		return AtlasRegion{}, fmt.Errorf("atlas full: %d tiles", a.next)
	}

	col := a.next % a.cols
	row := a.next / a.cols
	a.next++

	dst := image.Rect(col*a.tileSize, row*a.tileSize, (col+1)*a.tileSize, (row+1)*a.tileSize)
	if b := src.Bounds(); b.Dx() == a.tileSize && b.Dy() == a.tileSize {
		draw.Draw(a.img, dst, src, b.Min, draw.Src)
	} else {
		xdraw.NearestNeighbor.Scale(a.img, dst, src, src.Bounds(), xdraw.Src, nil)
	}

	side := float32(a.tileSize * a.cols)
	r := AtlasRegion{
		Offset: mgl32.Vec2{float32(dst.Min.X) / side, float32(dst.Min.Y) / side},
		Size:   mgl32.Vec2{float32(a.tileSize) / side, float32(a.tileSize) / side},
	}
	a.regions[name] = r
	return r, nil
}

// Region looks up a stitched tile's UV rectangle.
func (a *Atlas) Region(name string) (AtlasRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Upload creates the GL texture from the stitched image. Must run on the
// render thread with a current context.
func (a *Atlas) Upload() {
	if a.texture != 0 {
		return
	}
	gl.GenTextures(1, &a.texture)
	gl.BindTexture(gl.TEXTURE_2D, a.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	side := int32(a.tileSize * a.cols)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, side, side, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(a.img.Pix))
}

// Bind binds the atlas texture to the given texture unit.
func (a *Atlas) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, a.texture)
}

// Dispose releases the GL texture.
func (a *Atlas) Dispose() {
	if a.texture != 0 {
		gl.DeleteTextures(1, &a.texture)
		a.texture = 0
	}
}
