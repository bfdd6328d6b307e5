package voxels

import (
	"fmt"
	"image"
	"image/color"

	"voxelview/internal/world"
)

// materialDef names the atlas tiles of one block type. sideMask, when set,
// is the secondary region whose alpha gates biome colorization on the side
// faces (the top face of a colorized material tints unconditionally).
type materialDef struct {
	top, side, bottom string
	sideMask          string
}

var materials = map[world.BlockType]materialDef{
	world.BlockTypeStone:  {top: "stone", side: "stone", bottom: "stone"},
	world.BlockTypeDirt:   {top: "dirt", side: "dirt", bottom: "dirt"},
	world.BlockTypeGrass:  {top: "grass_top", side: "grass_side", bottom: "dirt", sideMask: "grass_side_mask"},
	world.BlockTypeSand:   {top: "sand", side: "sand", bottom: "sand"},
	world.BlockTypeLeaves: {top: "leaves", side: "leaves", bottom: "leaves"},
	world.BlockTypeLog:    {top: "log_top", side: "log_side", bottom: "log_top"},
}

// RenderedBlockTypes lists the block types this package can draw, in stable
// order for instance-range grouping.
func RenderedBlockTypes() []world.BlockType {
	types := make([]world.BlockType, 0, len(materials))
	for b := world.BlockType(0); b < world.NumBlockTypes; b++ {
		if _, ok := materials[b]; ok {
			types = append(types, b)
		}
	}
	return types
}

// BuildBlockModel authors the six-face cube model for a block type against
// the atlas. All six faces are always authored; occluded ones are suppressed
// per instance through the face masks, never by baking reduced geometry.
func BuildBlockModel(b world.BlockType, atlas *Atlas) (*Model, error) {
	def, ok := materials[b]
	if !ok {
		return nil, fmt.Errorf("block type %v has no material definition", b)
	}

	tileFor := func(face Face) string {
		switch face {
		case FaceUp:
			return def.top
		case FaceDown:
			return def.bottom
		default:
			return def.side
		}
	}

	var builder Builder
	for face := Face(0); face < NumFaces; face++ {
		main, ok := atlas.Region(tileFor(face))
		if !ok {
			return nil, fmt.Errorf("block %v face %v: tile %q not stitched", b, face, tileFor(face))
		}
		fd := FaceData{Face: face, MainTex: main, Colorize: b.Colorized()}
		if fd.Colorize && b.ColorizeMasked() && face != FaceUp && face != FaceDown {
			mask, ok := atlas.Region(def.sideMask)
			if !ok {
				return nil, fmt.Errorf("block %v: mask tile %q not stitched", b, def.sideMask)
			}
			fd.BiomeTex = &mask
		}
		builder.Insert(fd)
	}
	return builder.Build(), nil
}

// StitchDefaultTiles fills the atlas with built-in stand-in tiles so the
// renderer runs without an asset directory. Tiles are deterministic speckled
// fills; the grass side mask carries alpha only along the top rim.
func StitchDefaultTiles(atlas *Atlas, tileSize int) error {
	tiles := map[string]color.NRGBA{
		"stone":      {R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
		"dirt":       {R: 0x79, G: 0x55, B: 0x3a, A: 0xff},
		"grass_top":  {R: 0x8f, G: 0x8f, B: 0x8f, A: 0xff}, // grayscale, tinted at draw time
		"grass_side": {R: 0x79, G: 0x55, B: 0x3a, A: 0xff},
		"sand":       {R: 0xd8, G: 0xc9, B: 0x8b, A: 0xff},
		"leaves":     {R: 0x9a, G: 0x9a, B: 0x9a, A: 0xff},
		"log_top":    {R: 0x9a, G: 0x7b, B: 0x4c, A: 0xff},
		"log_side":   {R: 0x6b, G: 0x51, B: 0x2f, A: 0xff},
	}
	for name, base := range tiles {
		if _, err := atlas.AddTile(name, speckledTile(tileSize, base)); err != nil {
			return err
		}
	}
	if _, err := atlas.AddTile("grass_side_mask", grassSideMaskTile(tileSize)); err != nil {
		return err
	}
	return nil
}

// speckledTile varies the base color per texel with a small deterministic hash.
func speckledTile(size int, base color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h := uint32(x*374761393+y*668265263) ^ uint32(int(base.R)*glHashSalt)
			h = (h ^ (h >> 13)) * 1274126177
			jitter := int8(h>>28) - 8
			img.SetNRGBA(x, y, color.NRGBA{
				R: clampByte(int(base.R) + int(jitter)),
				G: clampByte(int(base.G) + int(jitter)),
				B: clampByte(int(base.B) + int(jitter)),
				A: base.A,
			})
		}
	}
	return img
}

const glHashSalt = 2654435761

// grassSideMaskTile's alpha channel is the colorization stencil: opaque on
// the top quarter (the overgrown rim), transparent below.
func grassSideMaskTile(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	rim := size / 4
	if rim < 1 {
		rim = 1
	}
	for y := 0; y < size; y++ {
		var a uint8
		if y < rim {
			a = 0xff
		}
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0x8f, G: 0x8f, B: 0x8f, A: a})
		}
	}
	return img
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}
