package world

// BlockType identifies a block material.
type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypeDirt
	BlockTypeGrass
	BlockTypeSand
	BlockTypeLeaves
	BlockTypeLog

	NumBlockTypes
)

// blockInfo describes the render-relevant material properties of a block type.
type blockInfo struct {
	name string
	// opaque blocks occlude their neighbors' touching faces
	opaque bool
	// colorized materials blend the biome tint into their base texture
	colorized bool
	// masked colorization is additionally gated by the alpha channel of a
	// secondary atlas region (e.g. grass sides tint only the overgrown rim)
	masked bool
}

var blockTable = [NumBlockTypes]blockInfo{
	BlockTypeAir:    {name: "air"},
	BlockTypeStone:  {name: "stone", opaque: true},
	BlockTypeDirt:   {name: "dirt", opaque: true},
	BlockTypeGrass:  {name: "grass", opaque: true, colorized: true, masked: true},
	BlockTypeSand:   {name: "sand", opaque: true},
	BlockTypeLeaves: {name: "leaves", opaque: true, colorized: true},
	BlockTypeLog:    {name: "log", opaque: true},
}

func (b BlockType) String() string {
	if b >= NumBlockTypes {
		return "unknown"
	}
	return blockTable[b].name
}

// IsAir reports whether the block is empty space.
func (b BlockType) IsAir() bool { return b == BlockTypeAir }

// IsOpaque reports whether the block fully occludes faces it touches.
func (b BlockType) IsOpaque() bool {
	return b < NumBlockTypes && blockTable[b].opaque
}

// Colorized reports whether the material blends the biome tint.
func (b BlockType) Colorized() bool {
	return b < NumBlockTypes && blockTable[b].colorized
}

// ColorizeMasked reports whether the biome tint is gated by the material's
// secondary mask region in the atlas.
func (b BlockType) ColorizeMasked() bool {
	return b < NumBlockTypes && blockTable[b].masked
}
