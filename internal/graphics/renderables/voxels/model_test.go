package voxels

import (
	"image/color"
	"testing"

	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func grayNRGBA(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 0xff}
}

func fullTileRegion() AtlasRegion {
	return AtlasRegion{Offset: mgl32.Vec2{0, 0}, Size: mgl32.Vec2{1, 1}}
}

func TestBuildFaceGeometry(t *testing.T) {
	var b Builder
	b.Insert(FaceData{Face: FaceUp, MainTex: fullTileRegion()})
	m := b.Build()

	if got := len(m.Vertices()); got != 4 {
		t.Fatalf("vertex count %d, want 4", got)
	}
	if got := m.IndexCount(); got != 6 {
		t.Fatalf("index count %d, want 6", got)
	}
	// winding: TL-TR-BR, BR-BL-TL
	want := []uint32{0, 1, 2, 2, 3, 0}
	for i, idx := range m.Indices() {
		if idx != want[i] {
			t.Fatalf("indices %v, want %v", m.Indices(), want)
		}
	}
}

func TestFaceVerticesLieOnFacePlane(t *testing.T) {
	planes := map[Face]struct {
		axis  int
		value float32
	}{
		FaceLeft:  {0, 0},
		FaceRight: {0, 1},
		FaceDown:  {1, 0},
		FaceUp:    {1, 1},
		FaceFront: {2, 0},
		FaceBack:  {2, 1},
	}
	for face, plane := range planes {
		var b Builder
		b.Insert(FaceData{Face: face, MainTex: fullTileRegion()})
		for i, v := range b.Build().Vertices() {
			if v.Position[plane.axis] != plane.value {
				t.Errorf("%v vertex %d: axis %d = %v, want %v",
					face, i, plane.axis, v.Position[plane.axis], plane.value)
			}
			for axis := 0; axis < 3; axis++ {
				if p := v.Position[axis]; p != 0 && p != 1 {
					t.Errorf("%v vertex %d: component %d = %v, not a cube corner", face, i, axis, p)
				}
			}
		}
	}
}

func TestFaceCornersAreDistinct(t *testing.T) {
	for face := Face(0); face < NumFaces; face++ {
		var b Builder
		b.Insert(FaceData{Face: face, MainTex: fullTileRegion()})
		verts := b.Build().Vertices()
		seen := map[mgl32.Vec3]bool{}
		for _, v := range verts {
			if seen[v.Position] {
				t.Fatalf("%v: duplicate corner %v", face, v.Position)
			}
			seen[v.Position] = true
		}
	}
}

func TestFaceFlagsEncodeSingleFace(t *testing.T) {
	var b Builder
	b.Insert(FaceData{Face: FaceBack, MainTex: fullTileRegion(), Colorize: true})
	v := b.Build().Vertices()[0]
	flags := DecodeVertexFlags(v.ModelFlags)
	if flags.Faces != MaskOf(FaceBack) {
		t.Fatalf("face mask %06b, want only Back", flags.Faces.Bits())
	}
	if !flags.Colorize || flags.ColorizeMasked {
		t.Fatalf("flags %+v, want colorize without mask gating", flags)
	}
}

func TestMaskTexCoordZeroWithoutBiomeTex(t *testing.T) {
	var b Builder
	b.Insert(FaceData{Face: FaceFront, MainTex: fullTileRegion()})
	for i, v := range b.Build().Vertices() {
		if v.TexCoord.Z() != 0 || v.TexCoord.W() != 0 {
			t.Fatalf("vertex %d mask UV %v, want zero", i, v.TexCoord)
		}
	}
}

func TestTexCoordsStayInsideRegion(t *testing.T) {
	region := AtlasRegion{Offset: mgl32.Vec2{0.25, 0.5}, Size: mgl32.Vec2{0.125, 0.125}}
	mask := AtlasRegion{Offset: mgl32.Vec2{0.5, 0}, Size: mgl32.Vec2{0.125, 0.125}}
	var b Builder
	b.Insert(FaceData{Face: FaceLeft, MainTex: region, BiomeTex: &mask, Colorize: true})
	for i, v := range b.Build().Vertices() {
		if v.TexCoord.X() < 0.25 || v.TexCoord.X() > 0.375 ||
			v.TexCoord.Y() < 0.5 || v.TexCoord.Y() > 0.625 {
			t.Errorf("vertex %d main UV %v escapes region", i, v.TexCoord)
		}
		if v.TexCoord.Z() < 0.5 || v.TexCoord.Z() > 0.625 ||
			v.TexCoord.W() < 0 || v.TexCoord.W() > 0.125 {
			t.Errorf("vertex %d mask UV %v escapes region", i, v.TexCoord)
		}
		flags := DecodeVertexFlags(v.ModelFlags)
		if !flags.ColorizeMasked {
			t.Errorf("vertex %d: mask region present but gating flag unset", i)
		}
	}
}

func TestBuildBlockModelAuthorsAllSixFaces(t *testing.T) {
	atlas := NewAtlas(8, 4)
	if err := StitchDefaultTiles(atlas, 8); err != nil {
		t.Fatalf("stitch: %v", err)
	}
	for _, bt := range RenderedBlockTypes() {
		m, err := BuildBlockModel(bt, atlas)
		if err != nil {
			t.Fatalf("%v: %v", bt, err)
		}
		if got := len(m.Vertices()); got != 24 {
			t.Fatalf("%v: %d vertices, want 24", bt, got)
		}
		if got := m.IndexCount(); got != 36 {
			t.Fatalf("%v: %d indices, want 36", bt, got)
		}
		var covered FaceMask
		for _, v := range m.Vertices() {
			covered |= DecodeVertexFlags(v.ModelFlags).Faces
		}
		if covered != FaceMaskAll {
			t.Fatalf("%v: faces %06b, want all six", bt, covered.Bits())
		}
	}
}

func TestGrassMaskOnSideFacesOnly(t *testing.T) {
	atlas := NewAtlas(8, 4)
	if err := StitchDefaultTiles(atlas, 8); err != nil {
		t.Fatalf("stitch: %v", err)
	}
	m, err := BuildBlockModel(world.BlockTypeGrass, atlas)
	if err != nil {
		t.Fatalf("grass model: %v", err)
	}
	for _, v := range m.Vertices() {
		flags := DecodeVertexFlags(v.ModelFlags)
		if !flags.Colorize {
			t.Fatalf("grass face %06b not colorized", flags.Faces.Bits())
		}
		side := !flags.Faces.Has(FaceUp) && !flags.Faces.Has(FaceDown)
		if flags.ColorizeMasked != side {
			t.Errorf("face %06b: mask gating %v, want %v", flags.Faces.Bits(), flags.ColorizeMasked, side)
		}
	}
}

func TestLeavesColorizeUnmasked(t *testing.T) {
	atlas := NewAtlas(8, 4)
	if err := StitchDefaultTiles(atlas, 8); err != nil {
		t.Fatalf("stitch: %v", err)
	}
	m, err := BuildBlockModel(world.BlockTypeLeaves, atlas)
	if err != nil {
		t.Fatalf("leaves model: %v", err)
	}
	for _, v := range m.Vertices() {
		flags := DecodeVertexFlags(v.ModelFlags)
		if !flags.Colorize || flags.ColorizeMasked {
			t.Fatalf("leaves flags %+v, want unmasked colorize on every face", flags)
		}
	}
}

func TestAtlasRegionPlacement(t *testing.T) {
	atlas := NewAtlas(8, 4)
	a, err := atlas.AddTile("first", speckledTile(8, grayNRGBA(0x80)))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if a.Offset != (mgl32.Vec2{0, 0}) || a.Size != (mgl32.Vec2{0.25, 0.25}) {
		t.Fatalf("first region %+v", a)
	}
	b, err := atlas.AddTile("second", speckledTile(8, grayNRGBA(0x40)))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if b.Offset != (mgl32.Vec2{0.25, 0}) {
		t.Fatalf("second region offset %v, want next column", b.Offset)
	}
	// adding the same name again is idempotent
	again, err := atlas.AddTile("first", speckledTile(8, grayNRGBA(0xff)))
	if err != nil || again != a {
		t.Fatalf("re-add: %+v, %v", again, err)
	}
}
