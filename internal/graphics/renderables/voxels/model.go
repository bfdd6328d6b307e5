package voxels

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// FaceData describes one authored face of a block-type model: which cube
// face it covers, its atlas regions, and its colorization capability.
type FaceData struct {
	Face     Face
	MainTex  AtlasRegion
	BiomeTex *AtlasRegion // nil when colorization is not mask-gated
	Colorize bool
}

// Corner masks resolving the four quad corners of a face. Column one is the
// corner's UV within a tile, column two selects which face-basis vectors
// contribute to the corner's position.
type cornerMask struct {
	u, v                   float32
	uNeg, uPos, vNeg, vPos float32
}

var (
	cornerTL = cornerMask{u: 0, v: 0, uNeg: 1, vNeg: 1}
	cornerTR = cornerMask{u: 1, v: 0, uPos: 1, vNeg: 1}
	cornerBR = cornerMask{u: 1, v: 1, uPos: 1, vPos: 1}
	cornerBL = cornerMask{u: 0, v: 1, uNeg: 1, vPos: 1}
)

// Builder assembles the static mesh for one block-type variant. Every face
// gets its own four vertices because texture data is embedded per vertex;
// face suppression at draw time happens through instance masks, not by
// authoring multiple meshes.
type Builder struct {
	faces []FaceData
}

// Insert queues a face for the model.
func (b *Builder) Insert(fd FaceData) {
	b.faces = append(b.faces, fd)
}

// Build produces the immutable model. GL upload happens separately so the
// mesh content stays testable off the render thread.
func (b *Builder) Build() *Model {
	m := &Model{
		vertices: make([]Vertex, 0, len(b.faces)*4),
		indices:  make([]uint32, 0, len(b.faces)*6),
	}
	for _, fd := range b.faces {
		m.pushFace(&fd)
	}
	return m
}

// Model is a static per-block-type mesh, instanced N times per draw call.
type Model struct {
	vertices []Vertex
	indices  []uint32

	vao, vbo, ebo uint32
}

func (m *Model) pushFace(fd *FaceData) {
	flags := VertexFlags{
		Faces:          MaskOf(fd.Face),
		Colorize:       fd.Colorize,
		ColorizeMasked: fd.BiomeTex != nil,
	}
	packed := flags.Pack()

	base := uint32(len(m.vertices))
	for _, c := range [4]cornerMask{cornerTL, cornerTR, cornerBR, cornerBL} {
		main := fd.MainTex.UV(c.u, c.v)
		var mask mgl32.Vec2
		if fd.BiomeTex != nil {
			mask = fd.BiomeTex.UV(c.u, c.v)
		}
		m.vertices = append(m.vertices, Vertex{
			Position:   fd.Face.cornerPosition(c.uNeg, c.uPos, c.vNeg, c.vPos),
			TexCoord:   mgl32.Vec4{main.X(), main.Y(), mask.X(), mask.Y()},
			ModelFlags: packed,
		})
	}
	// two tris: TL-TR-BR, BR-BL-TL
	m.indices = append(m.indices,
		base, base+1, base+2,
		base+2, base+3, base,
	)
}

// Vertices exposes the authored vertex records.
func (m *Model) Vertices() []Vertex { return m.vertices }

// Indices exposes the triangle index list.
func (m *Model) Indices() []uint32 { return m.indices }

// IndexCount returns the number of indices to draw.
func (m *Model) IndexCount() int32 { return int32(len(m.indices)) }

// Upload creates the model's VAO/VBO/EBO and configures the per-vertex half
// of the attribute contract. The instance half is pointed per draw because
// instance ranges share one buffer.
func (m *Model) Upload() error {
	if err := assertLayout(); err != nil {
		return fmt.Errorf("voxel model upload: %w", err)
	}
	if len(m.vertices) == 0 {
		return fmt.Errorf("voxel model upload: empty mesh")
	}

	data := make([]float32, 0, len(m.vertices)*vertexFloats)
	for i := range m.vertices {
		data = m.vertices[i].appendTo(data)
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	setVertexAttribPointers()

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.indices)*4, gl.Ptr(m.indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return nil
}

// VAO returns the uploaded vertex array object.
func (m *Model) VAO() uint32 { return m.vao }

// Dispose releases GL objects.
func (m *Model) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
