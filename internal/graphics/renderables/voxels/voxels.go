package voxels

import (
	"fmt"

	"voxelview/internal/config"
	"voxelview/internal/graphics"
	"voxelview/internal/graphics/renderer"
	"voxelview/internal/profiling"
	"voxelview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	atlasTileSize = 16
	atlasCols     = 16
)

// Voxels is the standard block pipeline: one static mesh per block type,
// instanced once per visible block occurrence, with face visibility and
// biome colorization resolved on the GPU from the packed flag words.
type Voxels struct {
	shader    *graphics.Shader
	atlas     *Atlas
	models    map[world.BlockType]*Model
	instances *InstanceBuffer

	source InstanceSource
	biome  BiomeColorSource

	haveData bool
}

// NewVoxels creates the block renderable. A nil biome source falls back to
// the placeholder color.
func NewVoxels(source InstanceSource, biome BiomeColorSource) *Voxels {
	if biome == nil {
		biome = PlaceholderBiome{}
	}
	return &Voxels{
		source: source,
		biome:  biome,
		models: make(map[world.BlockType]*Model),
	}
}

// Init compiles the pipeline, stitches the atlas and uploads the per-type
// models. Must run on the render thread.
func (v *Voxels) Init() error {
	if err := assertLayout(); err != nil {
		return err
	}

	var err error
	v.shader, err = graphics.NewShader(VertexShaderSource(), FragmentShaderSource())
	if err != nil {
		return fmt.Errorf("voxel pipeline: %w", err)
	}

	v.atlas = NewAtlas(atlasTileSize, atlasCols)
	if err := StitchDefaultTiles(v.atlas, atlasTileSize); err != nil {
		return fmt.Errorf("voxel atlas: %w", err)
	}
	v.atlas.Upload()

	for _, t := range RenderedBlockTypes() {
		model, err := BuildBlockModel(t, v.atlas)
		if err != nil {
			return err
		}
		if err := model.Upload(); err != nil {
			return fmt.Errorf("block %v: %w", t, err)
		}
		v.models[t] = model
	}

	v.instances = NewInstanceBuffer()
	return nil
}

// Render rebuilds the instance buffer when chunk content or the covered
// radius changed, then issues one instanced draw per block type.
func (v *Voxels) Render(ctx renderer.RenderContext) {
	defer profiling.Track("voxels.Render")()

	center := ctx.Frame.ChunkOfCamera
	grouped, changed := v.source.Collect(center, config.GetRenderDistance())
	if changed || !v.haveData {
		func() {
			defer profiling.Track("voxels.RebuildInstances")()
			v.instances.Rebuild(grouped)
		}()
		v.haveData = true
	}
	if v.instances.InstanceCount() == 0 {
		return
	}

	v.shader.Use()
	ctx.Frame.Apply(v.shader)
	biome := v.biome.ColorAt(center)
	v.shader.SetVector3("biomeColor", biome.X(), biome.Y(), biome.Z())
	v.shader.SetInt("atlas", 0)
	v.atlas.Bind(0)

	for _, t := range RenderedBlockTypes() {
		first, count, ok := v.instances.Range(t)
		if !ok {
			continue
		}
		model := v.models[t]
		gl.BindVertexArray(model.VAO())
		v.instances.PointTo(first)
		gl.DrawElementsInstanced(gl.TRIANGLES, model.IndexCount(), gl.UNSIGNED_INT, nil, int32(count))
	}
	gl.BindVertexArray(0)
}

// SetViewport is part of the Renderable contract; the block pipeline has no
// viewport-dependent state.
func (v *Voxels) SetViewport(width, height int) {}

// Dispose releases all GL resources.
func (v *Voxels) Dispose() {
	for _, model := range v.models {
		model.Dispose()
	}
	if v.instances != nil {
		v.instances.Dispose()
	}
	if v.atlas != nil {
		v.atlas.Dispose()
	}
	if v.shader != nil {
		v.shader.Delete()
	}
}
