package voxels

import (
	"fmt"

	"voxelview/internal/world"
)

// Shading stages of the standard block pipeline. The chunk-size constant is
// injected from world.ChunkSize when the source is assembled, so the CPU
// meshing side and the transform stage can never disagree on it.

// VertexShaderSource returns the block vertex stage.
func VertexShaderSource() string {
	return fmt.Sprintf(voxelVertTemplate, world.ChunkSize)
}

// FragmentShaderSource returns the block fragment stage.
func FragmentShaderSource() string {
	return voxelFragSrc
}

const voxelVertTemplate = `#version 410 core

layout (location = 0) in vec3 inPosition;
layout (location = 1) in vec4 inTexCoord;
layout (location = 2) in vec4 inModelFlags;
layout (location = 3) in vec3 inChunkCoord;
layout (location = 4) in mat4 inModel;
layout (location = 8) in vec4 inInstanceFlags;

uniform mat4 view;
uniform mat4 proj;
uniform vec3 posOfCurrentChunk;

out vec4 fragTexCoord;
out float fragVisibility;
flat out float fragColorize;
flat out float fragColorizeMasked;

const float CHUNK_SIZE = %d.0;

void main() {
	// The flag words are integer bit patterns riding in float lanes; they
	// must be reinterpreted, not converted.
	uint modelFlags = floatBitsToUint(inModelFlags.x);
	uint instanceFlags = floatBitsToUint(inInstanceFlags.x);

	// Visible iff a face this vertex belongs to is exposed on this instance.
	// ceil biases interpolation toward visible so face edges don't bleed
	// discards inward.
	uint visibleBits = (modelFlags & 0x3Fu) & (instanceFlags & 0x3Fu);
	fragVisibility = ceil(float(visibleBits));

	fragColorize = float((modelFlags >> 6) & 1u);
	fragColorizeMasked = float((modelFlags >> 7) & 1u);
	fragTexCoord = inTexCoord;

	// Camera-relative frame: offset by whole chunks from the camera's chunk,
	// never by absolute world position, to keep float magnitude bounded by
	// the render distance.
	vec3 chunkOffset = inChunkCoord - posOfCurrentChunk;
	vec3 relative = chunkOffset * CHUNK_SIZE + inPosition;
	gl_Position = proj * view * inModel * vec4(relative, 1.0);
}
`

const voxelFragSrc = `#version 410 core

in vec4 fragTexCoord;
in float fragVisibility;
flat in float fragColorize;
flat in float fragColorizeMasked;

uniform sampler2D atlas;
uniform vec3 biomeColor;

out vec4 outColor;

void main() {
	if (round(fragVisibility) == 0.0) {
		discard;
	}

	vec4 base = texture(atlas, fragTexCoord.xy);

	// Biome tint: lerp(white, biome, weight) multiplied into the base
	// sample. weight = colorize * (masked ? maskAlpha : 1).
	float maskAlpha = texture(atlas, fragTexCoord.zw).a;
	float maskWeight = mix(1.0, maskAlpha, fragColorizeMasked);
	float weight = fragColorize * maskWeight;
	vec4 tint = mix(vec4(1.0), vec4(biomeColor, 1.0), weight);
	outColor = tint * base;
}
`
