package boundary

import (
	"fmt"

	"voxelview/internal/world"
)

// Shading stages of the overlay pipeline. Structurally separate from the
// block pipeline: a different attribute set (per-vertex color, per-instance
// tint) and a placement blend between world-anchored and camera-anchored
// transforms.

// VertexShaderSource returns the overlay vertex stage.
func VertexShaderSource() string {
	return fmt.Sprintf(overlayVertTemplate, world.ChunkSize)
}

// FragmentShaderSource returns the overlay fragment stage.
func FragmentShaderSource() string {
	return overlayFragSrc
}

const overlayVertTemplate = `#version 410 core

layout (location = 0) in vec3 inPosition;
layout (location = 1) in vec4 inColor;
layout (location = 2) in vec4 inFlags;
layout (location = 3) in mat4 inModel;
layout (location = 7) in vec4 inInstanceColor;
layout (location = 8) in vec3 inChunkCoord;

uniform mat4 view;
uniform mat4 proj;
uniform mat4 invRotation;
uniform vec3 posOfCurrentChunk;

out vec4 fragColor;

const float CHUNK_SIZE = %d.0;

void main() {
	vec3 chunkOffset = inChunkCoord - posOfCurrentChunk;
	vec3 relative = chunkOffset * CHUNK_SIZE + inPosition;
	vec4 worldPos = proj * view * inModel * vec4(relative, 1.0);

	// Camera-anchored alternative: undo camera rotation only, then place
	// with the instance transform.
	vec4 cameraPos = proj * inModel * invRotation * vec4(inPosition, 1.0);

	float blend = clamp(inFlags.x, 0.0, 1.0);
	gl_Position = mix(worldPos, cameraPos, blend);
	fragColor = inColor * inInstanceColor;
}
`

const overlayFragSrc = `#version 410 core

in vec4 fragColor;

out vec4 outColor;

void main() {
	outColor = fragColor;
}
`
