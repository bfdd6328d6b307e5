package config

import "sync"

// BoundaryMode selects which chunk boundary overlay sets are drawn. Each
// mode includes its predecessors' line sets.
type BoundaryMode int

const (
	BoundaryNone BoundaryMode = iota
	BoundaryColumn
	BoundaryCube
	BoundaryFaceGrid

	numBoundaryModes
)

func (m BoundaryMode) String() string {
	switch m {
	case BoundaryNone:
		return "none"
	case BoundaryColumn:
		return "column"
	case BoundaryCube:
		return "cube"
	case BoundaryFaceGrid:
		return "face-grid"
	}
	return "invalid"
}

// RenderSettings holds process-wide render configuration.
type RenderSettings struct {
	mu             sync.RWMutex
	renderDistance int // in chunks
	fpsLimit       int // 0 = uncapped
	boundaryMode   BoundaryMode
}

var globalRenderSettings = &RenderSettings{
	renderDistance: 8,
	fpsLimit:       120,
}

// GetRenderDistance returns the current render distance in chunks.
func GetRenderDistance() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.renderDistance
}

// SetRenderDistance sets the render distance in chunks, clamped to [2, 32].
func SetRenderDistance(distance int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if distance < 2 {
		distance = 2
	}
	if distance > 32 {
		distance = 32
	}
	globalRenderSettings.renderDistance = distance
}

// GetFPSLimit returns the frame rate cap, 0 for uncapped.
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap; values below 0 mean uncapped.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	globalRenderSettings.fpsLimit = limit
}

// GetBoundaryMode returns the active chunk boundary overlay mode.
func GetBoundaryMode() BoundaryMode {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.boundaryMode
}

// CycleBoundaryMode advances to the next overlay mode and returns it.
func CycleBoundaryMode() BoundaryMode {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.boundaryMode = (globalRenderSettings.boundaryMode + 1) % numBoundaryModes
	return globalRenderSettings.boundaryMode
}
