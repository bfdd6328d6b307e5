package main

import (
	"log"
	"runtime"
	"time"

	"voxelview/internal/game"
	"voxelview/internal/graphics/renderables/boundary"
	"voxelview/internal/graphics/renderables/voxels"
	"voxelview/internal/graphics/renderer"
	"voxelview/internal/meshing"
	"voxelview/internal/observer"
	"voxelview/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	w := generateWorld()
	log.Printf("demo world: %d chunks", w.ChunkCount())

	// Start well away from the world origin; the camera-relative transform
	// keeps rendering stable regardless.
	obs := observer.New(8, 36, 24)

	r, err := renderer.NewRenderer(winWidth, winHeight,
		voxels.NewVoxels(meshing.NewWorldSource(w), nil),
		boundary.NewBoundary(),
	)
	if err != nil {
		panic(err)
	}
	closer.Bind(r.Dispose)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		r.SetViewport(width, height)
	})

	in := newInput(window, obs)
	limiter := game.NewFPSLimiter()

	last := glfw.GetTime()
	nextReport := time.Now().Add(5 * time.Second)
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		profiling.ResetFrame()
		in.update(dt)
		r.Render(w, obs, dt)
		window.SwapBuffers()
		glfw.PollEvents()
		limiter.Wait()

		if time.Now().After(nextReport) {
			log.Println(profiling.FrameReport())
			nextReport = time.Now().Add(5 * time.Second)
		}
	}

	closer.Close()
}
