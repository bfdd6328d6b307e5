package main

import (
	"log"

	"voxelview/internal/config"
	"voxelview/internal/observer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const mouseSensitivity = 0.12

type input struct {
	window *glfw.Window
	obs    *observer.Observer

	lastX, lastY float64
	firstMouse   bool
}

func newInput(window *glfw.Window, obs *observer.Observer) *input {
	in := &input{window: window, obs: obs, firstMouse: true}

	window.SetCursorPosCallback(in.onCursor)
	window.SetKeyCallback(in.onKey)
	return in
}

func (in *input) onCursor(_ *glfw.Window, x, y float64) {
	if in.firstMouse {
		in.lastX, in.lastY = x, y
		in.firstMouse = false
		return
	}
	dx := (x - in.lastX) * mouseSensitivity
	dy := (in.lastY - y) * mouseSensitivity
	in.lastX, in.lastY = x, y
	in.obs.Look(dx, dy)
}

func (in *input) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyB:
		log.Printf("boundary overlay: %v", config.CycleBoundaryMode())
	case glfw.KeyMinus:
		config.SetRenderDistance(config.GetRenderDistance() - 1)
		log.Printf("render distance: %d", config.GetRenderDistance())
	case glfw.KeyEqual:
		config.SetRenderDistance(config.GetRenderDistance() + 1)
		log.Printf("render distance: %d", config.GetRenderDistance())
	}
}

// update applies held movement keys for this frame.
func (in *input) update(dt float64) {
	var forward, right, up float64
	if in.window.GetKey(glfw.KeyW) == glfw.Press {
		forward++
	}
	if in.window.GetKey(glfw.KeyS) == glfw.Press {
		forward--
	}
	if in.window.GetKey(glfw.KeyD) == glfw.Press {
		right++
	}
	if in.window.GetKey(glfw.KeyA) == glfw.Press {
		right--
	}
	if in.window.GetKey(glfw.KeySpace) == glfw.Press {
		up++
	}
	if in.window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		in.obs.Move(forward, right, up, dt)
	}
}
