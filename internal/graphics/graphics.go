package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit-demo/internal/input"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "orbit demo"
	targetFPS    = 60
)

// Run opens the window and drives the main loop. Each frame it captures an
// input snapshot, calls update with it, then clears the screen and calls
// draw. onResize fires with the new client size whenever the window changes.
// Window or GL failures abort inside raylib before the loop starts; there is
// nothing to recover at this layer.
func Run(vsync bool, update func(dt float32, in input.State), draw func(), onResize func(w, h int)) {
	flags := uint32(rl.FlagWindowResizable)
	if vsync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && onResize != nil {
			onResize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}

		update(rl.GetFrameTime(), ReadInput())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// ReadInput captures one frame of input as a plain snapshot. This is the
// only place key and mouse state is queried; everything below the graphics
// layer receives the snapshot by value.
func ReadInput() input.State {
	var in input.State

	if rl.IsKeyDown(rl.KeyW) {
		in.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Right--
	}
	if rl.IsKeyDown(rl.KeySpace) {
		in.Up++
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		in.Up--
	}

	// Mouse look only while the right button is held, so the cursor stays
	// usable for the debug panels.
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		in.LookDX = d.X
		in.LookDY = d.Y
	}

	if rl.IsKeyDown(rl.KeyRight) {
		in.OrbitYaw++
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		in.OrbitYaw--
	}
	if rl.IsKeyDown(rl.KeyUp) {
		in.OrbitPitch++
	}
	if rl.IsKeyDown(rl.KeyDown) {
		in.OrbitPitch--
	}

	in.ToggleCamera = rl.IsKeyPressed(rl.KeyC)
	in.RegenerateLights = rl.IsKeyPressed(rl.KeyTab)
	in.TogglePanels = rl.IsKeyPressed(rl.KeyF1)
	return in
}
