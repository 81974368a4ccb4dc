// Package input defines the per-frame input snapshot passed down Update
// calls. Capturing from the window happens in the graphics layer; everything
// below it receives this plain value, so camera and scene logic can be
// driven (and tested) without a window.
package input

// State is one frame of user input. Move and orbit fields are -1..1 axes;
// look fields are raw mouse deltas in pixels.
type State struct {
	Forward float32 // W/S
	Right   float32 // D/A
	Up      float32 // Space / Left Shift

	LookDX float32 // mouse delta X, first-person look
	LookDY float32 // mouse delta Y

	OrbitYaw   float32 // Right/Left arrows, third-person pivot
	OrbitPitch float32 // Up/Down arrows

	ToggleCamera     bool // switch first-person <-> third-person
	RegenerateLights bool // reroll the random point lights
	TogglePanels     bool // show/hide the debug panels
}
