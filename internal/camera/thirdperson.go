package camera

import (
	"orbit-demo/internal/input"
	"orbit-demo/internal/transform"
)

const (
	// cameraBackOffset is the camera's fixed local offset behind the pivot.
	cameraBackOffset = -15
	// orbitSpeed is the pivot rotation rate in radians/second per axis unit.
	orbitSpeed = 1.2
)

// ThirdPersonCamera keeps a camera rigidly offset behind a tracked transform
// while arrow-key input steers the offset orientation, independent of the
// tracked object's own rotation.
//
// The rig is a meshless pivot transform repositioned to the target's world
// position every update, with the camera as its child at a fixed backward
// offset. Rotating the pivot orbits the camera; repositioning the pivot
// translates the camera by exactly the target's movement delta, because the
// camera's local offset never changes.
//
// The pivot pitch is intentionally unclamped: enough up/down input flips the
// camera past vertical. That matches the observed rig; clamping to roughly
// +/-89 degrees is the obvious fix but changes steering feel, so it is left
// to the caller's input shaping for now.
type ThirdPersonCamera struct {
	target *transform.Transform
	pivot  *transform.Transform
	cam    *Camera
}

// NewThirdPerson builds the rig around the given target transform.
func NewThirdPerson(target *transform.Transform, aspect float32) *ThirdPersonCamera {
	tp := &ThirdPersonCamera{
		target: target,
		pivot:  transform.New(),
		cam:    New(0, 0, cameraBackOffset, 3.0, 1.0, aspect),
	}
	p := target.WorldPosition()
	tp.pivot.SetPosition(p.X(), p.Y(), p.Z())
	tp.pivot.AddChild(tp.cam.Transform())
	return tp
}

// Camera returns the rig's camera.
func (tp *ThirdPersonCamera) Camera() *Camera { return tp.cam }

// Pivot returns the rig's pivot transform. Exposed for the debug UI.
func (tp *ThirdPersonCamera) Pivot() *transform.Transform { return tp.pivot }

// Update runs the per-frame rig sequence: detach the camera, apply orbit
// rotation to the pivot, re-attach, then snap the pivot to the target's new
// world position and refresh the view matrix. Rotation happens while the
// camera is detached so it stays isolated from the translation step that
// follows. The snap itself moves the attached camera by exactly the target's
// movement delta. Same-frame yaw never changes the camera's height, so the
// frame's vertical delta equals the target's; same-frame pitch swings the
// offset through an orbit arc, adding that arc's vertical component on top
// of the follow delta.
func (tp *ThirdPersonCamera) Update(dt float32, in input.State) {
	ct := tp.cam.Transform()

	tp.pivot.RemoveChild(ct)
	if in.OrbitYaw != 0 || in.OrbitPitch != 0 {
		tp.pivot.Rotate(in.OrbitPitch*orbitSpeed*dt, in.OrbitYaw*orbitSpeed*dt, 0)
	}
	tp.pivot.AddChild(ct)

	p := tp.target.WorldPosition()
	tp.pivot.SetPosition(p.X(), p.Y(), p.Z())

	tp.cam.UpdateViewMatrix()
}
