package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"orbit-demo/internal/input"
	"orbit-demo/internal/transform"
)

const (
	nearPlane = 0.01
	farPlane  = 1000
	// mouseLookScale converts mouse pixels to radians before the per-camera
	// look speed multiplier is applied.
	mouseLookScale = 0.003
)

var defaultFovY = mgl32.DegToRad(45)

// Camera owns a transform and derives view/projection matrices from it.
// The aspect ratio is supplied externally on window resize. The view matrix
// is cached and refreshed by UpdateViewMatrix, which Update calls after
// applying movement.
type Camera struct {
	t *transform.Transform

	moveSpeed float32
	lookSpeed float32

	fovY   float32
	aspect float32

	view mgl32.Mat4
	proj mgl32.Mat4
}

// New returns a camera at (x, y, z) looking down its local +Z axis.
// moveSpeed is in units/second, lookSpeed scales mouse look.
func New(x, y, z, moveSpeed, lookSpeed, aspect float32) *Camera {
	c := &Camera{
		t:         transform.New(),
		moveSpeed: moveSpeed,
		lookSpeed: lookSpeed,
		fovY:      defaultFovY,
	}
	c.t.SetPosition(x, y, z)
	c.UpdateViewMatrix()
	c.UpdateProjectionMatrix(aspect)
	return c
}

// Transform returns the camera's transform.
func (c *Camera) Transform() *transform.Transform { return c.t }

// Update applies first-person movement from the input snapshot: forward and
// strafe relative to facing, vertical in world space, look from mouse deltas.
func (c *Camera) Update(dt float32, in input.State) {
	speed := c.moveSpeed * dt
	if in.Forward != 0 || in.Right != 0 {
		c.t.MoveRelative(in.Right*speed, 0, in.Forward*speed)
	}
	if in.Up != 0 {
		c.t.MoveAbsolute(0, in.Up*speed, 0)
	}
	if in.LookDX != 0 || in.LookDY != 0 {
		look := c.lookSpeed * mouseLookScale
		c.t.Rotate(in.LookDY*look, in.LookDX*look, 0)
	}
	c.UpdateViewMatrix()
}

// UpdateViewMatrix recomputes the cached view matrix from the transform's
// world matrix. Call after moving the camera or any of its ancestors.
func (c *Camera) UpdateViewMatrix() {
	c.view = c.t.WorldMatrix().Inv()
}

// UpdateProjectionMatrix recomputes the projection for a new aspect ratio.
func (c *Camera) UpdateProjectionMatrix(aspect float32) {
	c.aspect = aspect
	c.proj = mgl32.Perspective(c.fovY, aspect, nearPlane, farPlane)
}

// ViewMatrix returns the cached view matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 { return c.view }

// ProjectionMatrix returns the cached projection matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 { return c.proj }

// FovY returns the vertical field of view in radians.
func (c *Camera) FovY() float32 { return c.fovY }

// Aspect returns the current aspect ratio.
func (c *Camera) Aspect() float32 { return c.aspect }

// WorldPosition returns the camera position in scene space.
func (c *Camera) WorldPosition() mgl32.Vec3 { return c.t.WorldPosition() }

// Forward returns the world-space forward axis (local +Z through the world
// matrix, translation ignored).
func (c *Camera) Forward() mgl32.Vec3 {
	return c.worldAxis(mgl32.Vec3{0, 0, 1})
}

// Up returns the world-space up axis.
func (c *Camera) Up() mgl32.Vec3 {
	return c.worldAxis(mgl32.Vec3{0, 1, 0})
}

func (c *Camera) worldAxis(v mgl32.Vec3) mgl32.Vec3 {
	w := c.t.WorldMatrix().Mul4x1(v.Vec4(0)).Vec3()
	if l := w.Len(); l > 0 {
		return w.Mul(1 / l)
	}
	return v
}
