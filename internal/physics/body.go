package physics

import "github.com/go-gl/mathgl/mgl32"

// Body is a 3D rigid body with position, velocity, and an AABB derived from
// its scale. Static bodies do not move and ignore gravity.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Scale    mgl32.Vec3
	Mass     float32
	Static   bool
}

// NewBody returns a body with the given position and scale and zero
// velocity. mass is used for collision response; non-positive mass is
// treated as 1.
func NewBody(position, scale mgl32.Vec3, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Position: position,
		Scale:    scale,
		Mass:     mass,
		Static:   static,
	}
}
