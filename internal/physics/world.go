// Package physics runs a minimal rigid-body simulation: gravity, Euler
// integration, and AABB overlap resolution. It is advanced once per frame
// with a fixed timestep and is deliberately not wired back into the scene's
// transform hierarchy; bodies are visualized directly by the renderer.
package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FixedTimestep is the per-frame simulation step in seconds.
const FixedTimestep = float32(1.0 / 60.0)

// aabb is an axis-aligned box in world space.
type aabb struct {
	min, max mgl32.Vec3
}

// World holds a set of bodies and steps them.
type World struct {
	Gravity mgl32.Vec3
	Bodies  []*Body
}

// NewWorld returns a world with default gravity (0, -9.81, 0).
func NewWorld() *World {
	return &World{Gravity: mgl32.Vec3{0, -9.81, 0}}
}

// SetGravity replaces the gravity vector.
func (w *World) SetGravity(g mgl32.Vec3) {
	w.Gravity = g
}

// AddBody appends a body. Order is preserved for stable iteration.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// bodyAABB returns the box for a body: center position, half extents from
// scale. Zero scale components are treated as 1.
func bodyAABB(b *Body) aabb {
	s := b.Scale
	for i := 0; i < 3; i++ {
		if s[i] == 0 {
			s[i] = 1
		}
	}
	half := s.Mul(0.5)
	return aabb{min: b.Position.Sub(half), max: b.Position.Add(half)}
}

// penetrationAxis returns the overlap depth and axis index (0=X, 1=Y, 2=Z)
// of minimum penetration between two boxes, or (0, -1) when disjoint.
func penetrationAxis(a, b aabb) (depth float32, axis int) {
	axis = -1
	for i := 0; i < 3; i++ {
		overlap := math32.Min(a.max[i], b.max[i]) - math32.Max(a.min[i], b.min[i])
		if overlap <= 0 {
			return 0, -1
		}
		if axis == -1 || overlap < depth {
			depth = overlap
			axis = i
		}
	}
	return depth, axis
}

// Step advances the simulation by dt seconds: gravity and integration for
// dynamic bodies, then pairwise AABB resolution pushing overlapping bodies
// apart along the minimum penetration axis. There is no global floor;
// dynamic bodies fall until they hit another body (e.g. a static plane).
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
	}

	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		boxI := bodyAABB(bi)
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.Static && bj.Static {
				continue
			}
			depth, axis := penetrationAxis(boxI, bodyAABB(bj))
			if axis < 0 {
				continue
			}

			var moveI, moveJ float32
			switch {
			case bi.Static:
				moveJ = depth
			case bj.Static:
				moveI = -depth
			default:
				total := bi.Mass + bj.Mass
				moveI = -depth * (bj.Mass / total)
				moveJ = depth * (bi.Mass / total)
			}

			bi.Position[axis] += moveI
			bj.Position[axis] += moveJ
			if !bi.Static {
				bi.Velocity[axis] = 0
			}
			if !bj.Static {
				bj.Velocity[axis] = 0
			}
			boxI = bodyAABB(bi) // refresh for the next pair
		}
	}
}

// BuildStack populates the world with the demo rig: a static ground slab at
// y = -5.5 and a pyramid of unit boxes above it, mirroring the classic
// box-stack scene.
func (w *World) BuildStack(size int) {
	if size < 1 {
		size = 1
	}
	w.AddBody(NewBody(mgl32.Vec3{0, -5.5, 0}, mgl32.Vec3{40, 1, 40}, 0, true))

	const half = float32(0.5)
	for i := 0; i < size; i++ {
		for j := 0; j < size-i; j++ {
			pos := mgl32.Vec3{
				(float32(j*2) - float32(size-i)) * half,
				float32(i*2+1)*half - 5,
				0,
			}
			w.AddBody(NewBody(pos, mgl32.Vec3{1, 1, 1}, 10, false))
		}
	}
}
