package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravityIntegration(t *testing.T) {
	w := NewWorld()
	b := NewBody(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, 1, 1}, 1, false)
	w.AddBody(b)

	w.Step(1)
	assert.InDelta(t, -9.81, b.Velocity.Y(), 1e-4, "one second of gravity")
	assert.InDelta(t, 10-9.81, b.Position.Y(), 1e-4, "Euler position update")
	assert.Zero(t, b.Position.X())
	assert.Zero(t, b.Position.Z())
}

func TestStaticBodiesNeverMove(t *testing.T) {
	w := NewWorld()
	s := NewBody(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 1, 10}, 0, true)
	w.AddBody(s)
	for i := 0; i < 120; i++ {
		w.Step(FixedTimestep)
	}
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, s.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, s.Velocity)
}

func TestDynamicBodyRestsOnStaticGround(t *testing.T) {
	w := NewWorld()
	ground := NewBody(mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{20, 1, 20}, 0, true)
	box := NewBody(mgl32.Vec3{0, 3, 0}, mgl32.Vec3{1, 1, 1}, 1, false)
	w.AddBody(ground)
	w.AddBody(box)

	for i := 0; i < 600; i++ {
		w.Step(FixedTimestep)
	}

	// Box bottom sits on ground top: center at ground top + half height.
	assert.InDelta(t, 0.5, box.Position.Y(), 0.02, "box resting height")
	assert.InDelta(t, 0, box.Velocity.Y(), 0.2, "vertical velocity cancelled")
	assert.Equal(t, mgl32.Vec3{0, -0.5, 0}, ground.Position, "ground unmoved")
}

func TestPenetrationResolutionSplitsByMass(t *testing.T) {
	w := NewWorld()
	w.SetGravity(mgl32.Vec3{})
	heavy := NewBody(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2}, 3, false)
	light := NewBody(mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{2, 2, 2}, 1, false)
	w.AddBody(heavy)
	w.AddBody(light)

	w.Step(FixedTimestep)

	gap := light.Position.X() - heavy.Position.X()
	assert.InDelta(t, 2.0, gap, 1e-4, "bodies pushed apart to touching")
	// The lighter body absorbs the larger share of the correction.
	assert.Greater(t, light.Position.X()-1.5, heavy.Position.X()*-1,
		"light body moved farther than heavy body")
}

func TestBuildStack(t *testing.T) {
	w := NewWorld()
	w.BuildStack(4)

	require.Equal(t, 1+4+3+2+1, len(w.Bodies), "ground plus pyramid rows")
	assert.True(t, w.Bodies[0].Static, "first body is the ground slab")
	for _, b := range w.Bodies[1:] {
		assert.False(t, b.Static)
	}
}
