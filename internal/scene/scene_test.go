package scene

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbit-demo/internal/assets"
	"orbit-demo/internal/input"
	"orbit-demo/internal/light"
	"orbit-demo/internal/logger"
)

// chdir is t.Chdir for toolchains older than Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	chdir(t, t.TempDir()) // logger writes under the working directory
	return New(assets.DefaultLibrary(), logger.New(), 16.0/9.0, 16)
}

func TestSceneConstruction(t *testing.T) {
	s := newTestScene(t)

	require.Len(t, s.Entities, 5)
	assert.Equal(t, 16, s.LightCount())
	assert.Len(t, s.Lights, 16)
	assert.True(t, s.GridVisible)
	assert.False(t, s.ThirdPerson())

	// Parent chain: root -> {orbiter, counter}, orbiter -> moon -> moonlet.
	root := s.Entities[0].Transform()
	assert.Equal(t, 0, root.IndexOfChild(s.Entities[1].Transform()))
	assert.Equal(t, 1, root.IndexOfChild(s.Entities[2].Transform()))
	assert.Same(t, s.Entities[1].Transform(), s.Entities[3].Transform().Parent())
	assert.Same(t, s.Entities[3].Transform(), s.Entities[4].Transform().Parent())

	// Ground slab plus the box pyramid.
	assert.Greater(t, len(s.Physics.Bodies), 1)
	assert.True(t, s.Physics.Bodies[0].Static)
}

func TestChildrenFollowRootAnimation(t *testing.T) {
	s := newTestScene(t)
	moon := s.Entities[3].Transform()
	before := moon.WorldPosition()

	for i := 0; i < 30; i++ {
		s.Update(1.0/60.0, input.State{})
	}

	after := moon.WorldPosition()
	assert.NotEqual(t, before, after, "descendants must move with the animated root")
}

func TestBounceStaysWithinLimits(t *testing.T) {
	s := newTestScene(t)
	for i := 0; i < 2000; i++ {
		s.Update(1.0/60.0, input.State{})
		y := s.Entities[0].Transform().Position().Y()
		require.LessOrEqual(t, y, float32(bounceLimit)+float32(bounceStep)*2)
		require.GreaterOrEqual(t, y, -float32(bounceLimit)-float32(bounceStep)*2)
	}
}

func TestCameraToggle(t *testing.T) {
	s := newTestScene(t)
	first := s.ActiveCamera()

	s.Update(1.0/60.0, input.State{ToggleCamera: true})
	assert.True(t, s.ThirdPerson())
	assert.NotSame(t, first, s.ActiveCamera(), "toggle switches to the rig camera")

	s.Update(1.0/60.0, input.State{ToggleCamera: true})
	assert.False(t, s.ThirdPerson())
	assert.Same(t, first, s.ActiveCamera())
}

func TestRegenerateLightsKeepsCount(t *testing.T) {
	s := newTestScene(t)
	before := append([]light.Light(nil), s.Lights...)

	s.Update(1.0/60.0, input.State{RegenerateLights: true})

	assert.Len(t, s.Lights, len(before), "regeneration keeps the count")
	assert.NotEqual(t, before[light.MinLights:], s.Lights[light.MinLights:],
		"point lights reroll")
}

func TestSetLightCountClamps(t *testing.T) {
	s := newTestScene(t)

	s.SetLightCount(500)
	assert.Equal(t, light.MaxLights, s.LightCount())
	assert.Len(t, s.Lights, light.MaxLights)

	s.SetLightCount(0)
	assert.Equal(t, light.MinLights, s.LightCount())
}

func TestOnResizeUpdatesBothCameras(t *testing.T) {
	s := newTestScene(t)
	s.OnResize(800, 600)
	assert.InDelta(t, 800.0/600.0, s.FirstPersonCamera().Aspect(), 1e-5)

	s.Update(1.0/60.0, input.State{ToggleCamera: true})
	assert.InDelta(t, 800.0/600.0, s.ActiveCamera().Aspect(), 1e-5)

	s.OnResize(100, 0) // degenerate resize is ignored
	assert.InDelta(t, 800.0/600.0, s.FirstPersonCamera().Aspect(), 1e-5)
}
