// Package scene owns the demo's world state: the entity list (and with it
// every transform), the light list, both cameras, the physics world, and the
// material library. Update runs once per frame on the main thread, before
// drawing; the debug UI mutates the same state between frames.
package scene

import (
	"math/rand"
	"time"

	"orbit-demo/internal/assets"
	"orbit-demo/internal/camera"
	"orbit-demo/internal/entity"
	"orbit-demo/internal/input"
	"orbit-demo/internal/light"
	"orbit-demo/internal/logger"
	"orbit-demo/internal/physics"
	"orbit-demo/internal/transform"
)

// Per-frame animation constants for the orbiting sphere chain.
const (
	driftStep   = 0.001 // relative X drift of the root sphere
	bounceStep  = 0.005 // vertical bounce of the root sphere
	bounceLimit = 2.0   // flip the bounce at +/- this height
	rootSpin    = 0.005
	childSpin   = 0.02
	slowSpin    = 0.01
	tiltSpin    = 0.02
	stackSize   = 10
)

// Scene is the world state for one run of the demo.
type Scene struct {
	Entities  []*entity.GameEntity
	Lights    []light.Light
	Materials *assets.Library
	Physics   *physics.World

	GridVisible bool

	fpCam       *camera.Camera
	tpCam       *camera.ThirdPersonCamera
	thirdPerson bool

	lightCount int
	interval   float32
	rng        *rand.Rand
	watcher    *assets.Watcher
	log        *logger.Logger
}

// New builds the demo scene: a parented chain of spheres (the root drifts
// and bounces, children orbit at different rates), the light set, the
// physics box stack, and both cameras.
func New(lib *assets.Library, log *logger.Logger, aspect float32, lightCount int) *Scene {
	s := &Scene{
		Materials:   lib,
		Physics:     physics.NewWorld(),
		GridVisible: true,
		interval:    bounceStep,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		log:         log,
	}

	s.buildEntities(lib)
	s.Lights = light.Generate(s.rng, lightCount)
	s.lightCount = len(s.Lights)
	s.Physics.BuildStack(stackSize)

	s.fpCam = camera.New(0, 0, -10, 3.0, 1.0, aspect)
	s.tpCam = camera.NewThirdPerson(s.Entities[0].Transform(), aspect)
	return s
}

// buildEntities creates the sphere chain: root with two children, one child
// carrying a grandchild, which carries a small great-grandchild.
func (s *Scene) buildEntities(lib *assets.Library) {
	add := func(name string, mesh assets.MeshID, mat assets.MaterialID,
		scale, x, y, z float32) *entity.GameEntity {
		e := entity.New(name, mesh, lib.Clamp(mat))
		e.Transform().SetScale(scale, scale, scale)
		e.Transform().SetPosition(x, y, z)
		s.Entities = append(s.Entities, e)
		return e
	}

	root := add("Cobblestone", assets.MeshSphere, 0, 3, 0, 0, 0)
	orbiter := add("Wood", assets.MeshSphere, 4, 2, 4, 0, 0)
	counter := add("Scratched", assets.MeshSphere, 3, 2, -4, 0, 0)
	moon := add("Bronze", assets.MeshSphere, 1, 1, 6, 0, 0)
	moonlet := add("Paint", assets.MeshSphere, 2, 0.5, 6, 1, 0)

	root.Transform().AddChild(orbiter.Transform())
	root.Transform().AddChild(counter.Transform())
	orbiter.Transform().AddChild(moon.Transform())
	moon.Transform().AddChild(moonlet.Transform())
}

// SetWatcher attaches a material file watcher whose events are drained each
// Update. Optional; nil disables live reload.
func (s *Scene) SetWatcher(w *assets.Watcher) { s.watcher = w }

// Update advances the scene one frame: entity animation, camera toggle and
// movement, light regeneration, the fixed physics step, and any pending
// material reloads.
func (s *Scene) Update(dt float32, in input.State) {
	s.animateEntities()

	if in.ToggleCamera {
		s.thirdPerson = !s.thirdPerson
	}
	if s.thirdPerson {
		s.tpCam.Update(dt, in)
	} else {
		s.fpCam.Update(dt, in)
	}

	if in.RegenerateLights {
		s.Lights = light.Generate(s.rng, s.lightCount)
	}

	s.Physics.Step(physics.FixedTimestep)
	s.drainMaterialReloads()
}

// animateEntities applies the per-frame motion of the sphere chain. The
// root's vertical bounce flips direction at the height limit; child motion
// comes entirely from parent propagation plus each child's own spin.
func (s *Scene) animateEntities() {
	if len(s.Entities) < 4 {
		return
	}
	root := s.Entities[0].Transform()
	y := root.Position().Y()
	if (y >= bounceLimit && s.interval > 0) || (y <= -bounceLimit && s.interval < 0) {
		s.interval = -s.interval
	}
	root.MoveRelative(driftStep, 0, 0)
	root.MoveAbsolute(0, s.interval, 0)
	root.Rotate(0, rootSpin, 0)

	s.Entities[1].Transform().Rotate(0, childSpin, 0)
	s.Entities[2].Transform().Rotate(0, slowSpin, 0)
	s.Entities[3].Transform().Rotate(tiltSpin, 0, 0)
}

func (s *Scene) drainMaterialReloads() {
	if s.watcher == nil {
		return
	}
	for _, path := range s.watcher.Drain() {
		if err := s.Materials.ReloadFile(path); err != nil {
			s.log.Log("material reload failed: " + err.Error())
			continue
		}
		s.log.Log("material reloaded: " + path)
	}
}

// ActiveCamera returns the camera currently driving the view.
func (s *Scene) ActiveCamera() *camera.Camera {
	if s.thirdPerson {
		return s.tpCam.Camera()
	}
	return s.fpCam
}

// FirstPersonCamera returns the free camera regardless of mode.
func (s *Scene) FirstPersonCamera() *camera.Camera { return s.fpCam }

// ThirdPerson reports whether the orbit rig is active.
func (s *Scene) ThirdPerson() bool { return s.thirdPerson }

// SetThirdPerson selects the active camera mode directly (e.g. from saved
// preferences); the C key toggles it afterwards.
func (s *Scene) SetThirdPerson(v bool) { s.thirdPerson = v }

// Pivot returns the orbit rig's pivot transform, for the debug UI.
func (s *Scene) Pivot() *transform.Transform { return s.tpCam.Pivot() }

// LightCount returns the number of lights currently in use.
func (s *Scene) LightCount() int { return s.lightCount }

// SetLightCount changes how many lights are active, regenerating the list
// for the new size. Clamped by the light package.
func (s *Scene) SetLightCount(n int) {
	if n == s.lightCount {
		return
	}
	s.Lights = light.Generate(s.rng, n)
	s.lightCount = len(s.Lights)
}

// OnResize forwards a new aspect ratio to both cameras.
func (s *Scene) OnResize(width, height int) {
	if height <= 0 {
		return
	}
	aspect := float32(width) / float32(height)
	s.fpCam.UpdateProjectionMatrix(aspect)
	s.tpCam.Camera().UpdateProjectionMatrix(aspect)
}
