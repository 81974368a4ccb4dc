// Package render is the only package besides the window loop that touches
// the GPU. It turns the scene's pure data (transforms, handles, lights) into
// raylib draw calls, owning every mesh, material, texture, and shader.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit-demo/internal/light"
	"orbit-demo/internal/scene"
)

const (
	lightGizmoRadius = 0.15
	physicsWireAlpha = 160
)

// uniformLight is one light flattened into shader-ready float arrays.
type uniformLight struct {
	typ         float32
	direction   [3]float32
	position    [3]float32
	color       [3]float32
	intensity   float32
	rng         float32
	spotFalloff float32
}

// Renderer draws one scene per frame. It holds the GPU registry and the
// optional skybox; the scene holds no GPU state at all.
type Renderer struct {
	registry *Registry
	sky      *sky
}

// New builds a renderer over the scene's material library. No GPU work
// happens here; resources load lazily on the first Draw.
func New(reg *Registry, assetsDir string) *Renderer {
	return &Renderer{registry: reg, sky: newSky(assetsDir)}
}

// Draw renders one frame of the scene: skybox, grid, lit entities, light
// gizmos, and physics wireframes, all inside one 3D mode block.
func (r *Renderer) Draw(s *scene.Scene) {
	cam := rlCamera(s)

	rl.BeginMode3D(cam)
	r.sky.draw(cam.Position)
	if s.GridVisible {
		drawEditorGrid()
	}

	pos := s.ActiveCamera().WorldPosition()
	r.registry.setFrameUniforms([3]float32{pos.X(), pos.Y(), pos.Z()}, flattenLights(s.Lights))

	for _, e := range s.Entities {
		mesh := r.registry.mesh(e.Mesh())
		mtl := r.registry.material(e.Material())
		r.registry.setMaterialUniforms(e.Material())
		rl.DrawMesh(mesh, mtl, rlMatrix(e.Transform().WorldMatrix()))
	}

	drawLightGizmos(s.Lights)
	drawPhysicsWireframes(s)
	rl.EndMode3D()
}

// Unload frees the renderer's GPU resources. Call before the window closes.
func (r *Renderer) Unload() {
	r.sky.unload()
	r.registry.Unload()
}

// rlCamera builds the raylib camera from the scene's active camera. Target is
// one unit along the forward axis; raylib rebuilds the same view matrix the
// camera package computes.
func rlCamera(s *scene.Scene) rl.Camera3D {
	c := s.ActiveCamera()
	pos := c.WorldPosition()
	fwd := c.Forward()
	up := c.Up()
	return rl.Camera3D{
		Position:   rl.NewVector3(pos.X(), pos.Y(), pos.Z()),
		Target:     rl.NewVector3(pos.X()+fwd.X(), pos.Y()+fwd.Y(), pos.Z()+fwd.Z()),
		Up:         rl.NewVector3(up.X(), up.Y(), up.Z()),
		Fovy:       mgl32.RadToDeg(c.FovY()),
		Projection: rl.CameraPerspective,
	}
}

// rlMatrix converts an mgl32 matrix to raylib's. Both are column-major with
// the same flat layout, so fields map by index.
func rlMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func flattenLights(ls []light.Light) []uniformLight {
	out := make([]uniformLight, 0, len(ls))
	for _, l := range ls {
		out = append(out, uniformLight{
			typ:         float32(l.Type),
			direction:   [3]float32{l.Direction.X(), l.Direction.Y(), l.Direction.Z()},
			position:    [3]float32{l.Position.X(), l.Position.Y(), l.Position.Z()},
			color:       [3]float32{l.Color.X(), l.Color.Y(), l.Color.Z()},
			intensity:   l.Intensity,
			rng:         l.Range,
			spotFalloff: l.SpotFalloff,
		})
	}
	return out
}

// drawLightGizmos marks positional lights with small unlit spheres in the
// light's color. Directional lights have no position to mark.
func drawLightGizmos(ls []light.Light) {
	for _, l := range ls {
		if l.Type == light.TypeDirectional {
			continue
		}
		c := rl.NewColor(
			uint8(mgl32.Clamp(l.Color.X(), 0, 1)*255),
			uint8(mgl32.Clamp(l.Color.Y(), 0, 1)*255),
			uint8(mgl32.Clamp(l.Color.Z(), 0, 1)*255),
			255)
		rl.DrawSphere(rl.NewVector3(l.Position.X(), l.Position.Y(), l.Position.Z()), lightGizmoRadius, c)
	}
}

// drawPhysicsWireframes shows the simulation as wire boxes: grey for static
// bodies, orange for dynamic ones.
func drawPhysicsWireframes(s *scene.Scene) {
	static := rl.NewColor(130, 130, 130, physicsWireAlpha)
	dynamic := rl.NewColor(255, 161, 0, physicsWireAlpha)
	for _, b := range s.Physics.Bodies {
		c := dynamic
		if b.Static {
			c = static
		}
		pos := rl.NewVector3(b.Position.X(), b.Position.Y(), b.Position.Z())
		size := rl.NewVector3(b.Scale.X(), b.Scale.Y(), b.Scale.Z())
		rl.DrawCubeWiresV(pos, size, c)
	}
}
