package render

import (
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit-demo/internal/assets"
)

// Mesh generation resolution.
const (
	sphereRings  = 16
	sphereSlices = 16
	coneSlices   = 16
	knotRadial   = 16
	knotSides    = 128
)

// lightLocs caches shader locations for one uniform light slot.
type lightLocs struct {
	typ, direction, position, color int32
	intensity, rng, spotFalloff     int32
}

// Registry owns every GPU resource: generated meshes keyed by assets.MeshID,
// one raylib material per library material, lazily loaded textures, and the
// lighting shader. Everything is created on first use so allocation happens
// after the window/GL context exists (raylib requires it), and freed only in
// Unload at shutdown — entities hold handles, never resources.
type Registry struct {
	lib       *assets.Library
	assetsDir string

	meshes    [4]rl.Mesh
	meshReady [4]bool

	materials  []rl.Material
	textures   []rl.Texture2D
	texReady   []bool
	libVersion uint64

	shader      rl.Shader
	shaderReady bool

	locViewPos      int32
	locAmbient      int32
	locLightCount   int32
	locTiling       int32
	locUseAlbedo    int32
	locSpecPower    int32
	locSpecStrength int32
	locLights       [maxShaderLights]lightLocs
}

// ambientTerm keeps shadowed areas from going pure black.
var ambientTerm = [4]float32{0.2, 0.22, 0.26, 1.0}

// NewRegistry returns an empty registry over the material library.
// assetsDir is the root for texture paths in material definitions.
func NewRegistry(lib *assets.Library, assetsDir string) *Registry {
	return &Registry{lib: lib, assetsDir: assetsDir}
}

// ensureShader compiles the lighting shader and resolves uniform locations.
func (r *Registry) ensureShader() {
	if r.shaderReady {
		return
	}
	r.shader = rl.LoadShaderFromMemory(litVS, litFS)
	r.shaderReady = true

	r.locViewPos = rl.GetShaderLocation(r.shader, "viewPos")
	r.locAmbient = rl.GetShaderLocation(r.shader, "ambient")
	r.locLightCount = rl.GetShaderLocation(r.shader, "lightCount")
	r.locTiling = rl.GetShaderLocation(r.shader, "uvTiling")
	r.locUseAlbedo = rl.GetShaderLocation(r.shader, "useAlbedoMap")
	r.locSpecPower = rl.GetShaderLocation(r.shader, "specularPower")
	r.locSpecStrength = rl.GetShaderLocation(r.shader, "specularStrength")
	for i := 0; i < maxShaderLights; i++ {
		p := fmt.Sprintf("lights[%d].", i)
		r.locLights[i] = lightLocs{
			typ:         rl.GetShaderLocation(r.shader, p+"type"),
			direction:   rl.GetShaderLocation(r.shader, p+"direction"),
			position:    rl.GetShaderLocation(r.shader, p+"position"),
			color:       rl.GetShaderLocation(r.shader, p+"color"),
			intensity:   rl.GetShaderLocation(r.shader, p+"intensity"),
			rng:         rl.GetShaderLocation(r.shader, p+"range"),
			spotFalloff: rl.GetShaderLocation(r.shader, p+"spotFalloff"),
		}
	}
}

// mesh returns the GPU mesh for a handle, generating it on first use.
func (r *Registry) mesh(id assets.MeshID) rl.Mesh {
	id = assets.ClampMesh(id)
	if !r.meshReady[id] {
		switch id {
		case assets.MeshSphere:
			// Radius 0.5 so diameter matches the cube side length.
			r.meshes[id] = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
		case assets.MeshCube:
			r.meshes[id] = rl.GenMeshCube(1, 1, 1)
		case assets.MeshCone:
			r.meshes[id] = rl.GenMeshCone(0.5, 1, coneSlices)
		case assets.MeshKnot:
			r.meshes[id] = rl.GenMeshKnot(1, 0.25, knotRadial, knotSides)
		}
		r.meshReady[id] = true
	}
	return r.meshes[id]
}

// material returns the raylib material for a handle, rebuilding colors and
// textures when the library version moved (live YAML edits).
func (r *Registry) material(id assets.MaterialID) rl.Material {
	r.ensureShader()
	r.syncLibrary()
	return r.materials[r.lib.Clamp(id)]
}

// syncLibrary (re)builds raylib materials from the definition library.
func (r *Registry) syncLibrary() {
	if r.libVersion == r.lib.Version() && len(r.materials) == r.lib.Count() {
		return
	}

	for len(r.materials) < r.lib.Count() {
		m := rl.LoadMaterialDefault()
		m.Shader = r.shader
		r.materials = append(r.materials, m)
		r.textures = append(r.textures, rl.Texture2D{})
		r.texReady = append(r.texReady, false)
	}

	for i := range r.materials {
		def := r.lib.Def(assets.MaterialID(i))
		c := def.ColorVec()
		if albedo := r.materials[i].GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = rl.NewColor(
				uint8(c.X()*255), uint8(c.Y()*255), uint8(c.Z()*255), 255)
		}
		r.loadTexture(i, def)
	}
	r.libVersion = r.lib.Version()
}

// loadTexture loads the definition's albedo image once; failures leave the
// material untextured.
func (r *Registry) loadTexture(i int, def assets.MaterialDef) {
	if def.Texture == "" || r.texReady[i] {
		return
	}
	tex := rl.LoadTexture(filepath.Join(r.assetsDir, def.Texture))
	if !rl.IsTextureValid(tex) {
		return
	}
	r.textures[i] = tex
	r.texReady[i] = true
	rl.SetMaterialTexture(&r.materials[i], rl.MapAlbedo, tex)
}

// setFrameUniforms uploads camera position, ambient, and the light array.
// Called once per frame before drawing entities.
func (r *Registry) setFrameUniforms(viewPos [3]float32, lights []uniformLight) {
	r.ensureShader()
	if r.locViewPos >= 0 {
		rl.SetShaderValueV(r.shader, r.locViewPos, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if r.locAmbient >= 0 {
		amb := ambientTerm
		rl.SetShaderValueV(r.shader, r.locAmbient, amb[:], rl.ShaderUniformVec4, 1)
	}

	n := len(lights)
	if n > maxShaderLights {
		n = maxShaderLights
	}
	if r.locLightCount >= 0 {
		rl.SetShaderValue(r.shader, r.locLightCount, []float32{float32(n)}, rl.ShaderUniformFloat)
	}
	for i := 0; i < n; i++ {
		l := lights[i]
		locs := r.locLights[i]
		if locs.typ >= 0 {
			rl.SetShaderValue(r.shader, locs.typ, []float32{l.typ}, rl.ShaderUniformFloat)
		}
		if locs.direction >= 0 {
			rl.SetShaderValueV(r.shader, locs.direction, l.direction[:], rl.ShaderUniformVec3, 1)
		}
		if locs.position >= 0 {
			rl.SetShaderValueV(r.shader, locs.position, l.position[:], rl.ShaderUniformVec3, 1)
		}
		if locs.color >= 0 {
			rl.SetShaderValueV(r.shader, locs.color, l.color[:], rl.ShaderUniformVec3, 1)
		}
		if locs.intensity >= 0 {
			rl.SetShaderValue(r.shader, locs.intensity, []float32{l.intensity}, rl.ShaderUniformFloat)
		}
		if locs.rng >= 0 {
			rl.SetShaderValue(r.shader, locs.rng, []float32{l.rng}, rl.ShaderUniformFloat)
		}
		if locs.spotFalloff >= 0 {
			rl.SetShaderValue(r.shader, locs.spotFalloff, []float32{l.spotFalloff}, rl.ShaderUniformFloat)
		}
	}
}

// setMaterialUniforms uploads per-draw values: UV tiling, texture presence,
// and the specular terms from the material definition.
func (r *Registry) setMaterialUniforms(id assets.MaterialID) {
	id = r.lib.Clamp(id)
	def := r.lib.Def(id)

	if r.locTiling >= 0 {
		tiling := [2]float32{def.Tiling[0], def.Tiling[1]}
		rl.SetShaderValueV(r.shader, r.locTiling, tiling[:], rl.ShaderUniformVec2, 1)
	}
	if r.locUseAlbedo >= 0 {
		use := float32(0)
		if r.texReady[id] {
			use = 1
		}
		rl.SetShaderValue(r.shader, r.locUseAlbedo, []float32{use}, rl.ShaderUniformFloat)
	}
	if r.locSpecPower >= 0 {
		rl.SetShaderValue(r.shader, r.locSpecPower, []float32{def.SpecularPower}, rl.ShaderUniformFloat)
	}
	if r.locSpecStrength >= 0 {
		rl.SetShaderValue(r.shader, r.locSpecStrength, []float32{def.SpecularStrength}, rl.ShaderUniformFloat)
	}
}

// Unload frees every GPU resource. Call once at shutdown, after the last
// frame: entities reference these resources until then.
func (r *Registry) Unload() {
	for i, ready := range r.meshReady {
		if ready {
			rl.UnloadMesh(&r.meshes[i])
			r.meshReady[i] = false
		}
	}
	for i, ready := range r.texReady {
		if ready {
			rl.UnloadTexture(r.textures[i])
			r.texReady[i] = false
		}
	}
	if r.shaderReady {
		rl.UnloadShader(r.shader)
		r.shaderReady = false
	}
}
