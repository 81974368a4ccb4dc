package render

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const skyboxScale = 1000

// skyboxFiles are tried (relative to the assets dir) in order.
var skyboxFiles = []string{
	"skybox/skybox.png",
	"skybox/skybox.jpg",
}

// Equirectangular panoramas are roughly 2:1; anything else is treated as a
// cubemap layout and auto-detected by raylib.
const (
	equirectAspectMin = 1.8
	equirectAspectMax = 2.2
)

// sky draws an optional skybox as a large cube centered on the camera.
// Construction only records the file path; GPU resources load on first draw,
// after the window/GL context exists.
type sky struct {
	path     string
	pending  bool
	loaded   bool
	equirect bool

	tex       rl.Texture2D
	mesh      rl.Mesh
	mtl       rl.Material
	shader    rl.Shader
	camPosLoc int32
	texLoc    int32
}

func newSky(assetsDir string) *sky {
	s := &sky{}
	for _, f := range skyboxFiles {
		p := filepath.Join(assetsDir, f)
		if _, err := os.Stat(p); err == nil {
			s.path = p
			s.pending = true
			break
		}
	}
	return s
}

func (s *sky) ensureLoaded() {
	if !s.pending {
		return
	}
	s.pending = false

	img := rl.LoadImage(s.path)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return
	}
	aspect := float32(img.Width) / float32(img.Height)
	s.equirect = aspect >= equirectAspectMin && aspect <= equirectAspectMax

	if !s.equirect {
		s.tex = rl.LoadTextureCubemap(img, rl.CubemapLayoutAutoDetect)
		rl.UnloadImage(img)
		if !rl.IsTextureValid(s.tex) {
			return
		}
		s.mesh = rl.GenMeshCube(1, 1, 1)
		s.mtl = rl.LoadMaterialDefault()
		rl.SetMaterialTexture(&s.mtl, rl.MapCubemap, s.tex)
		s.loaded = true
		return
	}
	rl.UnloadImage(img)

	s.tex = rl.LoadTexture(s.path)
	if !rl.IsTextureValid(s.tex) {
		return
	}
	shader := rl.LoadShaderFromMemory(skyVS, skyFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(s.tex)
		return
	}
	s.mesh = rl.GenMeshCube(1, 1, 1)
	s.mtl = rl.LoadMaterialDefault()
	s.mtl.Shader = shader
	s.camPosLoc = rl.GetShaderLocation(shader, "cameraPosition")
	s.texLoc = rl.GetShaderLocation(shader, "skybox")
	s.shader = shader
	s.loaded = true
}

// draw renders the sky cube around camPos. Depth writes and backface culling
// are disabled so the cube never occludes the scene.
func (s *sky) draw(camPos rl.Vector3) {
	s.ensureLoaded()
	if !s.loaded {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()

	scale := rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale)
	trans := rl.MatrixTranslate(camPos.X, camPos.Y, camPos.Z)
	m := rl.MatrixMultiply(scale, trans)

	if s.equirect {
		if s.camPosLoc >= 0 {
			pos := []float32{camPos.X, camPos.Y, camPos.Z}
			rl.SetShaderValueV(s.mtl.Shader, s.camPosLoc, pos, rl.ShaderUniformVec3, 1)
		}
		if s.texLoc >= 0 {
			rl.SetShaderValueTexture(s.mtl.Shader, s.texLoc, s.tex)
		}
	}
	rl.DrawMesh(s.mesh, s.mtl, m)

	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

func (s *sky) unload() {
	if !s.loaded {
		return
	}
	rl.UnloadTexture(s.tex)
	rl.UnloadMesh(&s.mesh)
	if s.equirect {
		rl.UnloadShader(s.shader)
	}
	s.loaded = false
}

// Equirectangular sky shader: samples a 2D panorama by view direction.
const (
	skyVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	skyFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D skybox;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(skybox, vec2(u, v));
}
`
)
