package scene

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const skyboxScale = 1000

// Equirectangular panoramas are about 2:1; anything else is treated as a cubemap layout.
const (
	equirectAspectMin = 1.8
	equirectAspectMax = 2.2
)

// DefaultSkyboxPaths are tried in order so the skybox is found whether run from the repo root or cmd/game.
var DefaultSkyboxPaths = []string{
	"assets/skybox/skybox.png",
	"assets/skybox/skybox.jpg",
	"../../assets/skybox/skybox.png",
	"../../assets/skybox/skybox.jpg",
}

// skybox is an optional backdrop drawn first in 3D mode. A missing file leaves the plain background.
type skybox struct {
	path     string // set while the GPU load is pending
	equirect bool   // panorama (2D texture + shader) rather than cubemap
	loaded   bool

	tex       rl.Texture2D
	mesh      rl.Mesh
	mtl       rl.Material
	camPosLoc int32
	texLoc    int32
}

// find picks the first existing file and decides cubemap vs equirect from its aspect ratio.
// The GPU load happens in ensure, after the window exists.
func (s *skybox) find(paths []string) string {
	for _, p := range paths {
		cleaned := filepath.Clean(p)
		if _, err := os.Stat(cleaned); err != nil {
			continue
		}
		img := rl.LoadImage(cleaned)
		if img == nil || img.Width <= 0 || img.Height <= 0 {
			continue
		}
		aspect := float32(img.Width) / float32(img.Height)
		rl.UnloadImage(img)
		s.equirect = aspect >= equirectAspectMin && aspect <= equirectAspectMax
		s.path = cleaned
		return cleaned
	}
	return ""
}

func (s *skybox) ensure() {
	if s.path == "" {
		return
	}
	path := s.path
	s.path = ""

	// the mesh and material are only created once the texture (and shader) are known good
	if !s.equirect {
		img := rl.LoadImage(path)
		if img == nil || img.Width <= 0 || img.Height <= 0 {
			return
		}
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

	s.tex = rl.LoadTexture(path)
	if !rl.IsTextureValid(s.tex) {
		return
	}
	shader := rl.LoadShaderFromMemory(equirectVS, equirectFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(s.tex)
		return
	}
	s.mesh = rl.GenMeshCube(1, 1, 1)
	s.mtl = rl.LoadMaterialDefault()
	s.mtl.Shader = shader
	s.camPosLoc = rl.GetShaderLocation(shader, "cameraPosition")
	s.texLoc = rl.GetShaderLocation(shader, "skybox")
	s.loaded = true
}

// draw renders the skybox as a large cube centered on the camera.
func (s *skybox) draw(camPos rl.Vector3) {
	s.ensure()
	if !s.loaded {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	transform := rl.MatrixMultiply(
		rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale),
		rl.MatrixTranslate(camPos.X, camPos.Y, camPos.Z),
	)
	if s.equirect {
		if s.camPosLoc >= 0 {
			rl.SetShaderValueV(s.mtl.Shader, s.camPosLoc, []float32{camPos.X, camPos.Y, camPos.Z}, rl.ShaderUniformVec3, 1)
		}
		if s.texLoc >= 0 {
			rl.SetShaderValueTexture(s.mtl.Shader, s.texLoc, s.tex)
		}
	}
	rl.DrawMesh(s.mesh, s.mtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

func (s *skybox) unload() {
	if !s.loaded {
		return
	}
	rl.UnloadTexture(s.tex)
	rl.UnloadMesh(&s.mesh)
	if s.equirect {
		rl.UnloadShader(s.mtl.Shader)
	}
	s.loaded = false
}

// Equirectangular skybox shader: samples a 2D panorama by view direction.
const (
	equirectVS = `#version 330
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
	equirectFS = `#version 330
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
