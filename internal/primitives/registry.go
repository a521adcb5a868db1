package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds the mesh and material for a primitive type. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// modelCenterOffset shifts the mesh so the draw position is the primitive's center.
	offset [3]float32
}

// Registry maps primitive type names to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache   map[string]cached
	shader  rl.Shader
	light   Light
	viewPos [3]float32 // camera position, set each frame for specular
}

// NewRegistry returns a registry with no primitives and the given light.
func NewRegistry(light Light) *Registry {
	return &Registry{
		cache: make(map[string]cached),
		light: light,
	}
}

// SetView sets the camera position for this frame. Call once per frame before drawing.
func (r *Registry) SetView(viewPos [3]float32) {
	r.viewPos = viewPos
}

const (
	sphereRings     = 12
	sphereSlices    = 16
	cylinderSlices  = 12
	planeResolution = 1
)

// genMesh builds the unit mesh for a primitive type: side, diameter and height are all 1.
func genMesh(primType string) (mesh rl.Mesh, offset [3]float32, ok bool) {
	switch primType {
	case Cube:
		return rl.GenMeshCube(1, 1, 1), [3]float32{}, true
	case Sphere:
		return rl.GenMeshSphere(0.5, sphereRings, sphereSlices), [3]float32{}, true
	case Cylinder:
		// raylib cylinder: base at Y=0, top at Y=height
		return rl.GenMeshCylinder(0.5, 1, cylinderSlices), [3]float32{0, -0.5, 0}, true
	case Cone:
		return rl.GenMeshCone(0.5, 1, cylinderSlices), [3]float32{0, -0.5, 0}, true
	case Plane:
		return rl.GenMeshPlane(1, 1, planeResolution, planeResolution), [3]float32{}, true
	}
	return rl.Mesh{}, [3]float32{}, false
}

// Shader returns the lit shader, loading it on first use. Other drawables (terrain, the
// player model) share it so everything is lit by the same ambient and directional light.
func (r *Registry) Shader() rl.Shader {
	if r.shader.ID == 0 {
		r.shader = rl.LoadShaderFromMemory(litVS, litFS)
	}
	return r.shader
}

func (r *Registry) ensure(primType string) (cached, bool) {
	if c, ok := r.cache[primType]; ok {
		return c, true
	}
	mesh, offset, ok := genMesh(primType)
	if !ok {
		return cached{}, false
	}
	mtl := rl.LoadMaterialDefault()
	if shader := r.Shader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	c := cached{mesh: mesh, mtl: mtl, offset: offset}
	r.cache[primType] = c
	return c, true
}

// ApplyLighting uploads the light and view uniforms. Draw calls it; callers drawing their own
// meshes with Shader() call it once per frame before doing so.
func (r *Registry) ApplyLighting() {
	shader := r.Shader()
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	toLight := r.light.toLight()
	amb := [4]float32{r.light.Ambient, r.light.Ambient, r.light.Ambient, 1}
	lightColor := [3]float32{r.light.Color[0], r.light.Color[1], r.light.Color[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, toLight[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{r.light.Specular}, rl.ShaderUniformFloat)
	}
}

// Draw draws one instance of the given type centered at position (raylib Y-up space) with
// per-axis scale, tinted with color. Must be called between BeginMode3D and EndMode3D.
// Unknown types are skipped.
func (r *Registry) Draw(primType string, position, scale [3]float32, color rl.Color) {
	c, ok := r.ensure(primType)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.ApplyLighting()
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}
	scaleM := rl.MatrixScale(scale[0], scale[1], scale[2])
	transM := rl.MatrixTranslate(position[0], position[1], position[2])
	transform := rl.MatrixMultiply(scaleM, transM)
	if c.offset != [3]float32{} {
		offsetM := rl.MatrixTranslate(c.offset[0], c.offset[1], c.offset[2])
		// offset (center mesh), then scale, then translate to position
		transform = rl.MatrixMultiply(offsetM, transform)
	}
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// DrawDef draws a primitive described by def, centered at position with the given scale.
func (r *Registry) DrawDef(def Def, position, scale [3]float32) {
	r.Draw(def.Type, position, scale, def.RLColor())
}

// Unload frees every cached mesh and the shared shader.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.shader.ID != 0 {
		rl.UnloadShader(r.shader)
		r.shader = rl.Shader{}
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), 32.0) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)
