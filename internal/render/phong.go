package render

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/shading"
)

// Phong is the shared lighting shader. Normals and positions are transformed to eye space,
// so the light position is relative to the camera. The material color reaches the shader
// through raylib's colDiffuse (the material's albedo color).
type Phong struct {
	shader rl.Shader

	lightPos  int32
	ambient   int32
	diffuse   int32
	specular  int32
	shininess int32
}

// LoadPhong compiles the shader. Call after the window exists.
func LoadPhong() (*Phong, error) {
	shader := rl.LoadShaderFromMemory(phongVS, phongFS)
	if !rl.IsShaderValid(shader) {
		return nil, errors.New("render: phong shader failed to compile")
	}
	return &Phong{
		shader:    shader,
		lightPos:  rl.GetShaderLocation(shader, "lightPosition"),
		ambient:   rl.GetShaderLocation(shader, "ambientColor"),
		diffuse:   rl.GetShaderLocation(shader, "diffuseColor"),
		specular:  rl.GetShaderLocation(shader, "specularColor"),
		shininess: rl.GetShaderLocation(shader, "shininess"),
	}, nil
}

// Shader returns the compiled shader.
func (p *Phong) Shader() rl.Shader {
	return p.shader
}

// Use uploads one part's parameters (cgo-safe: local arrays).
func (p *Phong) Use(params shading.Params) {
	light := params.LightPosition
	amb := params.Ambient
	dif := params.Diffuse
	spec := params.Specular
	if p.lightPos >= 0 {
		rl.SetShaderValueV(p.shader, p.lightPos, light[:], rl.ShaderUniformVec3, 1)
	}
	if p.ambient >= 0 {
		rl.SetShaderValueV(p.shader, p.ambient, amb[:], rl.ShaderUniformVec4, 1)
	}
	if p.diffuse >= 0 {
		rl.SetShaderValueV(p.shader, p.diffuse, dif[:], rl.ShaderUniformVec4, 1)
	}
	if p.specular >= 0 {
		rl.SetShaderValueV(p.shader, p.specular, spec[:], rl.ShaderUniformVec4, 1)
	}
	if p.shininess >= 0 {
		rl.SetShaderValue(p.shader, p.shininess, []float32{params.Shininess}, rl.ShaderUniformFloat)
	}
}

// Unload releases the shader.
func (p *Phong) Unload() {
	if rl.IsShaderValid(p.shader) {
		rl.UnloadShader(p.shader)
	}
}

const (
	phongVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 eyePosition;
out vec3 eyeNormal;
void main() {
  mat4 modelView = matView * matModel;
  vec4 p = modelView * vec4(vertexPosition, 1.0);
  eyePosition = p.xyz;
  eyeNormal = transpose(inverse(mat3(modelView))) * vertexNormal;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	// Blinn half-vector form; matches shading.Evaluate.
	phongFS = `#version 330
in vec3 eyePosition;
in vec3 eyeNormal;
uniform vec4 colDiffuse;
uniform vec3 lightPosition;
uniform vec4 ambientColor;
uniform vec4 diffuseColor;
uniform vec4 specularColor;
uniform float shininess;
out vec4 finalColor;
void main() {
  vec3 N = normalize(eyeNormal);
  vec3 L = normalize(lightPosition - eyePosition);
  vec3 E = normalize(-eyePosition);
  vec3 H = normalize(L + E);
  float ln = dot(L, N);
  float kd = max(ln, 0.0);
  float ks = ln < 0.0 ? 0.0 : pow(max(dot(N, H), 0.0), shininess);
  vec3 tint = colDiffuse.rgb;
  vec3 color = ambientColor.rgb * tint + kd * diffuseColor.rgb * tint + ks * specularColor.rgb;
  finalColor = vec4(clamp(color, 0.0, 1.0), 1.0);
}
`
)
