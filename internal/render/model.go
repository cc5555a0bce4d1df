package render

import (
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/assets"
	"scene-viewer/internal/shading"
)

// Backend loads glTF scene files with raylib and shades them with the shared Phong shader.
// It implements assets.Backend and must be used on the thread that owns the window.
type Backend struct {
	phong *Phong
}

// NewBackend returns a backend whose models draw with phong.
func NewBackend(phong *Phong) *Backend {
	return &Backend{phong: phong}
}

// Load parses the scene file at path.
func (b *Backend) Load(path string) (assets.Model, error) {
	m := rl.LoadModel(path)
	if !rl.IsModelValid(m) || m.MeshCount == 0 {
		rl.UnloadModel(m)
		return nil, fmt.Errorf("render: no meshes in %s", path)
	}
	model := &Model{model: m, phong: b.phong}
	for i := range m.GetMaterials() {
		model.parts = append(model.parts, &part{model: model, index: i})
	}
	return model, nil
}

// Model is a loaded glTF model. Each material is one shadeable part.
type Model struct {
	model rl.Model
	phong *Phong
	parts []*part
}

// Parts implements shading.Surface.
func (m *Model) Parts() []shading.Part {
	out := make([]shading.Part, len(m.parts))
	for i, p := range m.parts {
		out[i] = p
	}
	return out
}

// Draw renders every mesh with its material's shading at position and uniform scale.
func (m *Model) Draw(position [3]float32, scale float32) {
	transform := rl.MatrixMultiply(
		m.model.Transform,
		rl.MatrixMultiply(rl.MatrixScale(scale, scale, scale), rl.MatrixTranslate(position[0], position[1], position[2])),
	)
	meshes := m.model.GetMeshes()
	materials := m.model.GetMaterials()
	meshMaterial := unsafe.Slice(m.model.MeshMaterial, m.model.MeshCount)
	for i, mesh := range meshes {
		idx := int(meshMaterial[i])
		if idx < 0 || idx >= len(materials) {
			idx = 0
		}
		if p := m.parts[idx]; p.shaded {
			m.phong.Use(p.params)
		}
		rl.DrawMesh(mesh, materials[idx], transform)
	}
}

// Unload releases the meshes and material maps. raylib leaves material shaders alone here,
// so the shared Phong shader survives.
func (m *Model) Unload() {
	rl.UnloadModel(m.model)
}

type part struct {
	model  *Model
	index  int
	params shading.Params
	shaded bool
}

func (p *part) material() rl.Material {
	return p.model.model.GetMaterials()[p.index]
}

// BaseColor returns the material's albedo color as loaded from the file.
func (p *part) BaseColor() [4]float32 {
	c := p.material().GetMap(rl.MapAlbedo).Color
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// SetShading swaps the material to the Phong shader. The albedo color becomes the tint
// (white when untinted) so colDiffuse carries it into the shader.
func (p *part) SetShading(params shading.Params) {
	materials := p.model.model.GetMaterials()
	materials[p.index].Shader = p.model.phong.Shader()
	tint := params.Tint()
	materials[p.index].GetMap(rl.MapAlbedo).Color = rl.NewColor(
		uint8(tint[0]*255), uint8(tint[1]*255), uint8(tint[2]*255), 255,
	)
	p.params = params
	p.shaded = true
}
