package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"terrain-walk/internal/physics"
)

var terrainColor = rl.NewColor(86, 128, 62, 255)

// terrainMesh is the render side of a heightfield: a raylib heightmap mesh and the
// transform that lines it up with the collision surface.
type terrainMesh struct {
	mesh      rl.Mesh
	mtl       rl.Material
	transform rl.Matrix
	loaded    bool
}

// buildTerrain turns the heightfield into a grayscale image and lets raylib mesh it.
// Image rows run along raylib +Z, which is world -Y, so row 0 holds the field's last row.
// Heights are quantized to 8 bits across the field's range.
func buildTerrain(h *physics.Heightfield, shader rl.Shader) terrainMesh {
	lo, hi := h.MinMax()
	span := hi - lo
	img := rl.GenImageColor(h.Cols, h.Rows, rl.Black)
	for j := 0; j < h.Rows; j++ {
		row := h.Rows - 1 - j
		for i := 0; i < h.Cols; i++ {
			v := uint8(0)
			if span > 0 {
				v = uint8((h.At(i, j)-lo)/span*255 + 0.5)
			}
			rl.ImageDrawPixel(img, int32(i), int32(row), rl.NewColor(v, v, v, 255))
		}
	}
	w, d := h.Size()
	height := span
	if height <= 0 {
		height = 1e-3
	}
	mesh := rl.GenMeshHeightmap(*img, rl.NewVector3(float32(w), float32(height), float32(d)))
	rl.UnloadImage(img)
	if mesh.VertexCount == 0 {
		return terrainMesh{}
	}

	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = terrainColor
	}
	// mesh origin is its min corner: world (Origin.X, Origin.Y + d) in raylib coordinates
	x := float32(h.Origin.X())
	z := float32(-(h.Origin.Y() + d))
	return terrainMesh{
		mesh:      mesh,
		mtl:       mtl,
		transform: rl.MatrixTranslate(x, float32(lo), z),
		loaded:    true,
	}
}

func (t *terrainMesh) draw() {
	if !t.loaded {
		return
	}
	rl.DrawMesh(t.mesh, t.mtl, t.transform)
}

func (t *terrainMesh) unload() {
	if !t.loaded {
		return
	}
	rl.UnloadMesh(&t.mesh)
	t.loaded = false
}
