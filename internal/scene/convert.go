package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// toRL converts a Z-up world point into raylib's Y-up space: (x, y, z) -> (x, z, -y).
func toRL(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Z()), float32(-v.Y()))
}

// extentsToRL converts per-axis box extents; extents have no sign, so Y and Z just swap.
func extentsToRL(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v.X()), float32(v.Z()), float32(v.Y())}
}

func vecArray(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
