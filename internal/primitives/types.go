package primitives

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Primitive type names.
const (
	Cube     = "cube"
	Sphere   = "sphere"
	Cylinder = "cylinder"
	Cone     = "cone"
	Plane    = "plane"
)

// Known reports whether primType is one of the primitive type names.
func Known(primType string) bool {
	switch primType {
	case Cube, Sphere, Cylinder, Cone, Plane:
		return true
	}
	return false
}

// Def is how a named thing is drawn when it has no model of its own: a primitive type and a color.
type Def struct {
	Type  string
	Color [4]uint8
}

// RLColor returns the def's color, opaque grey when unset.
func (d Def) RLColor() rl.Color {
	if d.Color == [4]uint8{} {
		return rl.NewColor(128, 128, 128, 255)
	}
	return rl.NewColor(d.Color[0], d.Color[1], d.Color[2], d.Color[3])
}

// DefaultDefs maps the player stand-in parts to primitives.
func DefaultDefs() map[string]Def {
	return map[string]Def{
		"player": {Type: Cylinder, Color: [4]uint8{60, 110, 200, 255}},
		"nose":   {Type: Cone, Color: [4]uint8{230, 200, 60, 255}},
	}
}

// Light is one ambient term plus one directional light.
type Light struct {
	Ambient   float32
	Direction [3]float32 // direction the light travels, raylib Y-up space
	Color     [3]float32
	Specular  float32
}

// DefaultLight is a grey ambient of 0.3 and a white directional light shining along
// (-5,-5,-5) in the Z-up world, i.e. (-5,-5,5) once converted to raylib's Y-up axes.
func DefaultLight() Light {
	return Light{
		Ambient:   0.3,
		Direction: [3]float32{-5, -5, 5},
		Color:     [3]float32{1, 1, 1},
		Specular:  0.2,
	}
}

// toLight returns the normalized direction from a surface toward the light.
func (l Light) toLight() [3]float32 {
	d := l.Direction
	n := float32(math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])))
	if n == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{-d[0] / n, -d[1] / n, -d[2] / n}
}
