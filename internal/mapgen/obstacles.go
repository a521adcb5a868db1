package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"terrain-walk/internal/collision"
	"terrain-walk/internal/physics"
)

// Obstacle kinds. The name doubles as the collision node name, so ground rays hitting one report it.
const (
	KindRock = "rock"
	KindTree = "tree"
)

// ObstacleDef describes one kind of obstacle to scatter over the terrain.
// Size is the collider extent (X, Y, Z); Sink is how far its base goes below the local ground.
// Shape and Color say how the kind is drawn; they do not affect collision.
type ObstacleDef struct {
	Kind  string     `yaml:"kind"`
	Count int        `yaml:"count"`
	Size  [3]float64 `yaml:"size"`
	Sink  float64    `yaml:"sink"`
	Shape string     `yaml:"shape"` // cube, sphere, cylinder, cone or plane
	Color [4]uint8   `yaml:"color"` // RGBA
}

// ScatterOptions controls obstacle placement.
type ScatterOptions struct {
	Seed      int64         `yaml:"seed"`
	Clearance float64       `yaml:"clearance"` // keep this radius around the start point free
	Margin    float64       `yaml:"margin"`    // distance kept from the terrain edge
	Defs      []ObstacleDef `yaml:"defs"`
}

// DefaultScatterOptions returns a few rocks and trees.
func DefaultScatterOptions() ScatterOptions {
	return ScatterOptions{
		Clearance: 6,
		Margin:    2,
		Defs: []ObstacleDef{
			{Kind: KindRock, Count: 40, Size: [3]float64{1.2, 1.2, 1.0}, Sink: 0.3,
				Shape: "sphere", Color: [4]uint8{120, 116, 110, 255}},
			{Kind: KindTree, Count: 60, Size: [3]float64{0.6, 0.6, 4.0}, Sink: 0.3,
				Shape: "cylinder", Color: [4]uint8{96, 70, 44, 255}},
		},
	}
}

// Validate checks every def can be scattered: a kind other than the terrain's name, a
// non-negative count and a positive size.
func (o ScatterOptions) Validate() error {
	for _, d := range o.Defs {
		switch {
		case d.Kind == "" || d.Kind == collision.TerrainName:
			return fmt.Errorf("mapgen: invalid obstacle kind %q", d.Kind)
		case d.Count < 0:
			return fmt.Errorf("mapgen: %s: negative count %d", d.Kind, d.Count)
		case d.Size[0] <= 0 || d.Size[1] <= 0 || d.Size[2] <= 0:
			return fmt.Errorf("mapgen: %s: size %v must be positive", d.Kind, d.Size)
		}
	}
	return nil
}

// ResolveSeeds replaces a zero terrain seed with a time-based one, then gives a zero obstacle
// seed the resolved terrain seed, so each random terrain gets its own scatter and a logged
// terrain seed reproduces both.
func ResolveSeeds(terrain *HeightMapOptions, obstacles *ScatterOptions) {
	if terrain.Seed == 0 {
		terrain.Seed = newSeed()
	}
	if obstacles.Seed == 0 {
		obstacles.Seed = terrain.Seed
	}
}

// maxAttemptsPerObstacle bounds the rejection sampling so a crowded map still terminates.
const maxAttemptsPerObstacle = 50

// Scatter places obstacles on the world's terrain and adds them as bodies. Each body's bottom
// sits Sink below the lowest ground under its footprint, so a ground ray through it reports the
// obstacle as the lowest hit. Placement is deterministic for a given seed and terrain.
// It returns the number of obstacles placed.
func Scatter(w *physics.World, start mgl64.Vec2, opts ScatterOptions) (int, error) {
	if w.Terrain == nil {
		return 0, fmt.Errorf("mapgen: scatter: world has no terrain")
	}
	if err := opts.Validate(); err != nil {
		return 0, fmt.Errorf("mapgen: scatter: %w", err)
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	width, depth := w.Terrain.Size()
	origin := w.Terrain.Origin

	placed := 0
	for _, def := range opts.Defs {
		size := mgl64.Vec3{def.Size[0], def.Size[1], def.Size[2]}
		for n := 0; n < def.Count; n++ {
			for attempt := 0; attempt < maxAttemptsPerObstacle; attempt++ {
				x := origin.X() + opts.Margin + rng.Float64()*(width-2*opts.Margin)
				y := origin.Y() + opts.Margin + rng.Float64()*(depth-2*opts.Margin)
				p := mgl64.Vec2{x, y}
				if p.Sub(start).Len() < opts.Clearance {
					continue
				}
				ground, ok := footprintLow(w.Terrain, x, y, size)
				if !ok {
					continue
				}
				base := ground - def.Sink
				b := physics.NewBody(def.Kind, mgl64.Vec3{x, y, base + size.Z()/2}, size, collision.MaskGround)
				if w.Overlapping(b) {
					continue
				}
				w.AddBody(b)
				placed++
				break
			}
		}
	}
	return placed, nil
}

// footprintLow returns the lowest ground height under the corners and center of a box footprint.
func footprintLow(h *physics.Heightfield, x, y float64, size mgl64.Vec3) (float64, bool) {
	hx, hy := size.X()/2, size.Y()/2
	low := 0.0
	for k, p := range [][2]float64{{x, y}, {x - hx, y - hy}, {x + hx, y - hy}, {x - hx, y + hy}, {x + hx, y + hy}} {
		z, ok := h.HeightAt(p[0], p[1])
		if !ok {
			return 0, false
		}
		if k == 0 || z < low {
			low = z
		}
	}
	return low, true
}

// StartPoint returns where the player spawns: the terrain center at ground height.
func StartPoint(h *physics.Heightfield) mgl64.Vec3 {
	c := h.Center()
	z, _ := h.HeightAt(c.X(), c.Y())
	return mgl64.Vec3{c.X(), c.Y(), z}
}
