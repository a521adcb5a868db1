package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"terrain-walk/internal/collision"
)

// Body is a static, named obstacle with an axis-aligned box collider (center position, full extents from scale).
// Rocks and trees are bodies; the terrain is a Heightfield.
type Body struct {
	Name     string
	Position mgl64.Vec3
	Scale    mgl64.Vec3
	Mask     collision.Mask
}

// NewBody returns a body with the given name, center position and extents. A zero scale axis is treated as 1.
func NewBody(name string, position, scale mgl64.Vec3, mask collision.Mask) *Body {
	for i := 0; i < 3; i++ {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}
	return &Body{Name: name, Position: position, Scale: scale, Mask: mask}
}

// Bounds returns the min and max corners of the body's box.
func (b *Body) Bounds() (lo, hi mgl64.Vec3) {
	half := b.Scale.Mul(0.5)
	return b.Position.Sub(half), b.Position.Add(half)
}

// Overlaps reports whether two bodies' boxes intersect with positive volume.
func (b *Body) Overlaps(o *Body) bool {
	alo, ahi := b.Bounds()
	blo, bhi := o.Bounds()
	for i := 0; i < 3; i++ {
		if math.Min(ahi[i], bhi[i])-math.Max(alo[i], blo[i]) <= 0 {
			return false
		}
	}
	return true
}

// intersect returns the ray parameters where r enters and leaves the box (slab method).
// ok is false when the ray misses or the box lies entirely behind the origin.
func (b *Body) intersect(r collision.Ray) (tEnter, tExit float64, ok bool) {
	lo, hi := b.Bounds()
	tEnter = math.Inf(-1)
	tExit = math.Inf(1)
	for i := 0; i < 3; i++ {
		o, d := r.Origin[i], r.Direction[i]
		if math.Abs(d) < 1e-12 {
			if o < lo[i] || o > hi[i] {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo[i] - o) / d
		t2 := (hi[i] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tEnter = math.Max(tEnter, t1)
		tExit = math.Min(tExit, t2)
		if tEnter > tExit {
			return 0, 0, false
		}
	}
	if tExit < 0 {
		return 0, 0, false
	}
	return tEnter, tExit, true
}

// Cast returns the box faces r crosses: the entry face and the exit face, skipping any behind the origin.
func (b *Body) Cast(r collision.Ray) []collision.HitEntry {
	if r.Mask&b.Mask == 0 {
		return nil
	}
	tEnter, tExit, ok := b.intersect(r)
	if !ok {
		return nil
	}
	var hits []collision.HitEntry
	if tEnter >= 0 {
		hits = append(hits, collision.HitEntry{Point: r.At(tEnter), Into: b.Name})
	}
	if tExit > tEnter && tExit >= 0 {
		hits = append(hits, collision.HitEntry{Point: r.At(tExit), Into: b.Name})
	}
	return hits
}
