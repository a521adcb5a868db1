package collision

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// TerrainName is the node name a ground hit must carry for the move to count as legal.
const TerrainName = "terrain"

// Mask selects which colliders a ray can hit.
type Mask uint32

const (
	// MaskGround is the bit shared by the ground rays, the terrain and obstacles.
	MaskGround Mask = 1 << 0
	MaskNone   Mask = 0
)

// Ray is a half-line in world space.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	Mask      Mask
}

// Down returns a ground ray starting at origin and pointing along -Z.
func Down(origin mgl64.Vec3) Ray {
	return Ray{Origin: origin, Direction: mgl64.Vec3{0, 0, -1}, Mask: MaskGround}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// HitEntry is one intersection of a ground ray with scene geometry.
type HitEntry struct {
	Point mgl64.Vec3 // world-space surface point
	Into  string     // name of the struck node
}

// SortByZ sorts hits ascending by surface Z. Ties keep their order.
func SortByZ(hits []HitEntry) {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Point.Z() < hits[j].Point.Z()
	})
}

// Lowest returns the hit with the smallest surface Z without reordering hits.
func Lowest(hits []HitEntry) (HitEntry, bool) {
	if len(hits) == 0 {
		return HitEntry{}, false
	}
	low := hits[0]
	for _, h := range hits[1:] {
		if h.Point.Z() < low.Point.Z() {
			low = h
		}
	}
	return low, true
}

// ResolveGroundHeight returns the terrain height under a ground ray. The lowest hit wins: if it is
// the terrain its Z is returned with ok true; no hits or a lower non-terrain hit (rock, tree) give ok false.
func ResolveGroundHeight(hits []HitEntry) (z float64, ok bool) {
	low, found := Lowest(hits)
	if !found || low.Into != TerrainName {
		return 0, false
	}
	return low.Point.Z(), true
}
