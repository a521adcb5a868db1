package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrain-walk/internal/collision"
)

// slope returns a 5x5 field with cell size 1 whose height equals x + 2 (origin at -2,-2).
func slope() *Heightfield {
	h := NewHeightfield(5, 5, 1)
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			h.Set(i, j, float64(i))
		}
	}
	return h
}

func TestHeightAt(t *testing.T) {
	h := slope()
	assert.Equal(t, mgl64.Vec2{-2, -2}, h.Origin)

	z, ok := h.HeightAt(0, 0)
	require.True(t, ok)
	assert.InDelta(t, 2.0, z, 1e-9)

	z, ok = h.HeightAt(0.5, -1.25)
	require.True(t, ok)
	assert.InDelta(t, 2.5, z, 1e-9)

	z, ok = h.HeightAt(2, 2)
	require.True(t, ok, "far edge is inside")
	assert.InDelta(t, 4.0, z, 1e-9)

	_, ok = h.HeightAt(2.01, 0)
	assert.False(t, ok)

	lo, hi := h.MinMax()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 4.0, hi)
}

func TestHeightfieldCast(t *testing.T) {
	h := slope()

	t.Run("vertical ray", func(t *testing.T) {
		hits := h.Cast(collision.Down(mgl64.Vec3{1, 0, 9}))
		require.Len(t, hits, 1)
		assert.Equal(t, collision.TerrainName, hits[0].Into)
		assert.InDelta(t, 3.0, hits[0].Point.Z(), 1e-9)
	})

	t.Run("origin under the surface", func(t *testing.T) {
		assert.Empty(t, h.Cast(collision.Down(mgl64.Vec3{1, 0, 1})))
	})

	t.Run("off the edge", func(t *testing.T) {
		assert.Empty(t, h.Cast(collision.Down(mgl64.Vec3{10, 0, 9})))
	})

	t.Run("mask mismatch", func(t *testing.T) {
		r := collision.Down(mgl64.Vec3{0, 0, 9})
		r.Mask = collision.MaskNone
		assert.Empty(t, h.Cast(r))
	})

	t.Run("slanted ray", func(t *testing.T) {
		r := collision.Ray{Origin: mgl64.Vec3{-2, 0, 6}, Direction: mgl64.Vec3{1, 0, -1}.Normalize(), Mask: collision.MaskGround}
		hits := h.Cast(r)
		require.Len(t, hits, 1)
		// x + 2 = 6 - (x + 2) -> x = 1
		assert.InDelta(t, 1.0, hits[0].Point.X(), 1e-3)
		assert.InDelta(t, 3.0, hits[0].Point.Z(), 1e-3)
	})
}

func TestBodyCast(t *testing.T) {
	rock := NewBody("rock", mgl64.Vec3{0, 0, 0.5}, mgl64.Vec3{1, 1, 2}, collision.MaskGround)

	hits := rock.Cast(collision.Down(mgl64.Vec3{0.2, 0.1, 9}))
	require.Len(t, hits, 2)
	assert.InDelta(t, 1.5, hits[0].Point.Z(), 1e-9)
	assert.InDelta(t, -0.5, hits[1].Point.Z(), 1e-9)
	assert.Equal(t, "rock", hits[0].Into)

	assert.Empty(t, rock.Cast(collision.Down(mgl64.Vec3{0.6, 0, 9})))

	inside := rock.Cast(collision.Down(mgl64.Vec3{0, 0, 1}))
	require.Len(t, inside, 1, "only the exit face is ahead of an origin inside the box")
	assert.InDelta(t, -0.5, inside[0].Point.Z(), 1e-9)

	above := rock.Cast(collision.Ray{Origin: mgl64.Vec3{0, 0, 9}, Direction: mgl64.Vec3{0, 0, 1}, Mask: collision.MaskGround})
	assert.Empty(t, above)
}

func TestBodyDefaults(t *testing.T) {
	b := NewBody("tree", mgl64.Vec3{}, mgl64.Vec3{0, 2, 0}, collision.MaskGround)
	assert.Equal(t, mgl64.Vec3{1, 2, 1}, b.Scale)
}

func TestOverlaps(t *testing.T) {
	a := NewBody("a", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, collision.MaskGround)
	b := NewBody("b", mgl64.Vec3{0.9, 0, 0}, mgl64.Vec3{1, 1, 1}, collision.MaskGround)
	c := NewBody("c", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1, 1}, collision.MaskGround)
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c), "touching faces do not overlap")

	w := NewWorld(slope())
	w.AddBody(a)
	assert.True(t, w.Overlapping(b))
	assert.False(t, w.Overlapping(c))
}

func TestWorldCastSunkObstacleIsLowest(t *testing.T) {
	w := NewWorld(slope())
	// terrain under (0,0) is 2; the rock's bottom sits at 1.5
	w.AddBody(NewBody("rock", mgl64.Vec3{0, 0, 2}, mgl64.Vec3{1, 1, 1}, collision.MaskGround))

	hits := w.Cast(collision.Down(mgl64.Vec3{0, 0, 9}))
	require.Len(t, hits, 3)
	_, ok := collision.ResolveGroundHeight(hits)
	assert.False(t, ok)

	z, ok := collision.ResolveGroundHeight(w.Cast(collision.Down(mgl64.Vec3{1.5, 0, 9})))
	require.True(t, ok)
	assert.InDelta(t, 3.5, z, 1e-9)
}

func TestTraverser(t *testing.T) {
	w := NewWorld(slope())
	pos := mgl64.Vec3{0, 0, 9}
	var q collision.Queue
	tr := NewTraverser()
	tr.AddCollider("ray", func() mgl64.Vec3 { return pos }, &q)

	tr.Traverse(w)
	require.Equal(t, 1, q.Len())
	assert.InDelta(t, 2.0, q.Entries()[0].Point.Z(), 1e-9)

	pos = mgl64.Vec3{50, 0, 9}
	tr.Traverse(w)
	assert.Equal(t, 0, q.Len(), "queue is reset every traversal")
}
