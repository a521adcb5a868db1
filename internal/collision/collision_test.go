package collision_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"terrain-walk/internal/collision"
)

func hit(z float64, into string) collision.HitEntry {
	return collision.HitEntry{Point: mgl64.Vec3{1, 2, z}, Into: into}
}

func TestResolveGroundHeight(t *testing.T) {
	tests := []struct {
		name   string
		hits   []collision.HitEntry
		wantZ  float64
		wantOK bool
	}{
		{name: "no hits", hits: nil},
		{name: "single terrain", hits: []collision.HitEntry{hit(1.5, "terrain")}, wantZ: 1.5, wantOK: true},
		{
			name:   "lowest is terrain",
			hits:   []collision.HitEntry{hit(3, "rock"), hit(-0.25, "terrain"), hit(2, "tree")},
			wantZ:  -0.25,
			wantOK: true,
		},
		{
			name: "lowest is an obstacle",
			hits: []collision.HitEntry{hit(1, "terrain"), hit(0.5, "rock")},
		},
		{
			name: "name must match exactly",
			hits: []collision.HitEntry{hit(1, "Terrain")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, ok := collision.ResolveGroundHeight(tt.hits)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantZ, z, 1e-12)
			}
		})
	}
}

func TestResolveGroundHeightLeavesInputAlone(t *testing.T) {
	hits := []collision.HitEntry{hit(3, "rock"), hit(1, "terrain")}
	collision.ResolveGroundHeight(hits)
	assert.Equal(t, "rock", hits[0].Into)
}

func TestSortByZ(t *testing.T) {
	hits := []collision.HitEntry{hit(2, "a"), hit(-1, "b"), hit(2, "c"), hit(0, "d")}
	collision.SortByZ(hits)
	var names []string
	for _, h := range hits {
		names = append(names, h.Into)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, names)
}

func TestQueue(t *testing.T) {
	var q collision.Queue
	q.Add(hit(4, "tree"), hit(1, "terrain"))
	assert.Equal(t, 2, q.Len())
	entries := q.Entries()
	assert.Equal(t, "terrain", entries[0].Into)

	q.Reset()
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Entries())
}

func TestDownRay(t *testing.T) {
	r := collision.Down(mgl64.Vec3{1, 2, 9})
	assert.Equal(t, collision.MaskGround, r.Mask)
	assert.Equal(t, mgl64.Vec3{1, 2, 5}, r.At(4))
}
