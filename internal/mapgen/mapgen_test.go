package mapgen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrain-walk/internal/collision"
	"terrain-walk/internal/physics"
)

func testOptions() HeightMapOptions {
	o := DefaultHeightMapOptions()
	o.Width, o.Depth = 40, 30
	o.Seed = 42
	return o
}

func TestGenerateHeightfield(t *testing.T) {
	h := GenerateHeightfield(testOptions())
	assert.Equal(t, 41, h.Cols)
	assert.Equal(t, 31, h.Rows)
	assert.Equal(t, mgl64.Vec2{-20, -15}, h.Origin)

	lo, hi := h.MinMax()
	assert.GreaterOrEqual(t, lo, 0.0)
	assert.LessOrEqual(t, hi, 6.0)
	assert.Less(t, lo, hi, "terrain is not flat")

	again := GenerateHeightfield(testOptions())
	assert.Equal(t, h.Heights, again.Heights, "same seed, same terrain")
}

func TestNormalizeFillsDefaults(t *testing.T) {
	o := HeightMapOptions{Seed: 7}.normalize()
	assert.Equal(t, 32, o.Width)
	assert.Equal(t, 1.0, o.TileSize)
	assert.Equal(t, int64(7), o.Seed)

	o = HeightMapOptions{}.normalize()
	assert.NotZero(t, o.Seed)
}

func TestNoiseRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.37
		n := fractalValueNoise2D(x, -x*0.5, 99, 4, 2, 0.5)
		assert.GreaterOrEqual(t, n, 0.0)
		assert.LessOrEqual(t, n, 1.0)
	}
	assert.Equal(t, 0.0, smoothStep(-1))
	assert.Equal(t, 1.0, smoothStep(2))
	assert.Equal(t, 0.5, smoothStep(0.5))
}

func TestScatter(t *testing.T) {
	h := GenerateHeightfield(testOptions())
	w := physics.NewWorld(h)
	start := StartPoint(h)
	opts := DefaultScatterOptions()
	opts.Seed = 3
	opts.Defs[0].Count = 10
	opts.Defs[1].Count = 10

	n, err := Scatter(w, start.Vec2(), opts)
	require.NoError(t, err)
	assert.Greater(t, n, 0)
	assert.Len(t, w.Bodies, n)

	for i, b := range w.Bodies {
		assert.GreaterOrEqual(t, mgl64.Vec2{b.Position.X(), b.Position.Y()}.Sub(start.Vec2()).Len(), opts.Clearance)
		for j := i + 1; j < len(w.Bodies); j++ {
			assert.False(t, b.Overlaps(w.Bodies[j]))
		}
		// a ground ray straight through an obstacle is blocked
		_, ok := collision.ResolveGroundHeight(w.Cast(collision.Down(mgl64.Vec3{b.Position.X(), b.Position.Y(), 50})))
		assert.False(t, ok, "obstacle %d (%s) does not block", i, b.Name)
	}

	// start point stays walkable
	z, ok := collision.ResolveGroundHeight(w.Cast(collision.Down(start.Add(mgl64.Vec3{0, 0, 9}))))
	require.True(t, ok)
	assert.InDelta(t, start.Z(), z, 1e-9)

	w2 := physics.NewWorld(GenerateHeightfield(testOptions()))
	n2, err := Scatter(w2, start.Vec2(), opts)
	require.NoError(t, err)
	assert.Equal(t, n, n2)
	assert.Equal(t, w.Bodies[0].Position, w2.Bodies[0].Position)
}

func TestScatterRejectsTerrainKind(t *testing.T) {
	w := physics.NewWorld(GenerateHeightfield(testOptions()))
	_, err := Scatter(w, mgl64.Vec2{}, ScatterOptions{Defs: []ObstacleDef{{Kind: "terrain", Count: 1, Size: [3]float64{1, 1, 1}}}})
	assert.Error(t, err)

	_, err = Scatter(physics.NewWorld(nil), mgl64.Vec2{}, DefaultScatterOptions())
	assert.Error(t, err)
}

func TestStartPoint(t *testing.T) {
	h := physics.NewHeightfield(5, 5, 2)
	for i := range h.Heights {
		h.Heights[i] = 1.5
	}
	assert.Equal(t, mgl64.Vec3{0, 0, 1.5}, StartPoint(h))
}

func TestResolveSeeds(t *testing.T) {
	terrain, obstacles := HeightMapOptions{}, ScatterOptions{}
	ResolveSeeds(&terrain, &obstacles)
	assert.NotZero(t, terrain.Seed)
	assert.Equal(t, terrain.Seed, obstacles.Seed, "unset obstacle seed follows the terrain")

	terrain, obstacles = HeightMapOptions{Seed: 5}, ScatterOptions{Seed: 9}
	ResolveSeeds(&terrain, &obstacles)
	assert.Equal(t, int64(5), terrain.Seed)
	assert.Equal(t, int64(9), obstacles.Seed)

	terrain, obstacles = HeightMapOptions{Seed: 5}, ScatterOptions{}
	ResolveSeeds(&terrain, &obstacles)
	assert.Equal(t, int64(5), obstacles.Seed)
}

func TestScatterFollowsSeed(t *testing.T) {
	place := func(seed int64) mgl64.Vec3 {
		w := physics.NewWorld(GenerateHeightfield(testOptions()))
		opts := DefaultScatterOptions()
		opts.Seed = seed
		_, err := Scatter(w, mgl64.Vec2{}, opts)
		require.NoError(t, err)
		require.NotEmpty(t, w.Bodies)
		return w.Bodies[0].Position
	}
	assert.Equal(t, place(11), place(11))
	assert.NotEqual(t, place(11), place(12))
}

func TestScatterOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultScatterOptions().Validate())
	for _, d := range DefaultScatterOptions().Defs {
		assert.NotEmpty(t, d.Shape, d.Kind)
		assert.NotZero(t, d.Color[3], "%s is drawn opaque", d.Kind)
	}

	tests := map[string]ObstacleDef{
		"no kind":        {Count: 1, Size: [3]float64{1, 1, 1}},
		"terrain kind":   {Kind: collision.TerrainName, Count: 1, Size: [3]float64{1, 1, 1}},
		"negative count": {Kind: KindRock, Count: -1, Size: [3]float64{1, 1, 1}},
		"flat size":      {Kind: KindRock, Count: 1, Size: [3]float64{1, 1, 0}},
	}
	for name, def := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ScatterOptions{Defs: []ObstacleDef{def}}.Validate())
		})
	}
}
