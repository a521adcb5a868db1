package mapgen

import (
	"math"
	"time"

	"terrain-walk/internal/physics"
)

// HeightMapOptions controls procedural terrain generation.
// Width/Depth are in tiles; TileSize is the world size of one tile on X/Y.
// HeightScale is the maximum height of the terrain in world units.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type HeightMapOptions struct {
	Width       int     `yaml:"width"`
	Depth       int     `yaml:"depth"`
	TileSize    float64 `yaml:"tile_size"`
	HeightScale float64 `yaml:"height_scale"`

	Seed       int64   `yaml:"seed"`
	Octaves    int     `yaml:"octaves"`
	Frequency  float64 `yaml:"frequency"`
	Lacunarity float64 `yaml:"lacunarity"`
	Gain       float64 `yaml:"gain"`
}

// DefaultHeightMapOptions returns a sane default configuration.
func DefaultHeightMapOptions() HeightMapOptions {
	return HeightMapOptions{
		Width:       128,
		Depth:       128,
		TileSize:    1.0,
		HeightScale: 6.0,
		Seed:        0,
		Octaves:     4,
		Frequency:   0.04,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

// normalize fills unset or invalid fields with defaults and resolves a zero seed.
func (o HeightMapOptions) normalize() HeightMapOptions {
	if o.Width <= 1 {
		o.Width = 32
	}
	if o.Depth <= 1 {
		o.Depth = 32
	}
	if o.TileSize <= 0 {
		o.TileSize = 1
	}
	if o.HeightScale <= 0 {
		o.HeightScale = 3
	}
	if o.Octaves <= 0 {
		o.Octaves = 4
	}
	if o.Frequency <= 0 {
		o.Frequency = 0.08
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = 2.0
	}
	if o.Gain <= 0 {
		o.Gain = 0.5
	}
	if o.Seed == 0 {
		o.Seed = newSeed()
	}
	return o
}

func newSeed() int64 {
	if s := time.Now().UnixNano(); s != 0 {
		return s
	}
	return 1
}

// GenerateHeightfield builds a (Width+1) x (Depth+1) sample heightfield centered on the world
// origin, with heights in [0, HeightScale] taken from fractal value noise.
func GenerateHeightfield(opts HeightMapOptions) *physics.Heightfield {
	opts = opts.normalize()
	h := physics.NewHeightfield(opts.Width+1, opts.Depth+1, opts.TileSize)
	for j := 0; j < h.Rows; j++ {
		for i := 0; i < h.Cols; i++ {
			n := fractalValueNoise2D(float64(i)*opts.Frequency, float64(j)*opts.Frequency, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			if !isFinite(n) {
				n = 0
			}
			h.Set(i, j, clamp01(n)*opts.HeightScale)
		}
	}
	return h
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value noise with
// configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float64, seed int64, octaves int, lacunarity, gain float64) float64 {
	var sum float64
	amplitude := 1.0
	maxAmp := 0.0
	freq := 1.0

	for i := 0; i < octaves; i++ {
		n := valueNoise2D(x*freq, y*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] using a hash-based lattice and cubic easing.
func valueNoise2D(x, y float64, seed int32) float64 {
	x0 := int32(math.Floor(x))
	y0 := int32(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)

	sx := smoothStep(tx)
	sy := smoothStep(ty)

	ix0 := lerp(v00, v10, sx)
	ix1 := lerp(v01, v11, sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random value in [0,1].
func hash2D(x, y, seed int32) float64 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float64(n&0x7fffffff) * invMaxInt
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t^2 - 2t^3.
func smoothStep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
