package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"terrain-walk/internal/collision"
)

// Heightfield is a regular grid of terrain heights on the XY plane. Sample (i, j) sits at
// Origin + (i*CellSize, j*CellSize); heights are Z values in world units.
type Heightfield struct {
	Cols     int // samples along X
	Rows     int // samples along Y
	CellSize float64
	Origin   mgl64.Vec2
	Heights  []float64 // row-major, len Cols*Rows
	Mask     collision.Mask
}

// NewHeightfield allocates a flat heightfield of cols x rows samples centered on the world origin.
func NewHeightfield(cols, rows int, cellSize float64) *Heightfield {
	if cellSize <= 0 {
		cellSize = 1
	}
	w := float64(cols-1) * cellSize
	d := float64(rows-1) * cellSize
	return &Heightfield{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		Origin:   mgl64.Vec2{-w / 2, -d / 2},
		Heights:  make([]float64, cols*rows),
		Mask:     collision.MaskGround,
	}
}

// At returns the stored height of sample (i, j).
func (h *Heightfield) At(i, j int) float64 {
	return h.Heights[j*h.Cols+i]
}

// Set stores the height of sample (i, j).
func (h *Heightfield) Set(i, j int, z float64) {
	h.Heights[j*h.Cols+i] = z
}

// Size returns the world extent on X and Y.
func (h *Heightfield) Size() (w, d float64) {
	return float64(h.Cols-1) * h.CellSize, float64(h.Rows-1) * h.CellSize
}

// Center returns the world XY of the middle of the field.
func (h *Heightfield) Center() mgl64.Vec2 {
	w, d := h.Size()
	return h.Origin.Add(mgl64.Vec2{w / 2, d / 2})
}

// Contains reports whether (x, y) lies over the field.
func (h *Heightfield) Contains(x, y float64) bool {
	w, d := h.Size()
	lx, ly := x-h.Origin.X(), y-h.Origin.Y()
	return lx >= 0 && ly >= 0 && lx <= w && ly <= d
}

// HeightAt returns the bilinearly interpolated height at world (x, y). ok is false off the edge.
func (h *Heightfield) HeightAt(x, y float64) (z float64, ok bool) {
	if h.Cols < 2 || h.Rows < 2 || !h.Contains(x, y) {
		return 0, false
	}
	fx := (x - h.Origin.X()) / h.CellSize
	fy := (y - h.Origin.Y()) / h.CellSize
	i := int(math.Floor(fx))
	j := int(math.Floor(fy))
	if i >= h.Cols-1 {
		i = h.Cols - 2
	}
	if j >= h.Rows-1 {
		j = h.Rows - 2
	}
	tx := fx - float64(i)
	ty := fy - float64(j)

	z00 := h.At(i, j)
	z10 := h.At(i+1, j)
	z01 := h.At(i, j+1)
	z11 := h.At(i+1, j+1)
	a := z00 + (z10-z00)*tx
	b := z01 + (z11-z01)*tx
	return a + (b-a)*ty, true
}

// MinMax returns the lowest and highest stored heights.
func (h *Heightfield) MinMax() (lo, hi float64) {
	if len(h.Heights) == 0 {
		return 0, 0
	}
	lo, hi = h.Heights[0], h.Heights[0]
	for _, z := range h.Heights[1:] {
		lo = math.Min(lo, z)
		hi = math.Max(hi, z)
	}
	return lo, hi
}

// marchStep is the ray-march step as a fraction of a cell for non-vertical rays.
const marchStep = 0.25

// bisectIterations refines a surface crossing found by marching.
const bisectIterations = 24

// Cast returns the first point where r crosses the surface from above, named TerrainName.
// Vertical rays sample the surface directly. Rays starting below the surface do not hit.
func (h *Heightfield) Cast(r collision.Ray) []collision.HitEntry {
	if r.Mask&h.Mask == 0 {
		return nil
	}
	dir := r.Direction
	if math.Abs(dir.X()) < 1e-12 && math.Abs(dir.Y()) < 1e-12 {
		if dir.Z() >= 0 {
			return nil
		}
		z, ok := h.HeightAt(r.Origin.X(), r.Origin.Y())
		if !ok || z > r.Origin.Z() {
			return nil
		}
		return []collision.HitEntry{{Point: mgl64.Vec3{r.Origin.X(), r.Origin.Y(), z}, Into: collision.TerrainName}}
	}

	above := func(t float64) (float64, bool) {
		p := r.At(t)
		z, ok := h.HeightAt(p.X(), p.Y())
		return p.Z() - z, ok
	}
	horiz := math.Hypot(dir.X(), dir.Y())
	step := h.CellSize * marchStep / horiz
	w, d := h.Size()
	tMax := (w + d) / horiz * 2

	prevT := 0.0
	prev, prevOK := above(0)
	for t := step; t <= tMax; t += step {
		cur, ok := above(t)
		if ok && prevOK && prev >= 0 && cur < 0 {
			lo, hi := prevT, t
			for k := 0; k < bisectIterations; k++ {
				mid := (lo + hi) / 2
				if v, _ := above(mid); v >= 0 {
					lo = mid
				} else {
					hi = mid
				}
			}
			p := r.At(hi)
			z, _ := h.HeightAt(p.X(), p.Y())
			return []collision.HitEntry{{Point: mgl64.Vec3{p.X(), p.Y(), z}, Into: collision.TerrainName}}
		}
		prevT, prev, prevOK = t, cur, ok
	}
	return nil
}
