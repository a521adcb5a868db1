package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"terrain-walk/internal/collision"
)

// World holds the terrain heightfield and the static obstacle bodies that ground rays are tested against.
type World struct {
	Terrain *Heightfield
	Bodies  []*Body
}

// NewWorld returns a world over the given terrain with no obstacles.
func NewWorld(terrain *Heightfield) *World {
	return &World{Terrain: terrain}
}

// AddBody appends an obstacle. Order is preserved for syncing with scene objects.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Overlapping reports whether b intersects any body already in the world.
func (w *World) Overlapping(b *Body) bool {
	for _, o := range w.Bodies {
		if b.Overlaps(o) {
			return true
		}
	}
	return false
}

// Cast returns every hit of r against the terrain and the bodies, unsorted.
func (w *World) Cast(r collision.Ray) []collision.HitEntry {
	var hits []collision.HitEntry
	if w.Terrain != nil {
		hits = append(hits, w.Terrain.Cast(r)...)
	}
	for _, b := range w.Bodies {
		hits = append(hits, b.Cast(r)...)
	}
	return hits
}

// Collider is a ground ray registered with a Traverser: the ray is rebuilt from Origin every
// traversal and its hits land in Queue.
type Collider struct {
	Name   string
	Origin func() mgl64.Vec3
	Queue  *collision.Queue
}

// Traverser runs every registered ground ray against a world once per frame.
type Traverser struct {
	colliders []Collider
}

// NewTraverser returns a traverser with no colliders.
func NewTraverser() *Traverser {
	return &Traverser{}
}

// AddCollider registers a downward ground ray. origin is called at traversal time.
func (t *Traverser) AddCollider(name string, origin func() mgl64.Vec3, q *collision.Queue) {
	t.colliders = append(t.colliders, Collider{Name: name, Origin: origin, Queue: q})
}

// Traverse clears each collider's queue and fills it with the hits of its ray.
func (t *Traverser) Traverse(w *World) {
	for _, c := range t.colliders {
		c.Queue.Reset()
		c.Queue.Add(w.Cast(collision.Down(c.Origin()))...)
	}
}
