package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var worldUp = mgl64.Vec3{0, 0, 1}

// Transform is a node's placement in the Z-up world. Heading is in degrees about +Z,
// counter-clockwise; local -Y is the direction the node faces.
type Transform struct {
	Pos     mgl64.Vec3
	Heading float64
	Scale   float64
}

// ToWorld converts a local-frame offset into a world-space offset (rotation by heading, then scale).
func (t Transform) ToWorld(local mgl64.Vec3) mgl64.Vec3 {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	rot := mgl64.Rotate3DZ(mgl64.DegToRad(t.Heading))
	return rot.Mul3x1(local.Mul(s))
}

// MoveLocal translates the node by an offset expressed in its own frame.
func (t *Transform) MoveLocal(local mgl64.Vec3) {
	t.Pos = t.Pos.Add(t.ToWorld(local))
}

// Camera is a free camera: a position and a unit view direction.
type Camera struct {
	Pos     mgl64.Vec3
	Forward mgl64.Vec3
}

// Right returns the camera's horizontal right axis. A camera looking straight up or down falls back to +X.
func (c Camera) Right() mgl64.Vec3 {
	r := c.Forward.Cross(worldUp)
	r[2] = 0
	if r.Len() < 1e-9 {
		return mgl64.Vec3{1, 0, 0}
	}
	return r.Normalize()
}

// Strafe moves the camera along its right axis; negative amounts move it left.
func (c *Camera) Strafe(amount float64) {
	c.Pos = c.Pos.Add(c.Right().Mul(amount))
}

// LookAt turns the camera toward target. Looking at its own position is a no-op.
func (c *Camera) LookAt(target mgl64.Vec3) {
	dir := target.Sub(c.Pos)
	if dir.Len() < 1e-9 {
		return
	}
	c.Forward = dir.Normalize()
}

// Pitch returns the camera's elevation angle in degrees (negative when looking down).
func (c Camera) Pitch() float64 {
	return mgl64.RadToDeg(math.Asin(mgl64.Clamp(c.Forward.Z(), -1, 1)))
}

// ClampCameraDistance keeps the horizontal distance between camera and player within [lo, hi]
// by sliding the camera along the line to the player. Camera height is left alone, and a camera
// directly above the player is not moved.
func ClampCameraDistance(cam, player mgl64.Vec3, lo, hi float64) mgl64.Vec3 {
	v := player.Sub(cam)
	v[2] = 0
	dist := v.Len()
	if dist < 1e-9 {
		return cam
	}
	v = v.Mul(1 / dist)
	switch {
	case dist > hi:
		return cam.Add(v.Mul(dist - hi))
	case dist < lo:
		return cam.Sub(v.Mul(lo - dist))
	}
	return cam
}

// HorizontalDistance returns the XY distance between a and b.
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Y()-b.Y())
}
