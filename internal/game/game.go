package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"terrain-walk/internal/animation"
	"terrain-walk/internal/collision"
	"terrain-walk/internal/input"
	"terrain-walk/internal/physics"
)

// Tuning holds the movement and camera constants. Lengths are world units unless noted.
type Tuning struct {
	TurnRate        float64 `yaml:"turn_rate"`       // degrees/s
	RunSpeed        float64 `yaml:"run_speed"`       // player-local units/s
	CamStrafeRate   float64 `yaml:"cam_strafe_rate"` // units/s
	CamDistMin      float64 `yaml:"cam_dist_min"`
	CamDistMax      float64 `yaml:"cam_dist_max"`
	CamTargetHeight float64 `yaml:"cam_target_height"` // floater height, player-local units
	CamAboveTerrain float64 `yaml:"cam_above_terrain"`
	CamAbovePlayer  float64 `yaml:"cam_above_player"`
	RayHeight       float64 `yaml:"ray_height"` // ground ray origin, local units of the probing node
	PlayerScale     float64 `yaml:"player_scale"`
	StartLift       float64 `yaml:"start_lift"`     // added to the start point Z
	CamStartBack    float64 `yaml:"cam_start_back"` // initial camera offset along +Y
	CamStartZ       float64 `yaml:"cam_start_z"`    // initial camera altitude
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		TurnRate:        300,
		RunSpeed:        25,
		CamStrafeRate:   20,
		CamDistMin:      2,
		CamDistMax:      5,
		CamTargetHeight: 3,
		CamAboveTerrain: 1,
		CamAbovePlayer:  2,
		RayHeight:       9,
		PlayerScale:     0.2,
		StartLift:       0.5,
		CamStartBack:    10,
		CamStartZ:       2,
	}
}

// Stats counts what happened over the run.
type Stats struct {
	Frames        uint64
	RejectedMoves uint64
	LastRejected  bool
}

// Game is the per-frame state of the demo: the player, the camera and their ground rays.
// It is driven by Update from a single goroutine.
type Game struct {
	Tuning Tuning
	Player Transform
	Camera Camera
	Stats  Stats

	anim  animation.Controller
	actor animation.Actor
	world *physics.World
	trav  *physics.Traverser

	playerHits collision.Queue
	camHits    collision.Queue
}

// New places the player at start (lifted by StartLift) and the camera behind it, and registers
// the player and camera ground rays. actor may be nil.
func New(t Tuning, world *physics.World, actor animation.Actor, start mgl64.Vec3) *Game {
	if actor == nil {
		actor = &animation.Recorder{}
	}
	g := &Game{
		Tuning: t,
		actor:  actor,
		world:  world,
		trav:   physics.NewTraverser(),
	}
	g.Player = Transform{Pos: start.Add(mgl64.Vec3{0, 0, t.StartLift}), Scale: t.PlayerScale}
	g.Camera = Camera{
		Pos:     mgl64.Vec3{g.Player.Pos.X(), g.Player.Pos.Y() + t.CamStartBack, t.CamStartZ},
		Forward: mgl64.Vec3{0, 1, 0},
	}
	g.trav.AddCollider("playerRay", g.playerRayOrigin, &g.playerHits)
	g.trav.AddCollider("camRay", g.cameraRayOrigin, &g.camHits)
	return g
}

func (g *Game) playerRayOrigin() mgl64.Vec3 {
	return g.Player.Pos.Add(g.Player.ToWorld(mgl64.Vec3{0, 0, g.Tuning.RayHeight}))
}

func (g *Game) cameraRayOrigin() mgl64.Vec3 {
	return g.Camera.Pos.Add(mgl64.Vec3{0, 0, g.Tuning.RayHeight})
}

// RayOrigins returns the current origins of the player and camera ground rays.
func (g *Game) RayOrigins() (player, camera mgl64.Vec3) {
	return g.playerRayOrigin(), g.cameraRayOrigin()
}

// Floater returns the point above the player that the camera aims at.
func (g *Game) Floater() mgl64.Vec3 {
	return g.Player.Pos.Add(g.Player.ToWorld(mgl64.Vec3{0, 0, g.Tuning.CamTargetHeight}))
}

// Moving reports whether the run animation is playing.
func (g *Game) Moving() bool {
	return g.anim.Moving
}

// Update advances the game by dt seconds using the keys held this frame.
func (g *Game) Update(keys input.KeyState, dt float64) {
	t := g.Tuning
	g.Stats.Frames++

	if keys.CamLeft {
		g.Camera.Strafe(-t.CamStrafeRate * dt)
	}
	if keys.CamRight {
		g.Camera.Strafe(t.CamStrafeRate * dt)
	}

	// rollback point if the ground ray rejects the move
	startPos := g.Player.Pos

	if keys.Left {
		g.Player.Heading += t.TurnRate * dt
	}
	if keys.Right {
		g.Player.Heading -= t.TurnRate * dt
	}
	if keys.Forward {
		g.Player.MoveLocal(mgl64.Vec3{0, -t.RunSpeed * dt, 0})
	}
	if keys.Backward {
		g.Player.MoveLocal(mgl64.Vec3{0, t.RunSpeed * dt, 0})
	}

	g.anim.Update(g.actor, keys.Moving())

	g.Camera.Pos = ClampCameraDistance(g.Camera.Pos, g.Player.Pos, t.CamDistMin, t.CamDistMax)

	g.trav.Traverse(g.world)

	g.Stats.LastRejected = false
	if z, ok := collision.ResolveGroundHeight(g.playerHits.Entries()); ok {
		g.Player.Pos[2] = z
	} else {
		g.Player.Pos = startPos
		g.Stats.RejectedMoves++
		g.Stats.LastRejected = true
	}

	if z, ok := collision.ResolveGroundHeight(g.camHits.Entries()); ok {
		g.Camera.Pos[2] = z + t.CamAboveTerrain
	}
	if floor := g.Player.Pos.Z() + t.CamAbovePlayer; g.Camera.Pos.Z() < floor {
		g.Camera.Pos[2] = floor
	}

	g.Camera.LookAt(g.Floater())
}
