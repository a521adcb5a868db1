package scene

import (
	"maps"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"terrain-walk/internal/game"
	"terrain-walk/internal/mapgen"
	"terrain-walk/internal/physics"
	"terrain-walk/internal/primitives"
)

const (
	fovy            = 45
	standInHeight   = 5.0 // player-local units, about the size of a character model
	standInDiameter = 2.0
	noseSize        = 0.8
)

var (
	rayColor      = rl.NewColor(255, 60, 60, 255)
	rejectedColor = rl.NewColor(255, 160, 0, 255)
)

// Options configures what the scene draws.
type Options struct {
	SkyboxPaths []string
	Defs        map[string]primitives.Def // body name -> primitive; "player" and "nose" for the stand-in
	Obstacles   []mapgen.ObstacleDef      // drawn with their Shape and Color; overrides Defs
	ShowRays  bool
}

// Scene draws the world from the game camera: skybox, terrain, obstacles and the player.
// GPU resources are created on the first Draw, after the window/OpenGL context exists.
type Scene struct {
	Camera rl.Camera3D

	opts    Options
	log     *zap.SugaredLogger
	prims   *primitives.Registry
	sky     skybox
	terrain terrainMesh
	built   bool
}

// New returns a scene with a perspective camera. It looks for a skybox on disk but loads
// nothing onto the GPU yet.
func New(opts Options, log *zap.SugaredLogger) *Scene {
	if opts.Defs == nil {
		opts.Defs = primitives.DefaultDefs()
	} else {
		opts.Defs = maps.Clone(opts.Defs)
	}
	for _, d := range opts.Obstacles {
		if !primitives.Known(d.Shape) {
			log.Warnw("unknown obstacle shape, drawing a cube", "kind", d.Kind, "shape", d.Shape)
			d.Shape = primitives.Cube
		}
		opts.Defs[d.Kind] = primitives.Def{Type: d.Shape, Color: d.Color}
	}
	if opts.SkyboxPaths == nil {
		opts.SkyboxPaths = DefaultSkyboxPaths
	}
	s := &Scene{
		opts:  opts,
		log:   log,
		prims: primitives.NewRegistry(primitives.DefaultLight()),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	if path := s.sky.find(opts.SkyboxPaths); path != "" {
		log.Infow("skybox found", "path", path, "equirect", s.sky.equirect)
	}
	return s
}

// SetCamera points the raylib camera where the game camera is.
func (s *Scene) SetCamera(cam game.Camera) {
	s.Camera.Position = toRL(cam.Pos)
	s.Camera.Target = toRL(cam.Pos.Add(cam.Forward))
}

// Draw renders one frame of the 3D world. Call between BeginDrawing and EndDrawing, before the HUD.
// actor may be nil or unloaded, in which case the player is drawn as a primitive stand-in.
func (s *Scene) Draw(g *game.Game, w *physics.World, actor *ModelActor) {
	if !s.built && w.Terrain != nil {
		s.terrain = buildTerrain(w.Terrain, s.prims.Shader())
		s.built = true
		if !s.terrain.loaded {
			s.log.Warnw("terrain mesh is empty", "cols", w.Terrain.Cols, "rows", w.Terrain.Rows)
		}
	}
	s.SetCamera(g.Camera)
	s.prims.SetView(vecArray(s.Camera.Position))

	rl.BeginMode3D(s.Camera)
	s.sky.draw(s.Camera.Position)
	s.prims.ApplyLighting()
	s.terrain.draw()
	for _, b := range w.Bodies {
		def, ok := s.opts.Defs[b.Name]
		if !ok {
			def = primitives.Def{Type: primitives.Cube}
		}
		s.prims.DrawDef(def, vecArray(toRL(b.Position)), extentsToRL(b.Scale))
	}
	s.drawPlayer(g, actor)
	if s.opts.ShowRays {
		s.drawRays(g)
	}
	rl.EndMode3D()
}

func (s *Scene) drawPlayer(g *game.Game, actor *ModelActor) {
	p := g.Player
	if actor != nil {
		actor.Draw(toRL(p.Pos), float32(p.Heading), float32(p.Scale), s.prims.Shader())
		if actor.Loaded() {
			return
		}
	}
	body := p.Pos.Add(p.ToWorld(mgl64.Vec3{0, 0, standInHeight / 2}))
	size := p.Scale * standInDiameter
	s.prims.DrawDef(s.opts.Defs["player"], vecArray(toRL(body)),
		[3]float32{float32(size), float32(p.Scale * standInHeight), float32(size)})
	// nose marks the facing direction, local -Y
	nose := p.Pos.Add(p.ToWorld(mgl64.Vec3{0, -standInDiameter / 2, standInHeight * 0.8}))
	n := float32(p.Scale * noseSize)
	s.prims.DrawDef(s.opts.Defs["nose"], vecArray(toRL(nose)), [3]float32{n, n, n})
}

func (s *Scene) drawRays(g *game.Game) {
	player, camera := g.RayOrigins()
	c := rayColor
	if g.Stats.LastRejected {
		c = rejectedColor
	}
	rl.DrawLine3D(toRL(player), toRL(g.Player.Pos), c)
	rl.DrawLine3D(toRL(camera), toRL(g.Camera.Pos.Sub(mgl64.Vec3{0, 0, g.Tuning.CamAboveTerrain})), rayColor)
	rl.DrawSphere(toRL(g.Floater()), 0.05, rayColor)
}

// Unload frees every GPU resource the scene created.
func (s *Scene) Unload() {
	s.terrain.unload()
	s.sky.unload()
	s.prims.Unload()
}
