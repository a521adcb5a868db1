package main

import (
	"fmt"

	"go.uber.org/zap"

	"terrain-walk/internal/animation"
	"terrain-walk/internal/config"
	"terrain-walk/internal/fonts"
	"terrain-walk/internal/game"
	"terrain-walk/internal/hud"
	"terrain-walk/internal/input"
	"terrain-walk/internal/mapgen"
	"terrain-walk/internal/physics"
	"terrain-walk/internal/scene"
)

// app wires the game state to the window loop.
type app struct {
	log   *zap.SugaredLogger
	world *physics.World
	game  *game.Game
	keys  input.KeyState
	disp  *input.Dispatcher
	actor *scene.ModelActor // nil when no model is configured
	scene *scene.Scene
	hud   *hud.HUD
}

func newApp(cfg config.Config, log *zap.SugaredLogger) (*app, error) {
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return nil, err
	}

	mapgen.ResolveSeeds(&cfg.Terrain, &cfg.Obstacles)
	terrain := mapgen.GenerateHeightfield(cfg.Terrain)
	world := physics.NewWorld(terrain)
	start := mapgen.StartPoint(terrain)
	placed, err := mapgen.Scatter(world, start.Vec2(), cfg.Obstacles)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	lo, hi := terrain.MinMax()
	log.Infow("world generated",
		"seed", cfg.Terrain.Seed, "obstacle_seed", cfg.Obstacles.Seed,
		"cols", terrain.Cols, "rows", terrain.Rows,
		"min_z", lo, "max_z", hi,
		"obstacles", placed, "start", start)

	a := &app{
		log:   log,
		world: world,
		disp:  input.NewDispatcher(bindings),
		scene: scene.New(scene.Options{Obstacles: cfg.Obstacles.Defs, ShowRays: cfg.Debug.ShowRays}, log),
		hud:   hud.New(bindings.Instructions(), cfg.HUD.FontSize),
	}

	var actor animation.Actor
	if cfg.Player.Model != "" {
		a.actor = scene.NewModelActor(cfg.Player.Model, cfg.Player.Animations, cfg.Player.AnimationFPS, log)
		actor = a.actor
	}
	a.game = game.New(cfg.Tuning, world, actor, start)

	a.hud.ShowFPS = cfg.Debug.ShowFPS
	a.hud.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	if cfg.HUD.Font != "" {
		path, err := fonts.Find(fonts.BaseDirs(), cfg.HUD.Font)
		if err != nil {
			log.Warnw("hud font not found, using default", "font", cfg.HUD.Font, "err", err)
		} else {
			a.hud.SetFontPath(path)
		}
	}
	return a, nil
}

func (a *app) Update(events []input.Event, dt float64) bool {
	if a.disp.DispatchAll(events, &a.keys) {
		a.log.Info("quit requested")
		return false
	}
	wasMoving := a.game.Moving()
	a.game.Update(a.keys, dt)
	if a.actor != nil {
		a.actor.Advance(dt)
	}
	if m := a.game.Moving(); m != wasMoving {
		a.log.Debugw("locomotion", "moving", m)
	}
	if a.game.Stats.LastRejected {
		a.log.Debugw("move rejected", "pos", a.game.Player.Pos, "heading", a.game.Player.Heading,
			"cam_dist", game.HorizontalDistance(a.game.Camera.Pos, a.game.Player.Pos),
			"cam_pitch", a.game.Camera.Pitch())
	}
	return true
}

func (a *app) Draw() {
	a.scene.Draw(a.game, a.world, a.actor)
	a.hud.Draw()
}

func (a *app) Unload() {
	a.hud.Unload()
	if a.actor != nil {
		a.actor.Unload()
	}
	a.scene.Unload()
}

func (a *app) logStats() {
	s := a.game.Stats
	a.log.Infow("session ended",
		"frames", s.Frames,
		"rejected_moves", s.RejectedMoves,
		"final_pos", a.game.Player.Pos,
		"final_heading", a.game.Player.Heading,
		"final_cam_dist", game.HorizontalDistance(a.game.Camera.Pos, a.game.Player.Pos),
		"final_cam_pitch", a.game.Camera.Pitch())
}
