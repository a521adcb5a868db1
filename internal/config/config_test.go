package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrain-walk/internal/input"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  title: ridge run
  background: [10, 20, 30]
tuning:
  run_speed: 12
  cam_dist_max: 8
terrain:
  seed: 99
player:
  model: assets/models/player.glb
  animations:
    run: Armature|Run
debug:
  show_fps: true
bindings:
  a: cam-right
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ridge run", cfg.Window.Title)
	assert.Equal(t, [3]uint8{10, 20, 30}, cfg.Window.Background)
	assert.Equal(t, 1280, cfg.Window.Width, "unset fields keep defaults")
	assert.Equal(t, 12.0, cfg.Tuning.RunSpeed)
	assert.Equal(t, 8.0, cfg.Tuning.CamDistMax)
	assert.Equal(t, 300.0, cfg.Tuning.TurnRate)
	assert.Equal(t, int64(99), cfg.Terrain.Seed)
	assert.Equal(t, "Armature|Run", cfg.Player.Animations["run"])
	assert.True(t, cfg.Debug.ShowFPS)

	b, err := cfg.KeyBindings()
	require.NoError(t, err)
	assert.Equal(t, input.Action{Kind: input.ActionSet, Flag: input.FlagCamRight}, b[input.KeyA])
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"malformed":      "window: [",
		"bad bounds":     "tuning:\n  cam_dist_min: 6\n  cam_dist_max: 5\n",
		"bad level":      "log:\n  level: chatty\n",
		"bad binding":    "bindings:\n  q: left\n",
		"zero scale":     "tuning:\n  player_scale: 0\n",
		"negative frame": "window:\n  max_frame_time: -1\n",
		"terrain kind":   "obstacles:\n  defs:\n    - kind: terrain\n      count: 1\n      size: [1, 1, 1]\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tuning:\n  cam_dist_min: -1\n"), 0644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "game.yaml")
	cfg := Default()
	cfg.Terrain.Seed = 1234
	cfg.Debug.ShowRays = true
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvSeed: "77", EnvLogLevel: "debug"}
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, int64(77), cfg.Terrain.Seed)
	assert.Equal(t, int64(77), cfg.Obstacles.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)

	env[EnvSeed] = "many"
	assert.Error(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	env[EnvSeed] = ""
	env[EnvLogLevel] = "shout"
	assert.ErrorIs(t, cfg.ApplyEnv(func(k string) string { return env[k] }), ErrInvalid)
}

func TestShippedConfigMatchesDefault(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
