package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"terrain-walk/internal/game"
	"terrain-walk/internal/input"
	"terrain-walk/internal/logger"
	"terrain-walk/internal/mapgen"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/game.yaml"

// Environment variables that override the file.
const (
	EnvConfig   = "GAME_CONFIG"
	EnvSeed     = "GAME_SEED"
	EnvLogLevel = "GAME_LOG_LEVEL"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Window holds window and frame-loop settings.
type Window struct {
	Width        int      `yaml:"width"`
	Height       int      `yaml:"height"`
	Title        string   `yaml:"title"`
	Fullscreen   bool     `yaml:"fullscreen"`
	TargetFPS    int      `yaml:"target_fps"`
	MaxFrameTime float64  `yaml:"max_frame_time"` // seconds; longer frames are clamped
	Background   [3]uint8 `yaml:"background"`
}

// Player holds the character model. An empty Model draws a primitive stand-in.
type Player struct {
	Model        string            `yaml:"model"`
	Animations   map[string]string `yaml:"animations,omitempty"` // logical name (run, walk) -> clip name in the model file
	AnimationFPS float64           `yaml:"animation_fps"`
}

// Debug holds developer overlays. All are off by default.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowRays     bool `yaml:"show_rays"` // draw the ground rays and the camera target
}

// HUD holds the on-screen text settings. An empty Font uses raylib's built-in font.
type HUD struct {
	Font     string `yaml:"font"` // file path or family name searched under assets/fonts
	FontSize int    `yaml:"font_size"`
}

// Config is everything the game reads at startup.
type Config struct {
	Window    Window                  `yaml:"window"`
	Tuning    game.Tuning             `yaml:"tuning"`
	Terrain   mapgen.HeightMapOptions `yaml:"terrain"`
	Obstacles mapgen.ScatterOptions   `yaml:"obstacles"`
	Player    Player                  `yaml:"player"`
	Bindings  map[string]string       `yaml:"bindings,omitempty"` // key name -> flag name or "quit"
	HUD       HUD                     `yaml:"hud"`
	Debug     Debug                   `yaml:"debug"`
	Log       logger.Options          `yaml:"log"`
}

// Default returns the stock configuration: black background, 1280x720 window, stock tuning.
func Default() Config {
	return Config{
		Window: Window{
			Width:        1280,
			Height:       720,
			Title:        "terrain-walk",
			TargetFPS:    60,
			MaxFrameTime: 0.25,
		},
		Tuning:    game.DefaultTuning(),
		Terrain:   mapgen.DefaultHeightMapOptions(),
		Obstacles: mapgen.DefaultScatterOptions(),
		Player: Player{
			AnimationFPS: 30,
		},
		HUD: HUD{FontSize: 18},
		Log: logger.DefaultOptions(),
	}
}

// Load reads the config at path over Default(). A missing file yields Default() without error
// and does not create a file; malformed YAML or invalid values are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		c.Terrain.Seed = seed
		c.Obstacles.Seed = seed
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return c.Validate()
}

// KeyBindings returns the default bindings with the configured overrides applied.
func (c Config) KeyBindings() (input.Bindings, error) {
	if len(c.Bindings) == 0 {
		return input.DefaultBindings(), nil
	}
	b, err := input.DefaultBindings().Rebind(c.Bindings)
	if err != nil {
		return nil, fmt.Errorf("config: bindings: %w", err)
	}
	return b, nil
}

// Validate checks the values the game cannot run with.
func (c Config) Validate() error {
	t := c.Tuning
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.MaxFrameTime <= 0:
		return fmt.Errorf("%w: max_frame_time must be positive", ErrInvalid)
	case t.CamDistMin <= 0 || t.CamDistMax < t.CamDistMin:
		return fmt.Errorf("%w: camera distance bounds [%v, %v]", ErrInvalid, t.CamDistMin, t.CamDistMax)
	case t.PlayerScale <= 0:
		return fmt.Errorf("%w: player_scale must be positive", ErrInvalid)
	case t.RayHeight <= 0:
		return fmt.Errorf("%w: ray_height must be positive", ErrInvalid)
	case c.Player.AnimationFPS <= 0:
		return fmt.Errorf("%w: animation_fps must be positive", ErrInvalid)
	case c.HUD.FontSize <= 0:
		return fmt.Errorf("%w: hud font_size must be positive", ErrInvalid)
	}
	if err := c.Obstacles.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.KeyBindings(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
