// Package config loads game settings from defaults, an optional TOML file and
// VI_INVADERS_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/vi-invaders/constants"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "VI_INVADERS_"

// Duration wraps time.Duration with text (un)marshalling as "1s", "250ms"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the complete game configuration
type Config struct {
	Seed  uint64 `toml:"seed" env:"SEED"`
	Debug bool   `toml:"debug" env:"DEBUG"`

	Scene    SceneConfig    `toml:"scene" envPrefix:"SCENE_"`
	Grid     GridConfig     `toml:"grid" envPrefix:"GRID_"`
	Gameplay GameplayConfig `toml:"gameplay" envPrefix:"GAMEPLAY_"`
	Input    InputConfig    `toml:"input" envPrefix:"INPUT_"`
	Audio    AudioConfig    `toml:"audio" envPrefix:"AUDIO_"`
	Render   RenderConfig   `toml:"render" envPrefix:"RENDER_"`
}

// SceneConfig sets the logical scene size in points
type SceneConfig struct {
	Width  float64 `toml:"width" env:"WIDTH"`
	Height float64 `toml:"height" env:"HEIGHT"`
}

// GridConfig shapes the invader grid and its movement
type GridConfig struct {
	Rows        int      `toml:"rows" env:"ROWS"`
	Cols        int      `toml:"cols" env:"COLS"`
	Step        float64  `toml:"step" env:"STEP"`
	TimePerMove Duration `toml:"time_per_move" env:"TIME_PER_MOVE"`
}

// GameplayConfig holds damage, score and bullet travel settings
type GameplayConfig struct {
	ShipHitDamage          float64  `toml:"ship_hit_damage" env:"SHIP_HIT_DAMAGE"`
	InvaderKillScore       int      `toml:"invader_kill_score" env:"INVADER_KILL_SCORE"`
	MinInvaderBottomHeight float64  `toml:"min_invader_bottom_height" env:"MIN_INVADER_BOTTOM_HEIGHT"`
	ShipBulletDuration     Duration `toml:"ship_bullet_duration" env:"SHIP_BULLET_DURATION"`
	InvaderBulletDuration  Duration `toml:"invader_bullet_duration" env:"INVADER_BULLET_DURATION"`
	BulletRemoveGrace      Duration `toml:"bullet_remove_grace" env:"BULLET_REMOVE_GRACE"`
}

// InputConfig selects input paths
type InputConfig struct {
	Mouse   bool    `toml:"mouse" env:"MOUSE"`
	Tilt    bool    `toml:"tilt" env:"TILT"`
	KeyStep float64 `toml:"key_step" env:"KEY_STEP"`
}

// AudioConfig controls sound output
type AudioConfig struct {
	Enabled bool    `toml:"enabled" env:"ENABLED"`
	Volume  float64 `toml:"volume" env:"VOLUME"`
}

// RenderConfig controls the terminal frame driver and HUD
type RenderConfig struct {
	FrameRate     int  `toml:"frame_rate" env:"FRAME_RATE"`
	ShowHighScore bool `toml:"show_high_score" env:"SHOW_HIGH_SCORE"`
	ShowStatus    bool `toml:"show_status" env:"SHOW_STATUS"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Width:  constants.SceneWidth,
			Height: constants.SceneHeight,
		},
		Grid: GridConfig{
			Rows:        constants.InvaderRowCount,
			Cols:        constants.InvaderColCount,
			Step:        constants.InvaderStep,
			TimePerMove: Duration{constants.TimePerMove},
		},
		Gameplay: GameplayConfig{
			ShipHitDamage:          constants.ShipHitDamage,
			InvaderKillScore:       constants.InvaderKillScore,
			MinInvaderBottomHeight: constants.MinInvaderBottomHeight,
			ShipBulletDuration:     Duration{constants.ShipBulletDuration},
			InvaderBulletDuration:  Duration{constants.InvaderBulletDuration},
			BulletRemoveGrace:      Duration{constants.BulletRemoveGrace},
		},
		Input: InputConfig{
			Mouse:   true,
			Tilt:    false,
			KeyStep: constants.ShipKeyStep,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Render: RenderConfig{
			FrameRate:     60,
			ShowHighScore: true,
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// empty) and the process environment
func Load(path string) (*Config, error) {
	return load(path, nil)
}

// LoadWithEnv is Load with an explicit environment instead of os.Environ
func LoadWithEnv(path string, environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return load(path, environ)
}

func load(path string, environ map[string]string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	meta, err := toml.NewDecoder(f).Decode(c)
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("decode config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks that every value is inside its usable range
func (c *Config) Validate() error {
	switch {
	case c.Scene.Width <= 0 || c.Scene.Height <= 0:
		return fmt.Errorf("scene size must be positive, got %vx%v", c.Scene.Width, c.Scene.Height)
	case c.Grid.Rows < 1:
		return fmt.Errorf("grid rows must be at least 1, got %d", c.Grid.Rows)
	case c.Grid.Cols < 1:
		return fmt.Errorf("grid cols must be at least 1, got %d", c.Grid.Cols)
	case c.Grid.Step <= 0:
		return fmt.Errorf("grid step must be positive, got %v", c.Grid.Step)
	case c.Grid.TimePerMove.Duration <= 0:
		return fmt.Errorf("grid time_per_move must be positive, got %v", c.Grid.TimePerMove)
	case c.Gameplay.ShipHitDamage <= 0 || c.Gameplay.ShipHitDamage > 1:
		return fmt.Errorf("ship_hit_damage must be in (0, 1], got %v", c.Gameplay.ShipHitDamage)
	case c.Gameplay.InvaderKillScore < 0:
		return fmt.Errorf("invader_kill_score must not be negative, got %d", c.Gameplay.InvaderKillScore)
	case c.Gameplay.ShipBulletDuration.Duration <= 0 || c.Gameplay.InvaderBulletDuration.Duration <= 0:
		return fmt.Errorf("bullet durations must be positive")
	case c.Gameplay.BulletRemoveGrace.Duration < 0:
		return fmt.Errorf("bullet_remove_grace must not be negative, got %v", c.Gameplay.BulletRemoveGrace)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio volume must be in [0, 1], got %v", c.Audio.Volume)
	case c.Render.FrameRate < 1 || c.Render.FrameRate > 240:
		return fmt.Errorf("frame_rate must be in [1, 240], got %d", c.Render.FrameRate)
	}
	return nil
}

// FrameInterval returns the frame driver tick interval
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Render.FrameRate)
}

// Write encodes the configuration as TOML
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
