package config

import (
	"fmt"
	"os"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
)

// Config holds all user-adjustable settings. Everything has a sensible
// default, so a missing or partial file always produces a playable setup.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Video   VideoConfig   `yaml:"video"`
	Audio   AudioConfig   `yaml:"audio"`

	// Palette is the cycle of box colors as "#rrggbb" strings.
	// Invalid entries are dropped on load.
	Palette []string `yaml:"palette"`
}

// PhysicsConfig tunes the simulation
type PhysicsConfig struct {
	GravityScale   float64 `yaml:"gravity_scale"`
	DragGain       float64 `yaml:"drag_gain"`
	Elasticity     float64 `yaml:"elasticity"`
	Friction       float64 `yaml:"friction"`
	SleepThreshold float64 `yaml:"sleep_threshold"`
	MaxBoxes       int     `yaml:"max_boxes"`
}

// VideoConfig tunes rendering
type VideoConfig struct {
	FrameRate int  `yaml:"frame_rate"`
	TrueColor bool `yaml:"true_color"`
}

// AudioConfig tunes sound output
type AudioConfig struct {
	Muted bool `yaml:"muted"`
}

// DefaultPalette is the built-in box color cycle
var DefaultPalette = []string{
	"#e6194b", // red
	"#3cb44b", // green
	"#4363d8", // blue
	"#ffe119", // yellow
	"#f58231", // orange
	"#911eb4", // purple
	"#42d4f4", // cyan
	"#f032e6", // magenta
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Physics: PhysicsConfig{
			GravityScale:   constants.DefaultGravityScale,
			DragGain:       constants.DefaultDragGain,
			Elasticity:     constants.DefaultElasticity,
			Friction:       constants.DefaultFriction,
			SleepThreshold: constants.DefaultSleepThreshold,
			MaxBoxes:       constants.DefaultMaxBoxes,
		},
		Video: VideoConfig{
			FrameRate: int(time.Second / constants.FrameUpdateInterval),
			TrueColor: true,
		},
		Audio: AudioConfig{
			Muted: false,
		},
		Palette: append([]string(nil), DefaultPalette...),
	}
}

// Load reads a YAML config file over the defaults. A missing file is not
// an error and yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the config as YAML
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// normalize clamps out-of-range values and drops invalid palette entries.
// User files are treated as suggestions, never as reasons to crash.
func (c *Config) normalize() {
	c.Physics.GravityScale = clampFloat(c.Physics.GravityScale, 0, 500)
	c.Physics.DragGain = clampFloat(c.Physics.DragGain, 0.5, 100)
	c.Physics.Elasticity = clampFloat(c.Physics.Elasticity, 0, 1)
	c.Physics.Friction = clampFloat(c.Physics.Friction, 0, 2)
	c.Physics.SleepThreshold = clampFloat(c.Physics.SleepThreshold, 0, 10)
	c.Physics.MaxBoxes = clampInt(c.Physics.MaxBoxes, 1, 4096)
	c.Video.FrameRate = clampInt(c.Video.FrameRate, constants.MinFrameRate, constants.MaxFrameRate)

	valid := c.Palette[:0]
	for _, hex := range c.Palette {
		if _, err := colorful.Hex(hex); err == nil {
			valid = append(valid, hex)
		}
	}
	c.Palette = valid
	if len(c.Palette) == 0 {
		c.Palette = append([]string(nil), DefaultPalette...)
	}
}

// Tuning converts the physics section into live world tuning
func (c *Config) Tuning() engine.Tuning {
	return engine.Tuning{
		GravityScale:   c.Physics.GravityScale,
		DragGain:       c.Physics.DragGain,
		Elasticity:     c.Physics.Elasticity,
		Friction:       c.Physics.Friction,
		SleepThreshold: c.Physics.SleepThreshold,
		MaxBoxes:       c.Physics.MaxBoxes,
	}
}

// PaletteColors parses the palette into render-ready colors
func (c *Config) PaletteColors() []core.RGB {
	colors := make([]core.RGB, 0, len(c.Palette))
	for _, hex := range c.Palette {
		colors = append(colors, core.FromHex(hex))
	}
	return colors
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
