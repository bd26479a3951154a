// Package config loads the game tuning, level table and text from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zucenko/smalldream/model"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window   WindowConfig  `yaml:"window"`
	World    WorldConfig   `yaml:"world"`
	Timing   TimingConfig  `yaml:"timing"`
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Levels   []LevelConfig `yaml:"levels"`
	Tutorial []string      `yaml:"tutorial"`
	Ending   EndingConfig  `yaml:"ending"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// WorldConfig is in world units.
type WorldConfig struct {
	Bounds           float64 `yaml:"bounds"`
	CameraScale      float64 `yaml:"camera_scale"`
	MinSpawnDistance float64 `yaml:"min_spawn_distance"`
	PlayerRadius     float64 `yaml:"player_radius"`
	PickupRadius     float64 `yaml:"pickup_radius"`
	WallThickness    float64 `yaml:"wall_thickness"`
	Speed            float64 `yaml:"speed"`
}

// TimingConfig is in seconds.
type TimingConfig struct {
	Intro   float64 `yaml:"intro"`
	Grace   float64 `yaml:"grace"`
	Penalty float64 `yaml:"penalty"`
	Flash   float64 `yaml:"flash"`
	Ending  float64 `yaml:"ending"`
}

type LevelConfig struct {
	Name     string   `yaml:"name"`
	Cols     int      `yaml:"cols"`
	Rows     int      `yaml:"rows"`
	Required int      `yaml:"required"`
	Seconds  float64  `yaml:"seconds"`
	Lines    []string `yaml:"lines"`
}

type EndingConfig struct {
	Phrases  []string `yaml:"phrases"`
	Epilogue string   `yaml:"epilogue"`
	Credits  string   `yaml:"credits"`
}

// Default returns the embedded configuration.
func Default() Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return cfg
}

// Parse decodes YAML over the embedded defaults and validates the result.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if len(defaultYAML) > 0 {
		if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
			return Config{}, fmt.Errorf("decoding defaults: %w", err)
		}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.World.Bounds <= 0 || c.World.CameraScale <= 0 {
		return fmt.Errorf("%w: world bounds and camera scale must be positive", ErrInvalid)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalid)
	}
	for i, l := range c.Levels {
		if l.Cols < 1 || l.Rows < 1 {
			return fmt.Errorf("%w: level %d size %dx%d", ErrInvalid, i+1, l.Cols, l.Rows)
		}
		if l.Required < 1 {
			return fmt.Errorf("%w: level %d requires %d orbs", ErrInvalid, i+1, l.Required)
		}
		if l.Seconds <= 0 {
			return fmt.Errorf("%w: level %d has %v seconds", ErrInvalid, i+1, l.Seconds)
		}
		if len(l.Lines) < l.Required {
			return fmt.Errorf("%w: level %d has %d lines for %d orbs", ErrInvalid, i+1, len(l.Lines), l.Required)
		}
	}
	if len(c.Tutorial) == 0 {
		return fmt.Errorf("%w: empty tutorial", ErrInvalid)
	}
	if c.Timing.Ending <= 0 {
		return fmt.Errorf("%w: ending duration %v", ErrInvalid, c.Timing.Ending)
	}
	return nil
}

// Level returns the configuration of a 1-based act, clamped to the table.
func (c Config) Level(act int) LevelConfig {
	if act < 1 {
		act = 1
	}
	if act > len(c.Levels) {
		act = len(c.Levels)
	}
	return c.Levels[act-1]
}

// LineOffset is the index of the act's first memory line in the sequence of all lines.
func (c Config) LineOffset(act int) int {
	off := 0
	for i := 0; i < act-1 && i < len(c.Levels); i++ {
		off += len(c.Levels[i].Lines)
	}
	return off
}

// Lines returns every memory line across acts in order.
func (c Config) Lines() []string {
	out := make([]string, 0)
	for _, l := range c.Levels {
		out = append(out, l.Lines...)
	}
	return out
}

// Shape is what the maze generator and placement need for an act.
func (c Config) Shape(act int) model.LevelShape {
	l := c.Level(act)
	return model.LevelShape{
		Cols:     l.Cols,
		Rows:     l.Rows,
		Required: l.Required,
		Bounds:   model.V(c.World.Bounds, c.World.Bounds),
		MinDist:  c.World.MinSpawnDistance,
	}
}
