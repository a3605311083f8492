package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/tricolor/ecs/component"
)

var (
	ErrInvalidWindow = errors.New("config: window size must be positive")
	ErrInvalidTimer  = errors.New("config: timer_seconds must be positive")
	ErrInvalidStart  = errors.New("config: start level must not be negative")
	ErrInvalidVolume = errors.New("config: volume must be within [0, 1]")
)

type Config struct {
	Window       WindowConfig           `yaml:"window"`
	Levels       LevelsConfig           `yaml:"levels"`
	TimerSeconds float64                `yaml:"timer_seconds"`
	AssetsDir    string                 `yaml:"assets_dir"`
	Sounds       map[string]SoundConfig `yaml:"sounds"`
	LogLevel     string                 `yaml:"log_level"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type LevelsConfig struct {
	Path  string `yaml:"path"`
	Start int    `yaml:"start"`
}

type SoundConfig struct {
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// Load decodes the bundled defaults and then the file at path over them.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := Decode(&cfg, defaultYAML); err != nil {
		return nil, fmt.Errorf("config: default: %w", err)
	}
	data, ok, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if ok {
		if err := Decode(&cfg, data); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Decode unmarshals data over cfg. Fields missing from data keep their
// values; a sound entry present in data replaces the whole entry.
func Decode(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.TimerSeconds <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimer, c.TimerSeconds)
	}
	if c.Levels.Start < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStart, c.Levels.Start)
	}
	for name, s := range c.Sounds {
		if s.Volume < 0 || s.Volume > 1 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidVolume, name, s.Volume)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Timer is the per-level countdown.
func (c *Config) Timer() time.Duration {
	return time.Duration(c.TimerSeconds * float64(time.Second))
}

// Level parses LogLevel; empty means info.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}

// Sound returns the asset settings for a cue, falling back to the fixed
// asset path at full volume.
func (c *Config) Sound(s component.Sound) SoundConfig {
	sc, ok := c.Sounds[s.String()]
	if !ok || sc.File == "" {
		vol := 1.0
		if ok {
			vol = sc.Volume
		}
		return SoundConfig{File: s.File(), Volume: vol}
	}
	return sc
}

// SoundPath resolves a cue file against AssetsDir.
func (c *Config) SoundPath(s component.Sound) string {
	file := c.Sound(s).File
	if filepath.IsAbs(file) || c.AssetsDir == "" {
		return file
	}
	return filepath.Join(c.AssetsDir, filepath.FromSlash(file))
}
