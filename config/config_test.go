package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/milk9111/tricolor/ecs/component"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Timer() != 25*time.Second {
		t.Fatalf("expected 25s timer, got %v", cfg.Timer())
	}
	if cfg.Levels.Path != "" || cfg.Levels.Start != 0 {
		t.Fatalf("unexpected levels config %+v", cfg.Levels)
	}
	for _, s := range component.Sounds {
		if got := cfg.Sound(s).File; got != s.File() {
			t.Fatalf("%s: expected %s, got %s", s, s.File(), got)
		}
	}
	if lvl, _ := cfg.Level(); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %v", lvl)
	}
}

func TestLoadOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tricolor.yaml")
	doc := []byte("timer_seconds: 5\nlevels:\n  start: 2\nlog_level: debug\nsounds:\n  player_moved:\n    file: custom/step.ogg\n    volume: 0.1\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timer() != 5*time.Second || cfg.Levels.Start != 2 {
		t.Fatalf("override not applied: %+v", cfg)
	}
	if cfg.Window.Width != 1280 {
		t.Fatalf("unset fields should keep defaults, got width %d", cfg.Window.Width)
	}
	if got := cfg.Sound(component.SoundPlayerMoved); got.File != "custom/step.ogg" || got.Volume != 0.1 {
		t.Fatalf("unexpected sound override %+v", got)
	}
	if got := cfg.Sound(component.SoundHitTrap).File; got != "sounds/hit-trap.ogg" {
		t.Fatalf("other sounds should keep defaults, got %s", got)
	}
	if want := filepath.Join("assets", "custom", "step.ogg"); cfg.SoundPath(component.SoundPlayerMoved) != want {
		t.Fatalf("expected %s, got %s", want, cfg.SoundPath(component.SoundPlayerMoved))
	}
	if lvl, _ := cfg.Level(); lvl != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %v", lvl)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("load defaults: %v", err)
		}
		return cfg
	}
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero_width", func(c *Config) { c.Window.Width = 0 }, ErrInvalidWindow},
		{"zero_timer", func(c *Config) { c.TimerSeconds = 0 }, ErrInvalidTimer},
		{"negative_start", func(c *Config) { c.Levels.Start = -1 }, ErrInvalidStart},
		{"loud", func(c *Config) { c.Sounds["hit_trap"] = SoundConfig{File: "x.ogg", Volume: 2} }, ErrInvalidVolume},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("bad_log_level", func(t *testing.T) {
		cfg := base()
		cfg.LogLevel = "loud"
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected log level error")
		}
	})
}

func TestSoundFallback(t *testing.T) {
	cfg := &Config{}
	got := cfg.Sound(component.SoundTimerExpired)
	if got.File != "sounds/timer.ogg" || got.Volume != 1 {
		t.Fatalf("unexpected fallback %+v", got)
	}
}
