package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRunner(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig()\nyaml: %+v\ncode: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.World.GroundY != 350 || cfg.Physics.Gravity != 0.7 {
		t.Errorf("expected default tuning, got ground=%v gravity=%v", cfg.World.GroundY, cfg.Physics.Gravity)
	}
}

func TestLoadRunnerUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".neonrunner", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "runner.yaml"), []byte("physics:\n  max_speed: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Physics.MaxSpeed != 20 {
		t.Errorf("user config should override max_speed, got %v", cfg.Physics.MaxSpeed)
	}
}

func TestLoadRunnerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  base_speed: 6\npickups:\n  lanes: [40]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Physics.BaseSpeed != 6 {
		t.Errorf("base_speed = %v, expected 6", cfg.Physics.BaseSpeed)
	}
	if len(cfg.Pickups.Lanes) != 1 || cfg.Pickups.Lanes[0] != 40 {
		t.Errorf("lanes = %v, expected [40]", cfg.Pickups.Lanes)
	}
	// Untouched fields keep their defaults
	if cfg.Physics.Gravity != 0.7 || cfg.Health.MaxHearts != 3 {
		t.Errorf("unrelated fields should keep defaults, got gravity=%v hearts=%d", cfg.Physics.Gravity, cfg.Health.MaxHearts)
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"ceiling below ground", func(c *RunnerConfig) { c.World.CeilingY = 400 }},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpImpulse = 3 }},
		{"cap below base", func(c *RunnerConfig) { c.Physics.MaxSpeed = 1 }},
		{"chances above one", func(c *RunnerConfig) { c.Spawn.Object.EnemyChance = 0.95 }},
		{"no lanes", func(c *RunnerConfig) { c.Pickups.Lanes = nil }},
		{"no enemy variants", func(c *RunnerConfig) { c.Pickups.EnemyVariants = nil }},
		{"zero hearts", func(c *RunnerConfig) { c.Health.MaxHearts = 0 }},
		{"blink longer than period", func(c *RunnerConfig) { c.Health.BlinkVisible = 11 }},
		{"zero delay floor", func(c *RunnerConfig) { c.Spawn.Object.Delay.FloorMS = 0 }},
	}

	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	normal := DefaultRunnerConfig()
	ApplyRunnerPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultRunnerConfig()) {
		t.Error("normal preset should not change tuning")
	}

	easy := DefaultRunnerConfig()
	ApplyRunnerPreset(&easy, DifficultyEasy)
	if easy.Physics.BaseSpeed >= normal.Physics.BaseSpeed {
		t.Errorf("easy base speed %v should be below normal %v", easy.Physics.BaseSpeed, normal.Physics.BaseSpeed)
	}

	hard := DefaultRunnerConfig()
	ApplyRunnerPreset(&hard, DifficultyHard)
	if hard.Spawn.Object.Delay.FloorMS >= normal.Spawn.Object.Delay.FloorMS {
		t.Errorf("hard object floor %d should be below normal %d", hard.Spawn.Object.Delay.FloorMS, normal.Spawn.Object.Delay.FloorMS)
	}

	for _, cfg := range []RunnerConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"nightmare", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestProgressionSpeed(t *testing.T) {
	p := NewProgression(DefaultRunnerConfig())

	tests := []struct {
		score int
		want  float64
	}{
		{0, 4},
		{50, 5},
		{125, 6.5},
		{400, 12},
		{10000, 12},
	}
	for _, tc := range tests {
		if got := p.Speed(tc.score); got != tc.want {
			t.Errorf("Speed(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}
}

func TestProgressionMusicRate(t *testing.T) {
	p := NewProgression(DefaultRunnerConfig())
	if got := p.MusicRate(0); got != 1 {
		t.Errorf("MusicRate(0) = %v, expected 1", got)
	}
	if got := p.MusicRate(250); got != 1.5 {
		t.Errorf("MusicRate(250) = %v, expected 1.5", got)
	}
}

func TestProgressionDelays(t *testing.T) {
	p := NewProgression(DefaultRunnerConfig())

	tests := []struct {
		name   string
		got    time.Duration
		expect time.Duration
	}{
		{"platform at start", p.PlatformDelay(0, 0), 2000 * time.Millisecond},
		{"platform with full jitter", p.PlatformDelay(0, 1), 2500 * time.Millisecond},
		{"platform shrinks with score", p.PlatformDelay(300, 0), 1400 * time.Millisecond},
		{"platform floor", p.PlatformDelay(5000, 0), 800 * time.Millisecond},
		{"object at start", p.ObjectDelay(0, 0.5), 2100 * time.Millisecond},
		{"object floor", p.ObjectDelay(5000, 0), 600 * time.Millisecond},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expect {
				t.Errorf("got %v, expected %v", tc.got, tc.expect)
			}
		})
	}
}
