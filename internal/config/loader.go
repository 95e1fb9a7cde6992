package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid runner config")

// LoadRunner loads Neon Runner configuration.
// Search order: customPath -> ~/.neonrunner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files override the defaults field by field, so a file may contain only the
// values it changes. A custom path that cannot be read or parsed is an error;
// the other locations are skipped silently.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunner decodes YAML over the defaults and validates the result.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonrunner", "configs", filename)
}

// Validate rejects tuning the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.World.CeilingY >= c.World.GroundY:
		return fmt.Errorf("%w: ceiling_y %.0f must be above ground_y %.0f", ErrInvalidConfig, c.World.CeilingY, c.World.GroundY)
	case c.Player.Height >= c.World.GroundY-c.World.CeilingY:
		return fmt.Errorf("%w: player height does not fit between ceiling and ground", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: jump_impulse must be negative (upward)", ErrInvalidConfig)
	case c.Physics.BaseSpeed <= 0 || c.Physics.MaxSpeed < c.Physics.BaseSpeed:
		return fmt.Errorf("%w: need 0 < base_speed <= max_speed", ErrInvalidConfig)
	case c.Physics.ScorePerSpeedStep <= 0 || c.Physics.ScorePerMusicStep <= 0:
		return fmt.Errorf("%w: score steps must be positive", ErrInvalidConfig)
	case c.Spawn.Object.HeartChance < 0 || c.Spawn.Object.EnemyChance < 0 ||
		c.Spawn.Object.HeartChance+c.Spawn.Object.EnemyChance > 1:
		return fmt.Errorf("%w: heart_chance and enemy_chance must be >= 0 and sum to at most 1", ErrInvalidConfig)
	case len(c.Pickups.Lanes) == 0:
		return fmt.Errorf("%w: at least one pickup lane is required", ErrInvalidConfig)
	case len(c.Pickups.EnemyVariants) == 0:
		return fmt.Errorf("%w: at least one enemy variant is required", ErrInvalidConfig)
	case c.Health.MaxHearts <= 0:
		return fmt.Errorf("%w: max_hearts must be positive", ErrInvalidConfig)
	case c.Health.BlinkPeriod <= 0 || c.Health.BlinkVisible < 0 || c.Health.BlinkVisible > c.Health.BlinkPeriod:
		return fmt.Errorf("%w: need 0 <= blink_visible <= blink_period and blink_period > 0", ErrInvalidConfig)
	}

	for _, d := range []DelayCurve{c.Spawn.Platform.Delay, c.Spawn.Object.Delay} {
		if d.FloorMS <= 0 || d.JitterMS < 0 || d.InitialMS < 0 {
			return fmt.Errorf("%w: spawn delays need a positive floor and non-negative jitter", ErrInvalidConfig)
		}
	}
	return nil
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Normal keeps the tuning untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.75
		cfg.Physics.MaxSpeed *= 0.8
		cfg.Spawn.Platform.Delay.FloorMS += 200
		cfg.Spawn.Object.Delay.FloorMS += 300
		cfg.Health.InvulnerableMS += 500
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.25
		cfg.Physics.MaxSpeed *= 1.2
		cfg.Spawn.Platform.Delay.FloorMS = max(cfg.Spawn.Platform.Delay.FloorMS-200, 100)
		cfg.Spawn.Object.Delay.FloorMS = max(cfg.Spawn.Object.Delay.FloorMS-150, 100)
		cfg.Health.InvulnerableMS = max(cfg.Health.InvulnerableMS-500, 0)
	}
}
