// Package config provides YAML-based tuning for the runner and the
// score-driven progression curves derived from it.
package config

import "time"

// RunnerConfig contains all tuning for the Neon Runner game.
type RunnerConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Pickups PickupConfig  `yaml:"pickups"`
	Health  HealthConfig  `yaml:"health"`
	Audio   AudioConfig   `yaml:"audio"`
}

// WorldConfig defines the logical raster and its two boundary lines.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	GroundY  float64 `yaml:"ground_y"`
	CeilingY float64 `yaml:"ceiling_y"`
}

// PhysicsConfig defines player kinematics and world scrolling.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	JumpImpulse       float64 `yaml:"jump_impulse"`
	BaseSpeed         float64 `yaml:"base_speed"`
	MaxSpeed          float64 `yaml:"max_speed"`
	ScorePerSpeedStep float64 `yaml:"score_per_speed_step"` // speed = base + score/step
	ScorePerMusicStep float64 `yaml:"score_per_music_step"` // music rate = 1 + score/step
	CeilingBounce     float64 `yaml:"ceiling_bounce"`
	LandingTolerance  float64 `yaml:"landing_tolerance"`
}

// PlayerConfig defines the player's fixed column and hitbox.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	HitboxOffset float64 `yaml:"hitbox_offset"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// SpawnConfig defines the two independent spawn timers.
type SpawnConfig struct {
	Platform PlatformSpawn `yaml:"platform"`
	Object   ObjectSpawn   `yaml:"object"`
}

// DelayCurve describes a spawn delay that shrinks with score:
// max(floor, base - score*per_score) + jitter*rand.
type DelayCurve struct {
	InitialMS  int `yaml:"initial_ms"`
	BaseMS     int `yaml:"base_ms"`
	FloorMS    int `yaml:"floor_ms"`
	PerScoreMS int `yaml:"per_score_ms"`
	JitterMS   int `yaml:"jitter_ms"`
}

// PlatformSpawn defines platform timing and geometry.
type PlatformSpawn struct {
	Delay      DelayCurve `yaml:"delay"`
	MinRise    float64    `yaml:"min_rise"`   // top edge sits at least this far above ground
	RiseRange  float64    `yaml:"rise_range"` // plus up to this much
	MinWidth   float64    `yaml:"min_width"`
	WidthRange float64    `yaml:"width_range"`
	Height     float64    `yaml:"height"`
}

// ObjectSpawn defines enemy/coin/heart timing and roll bands.
// The coin chance is whatever remains after heart and enemy.
type ObjectSpawn struct {
	Delay       DelayCurve `yaml:"delay"`
	HeartChance float64    `yaml:"heart_chance"`
	EnemyChance float64    `yaml:"enemy_chance"`
}

// PickupConfig defines entity sizes, lanes and score values.
type PickupConfig struct {
	Lanes         []float64 `yaml:"lanes"` // top edge offsets above ground for coins and hearts
	CoinSize      float64   `yaml:"coin_size"`
	CoinScore     int       `yaml:"coin_score"`
	HeartSize     float64   `yaml:"heart_size"`
	HeartBonus    int       `yaml:"heart_bonus"`
	EnemySize     float64   `yaml:"enemy_size"`
	EnemyLift     float64   `yaml:"enemy_lift"` // gap between enemy bottom and ground
	DodgeScore    int       `yaml:"dodge_score"`
	EnemyVariants []string  `yaml:"enemy_variants"`
}

// HealthConfig defines hearts and the invulnerability window.
type HealthConfig struct {
	MaxHearts      int `yaml:"max_hearts"`
	InvulnerableMS int `yaml:"invulnerable_ms"`
	BlinkPeriod    int `yaml:"blink_period"`  // frames per blink cycle
	BlinkVisible   int `yaml:"blink_visible"` // frames of each cycle the player is drawn
}

// AudioConfig defines the two audio cues.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Volume       float64 `yaml:"volume"`         // -5..0, 0 = unity gain
	MusicPath    string  `yaml:"music_path"`     // optional mp3, synthesized when empty
	GameOverPath string  `yaml:"game_over_path"` // optional mp3, synthesized when empty
}

// Invulnerability returns the invulnerability window as a duration.
func (h HealthConfig) Invulnerability() time.Duration {
	return time.Duration(h.InvulnerableMS) * time.Millisecond
}

// Initial returns the delay before the first spawn of a session.
func (d DelayCurve) Initial() time.Duration {
	return time.Duration(d.InitialMS) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
