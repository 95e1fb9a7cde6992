package config

import (
	"math"
	"time"
)

// Progression calculates score-driven game parameters.
type Progression struct {
	physics  PhysicsConfig
	platform DelayCurve
	object   DelayCurve
}

// NewProgression creates a progression for the given tuning.
func NewProgression(cfg RunnerConfig) *Progression {
	return &Progression{
		physics:  cfg.Physics,
		platform: cfg.Spawn.Platform.Delay,
		object:   cfg.Spawn.Object.Delay,
	}
}

// Speed returns the world scroll speed for a score, within [base, max].
func (p *Progression) Speed(score int) float64 {
	speed := p.physics.BaseSpeed + float64(score)/p.physics.ScorePerSpeedStep
	return clampF(speed, p.physics.BaseSpeed, p.physics.MaxSpeed)
}

// MusicRate returns the background music playback rate for a score.
func (p *Progression) MusicRate(score int) float64 {
	return 1 + float64(score)/p.physics.ScorePerMusicStep
}

// PlatformDelay returns the wait before the next platform.
// jitter is a uniform sample in [0, 1).
func (p *Progression) PlatformDelay(score int, jitter float64) time.Duration {
	return p.platform.at(score, jitter)
}

// ObjectDelay returns the wait before the next enemy, coin or heart.
// jitter is a uniform sample in [0, 1).
func (p *Progression) ObjectDelay(score int, jitter float64) time.Duration {
	return p.object.at(score, jitter)
}

// at evaluates max(floor, base - score*per_score) + jitter*range.
func (d DelayCurve) at(score int, jitter float64) time.Duration {
	ms := max(float64(d.FloorMS), float64(d.BaseMS)-float64(score)*float64(d.PerScoreMS))
	ms += clampF(jitter, 0, 1) * float64(d.JitterMS)
	return time.Duration(ms * float64(time.Millisecond))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
