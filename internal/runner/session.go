package runner

import (
	"time"

	"github.com/adventure-squad/neon-runner/internal/config"
)

// Player is the runner's kinematic state. FootY is the bottom edge of the
// sprite; the column is fixed by config.
type Player struct {
	FootY    float64
	VelY     float64
	Grounded bool
}

// Session is the mutable state of one play-through. It is owned by Game and
// only touched by the frame step and the input handler.
type Session struct {
	Player       Player
	Platforms    []Platform
	Enemies      []Enemy
	Coins        []Coin
	HeartPickups []HeartPickup

	Score  int
	Health int
	Speed  float64

	InvulnerableUntil time.Time
	FrameCount        int
	Now               time.Time // timestamp of the latest frame
}

// reset puts the session at its start-of-run values.
func (s *Session) reset(cfg *config.RunnerConfig, now time.Time) {
	s.Player = Player{
		FootY:    cfg.World.GroundY,
		VelY:     0,
		Grounded: true,
	}
	s.clearEntities()
	s.Score = 0
	s.Health = cfg.Health.MaxHearts
	s.Speed = cfg.Physics.BaseSpeed
	s.InvulnerableUntil = time.Time{}
	s.FrameCount = 0
	s.Now = now
}

// clearEntities drops every world entity.
func (s *Session) clearEntities() {
	s.Platforms = s.Platforms[:0]
	s.Enemies = s.Enemies[:0]
	s.Coins = s.Coins[:0]
	s.HeartPickups = s.HeartPickups[:0]
}

// invulnerable reports whether damage is currently ignored.
func (s *Session) invulnerable() bool {
	return s.Now.Before(s.InvulnerableUntil)
}
