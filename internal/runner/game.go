// Package runner implements Neon Runner, a side-scrolling endless runner.
// The player jumps between the ground and floating platforms, collects
// coins and hearts and dodges enemies while the world speeds up.
//
// Game is driven by its host: Input once per batch of key presses, Step
// once per display frame, Render after each step. All three take the
// frame timestamp so the game can be stepped synchronously in tests.
package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/adventure-squad/neon-runner/internal/config"
	"github.com/adventure-squad/neon-runner/internal/core"
	"github.com/adventure-squad/neon-runner/internal/sprites"
)

var (
	// ErrUnknownCharacter is returned when a roster index is out of range.
	ErrUnknownCharacter = errors.New("runner: unknown character")
	// ErrNotSelecting is returned when a character is chosen outside the selection screen.
	ErrNotSelecting = errors.New("runner: not on the character selection screen")
)

// Cues receives audio side effects. Calls are fire-and-forget;
// implementations must not block the frame and must swallow their errors.
type Cues interface {
	StartMusic()
	StopMusic()
	SetMusicRate(rate float64)
	PlayGameOver()
}

// NopCues discards every cue.
type NopCues struct{}

func (NopCues) StartMusic() {}
func (NopCues) StopMusic() {}
func (NopCues) SetMusicRate(float64) {}
func (NopCues) PlayGameOver() {}

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default tuning.
func WithConfig(cfg config.RunnerConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithSeed seeds the spawn RNG.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// WithCues routes audio cues to c.
func WithCues(c Cues) Option {
	return func(g *Game) {
		if c != nil {
			g.cues = c
		}
	}
}

// WithSprites sets the sprite sheet used by Render.
func WithSprites(sheet *sprites.Sheet) Option {
	return func(g *Game) { g.sheet = sheet }
}

// Game implements the Neon Runner state machine and frame step.
type Game struct {
	cfg         config.RunnerConfig
	seed        int64
	progression *config.Progression
	spawner     *Spawner
	cues        Cues
	sheet       *sprites.Sheet

	mode      Mode
	cursor    int // highlighted roster entry on the selection screen
	character Character
	session   Session
	musicRate float64
}

// New creates a game on the character selection screen.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:  config.DefaultRunnerConfig(),
		cues: NopCues{},
	}
	for _, opt := range opts {
		opt(g)
	}

	g.progression = config.NewProgression(g.cfg)
	g.spawner = NewSpawner(g.seed, &g.cfg, g.progression)
	g.session.reset(&g.cfg, time.Time{})
	g.mode = ModeCharacterSelect
	g.character = roster[0]
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "neon-runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Runner"
}

// Mode returns the active screen.
func (g *Game) Mode() Mode {
	return g.mode
}

// Cursor returns the highlighted roster index on the selection screen.
func (g *Game) Cursor() int {
	return g.cursor
}

// Character returns the selected hero.
func (g *Game) Character() Character {
	return g.character
}

// Characters returns the hero roster.
func (g *Game) Characters() []Character {
	return Characters()
}

// Config returns the active tuning.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// SelectCharacter picks roster entry i and moves to the ready screen.
func (g *Game) SelectCharacter(i int) error {
	if g.mode != ModeCharacterSelect {
		return ErrNotSelecting
	}
	if i < 0 || i >= len(roster) {
		return fmt.Errorf("%w: index %d", ErrUnknownCharacter, i)
	}
	g.cursor = i
	g.character = roster[i]
	g.mode = ModeStart
	return nil
}

// Input applies the actions gathered since the last frame.
func (g *Game) Input(in core.InputFrame, now time.Time) {
	switch g.mode {
	case ModeCharacterSelect:
		g.handleCharacterSelect(in)
	case ModeStart:
		g.handleStart(in, now)
	case ModePlaying:
		g.handlePlaying(in)
	case ModeGameOver:
		g.handleGameOver(in, now)
	}
}

func (g *Game) handleCharacterSelect(in core.InputFrame) {
	n := len(roster)
	if in.Has(core.ActionLeft) {
		g.cursor = (g.cursor - 1 + n) % n
	}
	if in.Has(core.ActionRight) {
		g.cursor = (g.cursor + 1) % n
	}
	if in.Has(core.ActionActivate) {
		_ = g.SelectCharacter(g.cursor)
	}
}

func (g *Game) handleStart(in core.InputFrame, now time.Time) {
	switch {
	case in.Has(core.ActionActivate):
		g.startSession(now)
	case in.Has(core.ActionBack):
		g.mode = ModeCharacterSelect
	}
}

func (g *Game) handlePlaying(in core.InputFrame) {
	if !in.Has(core.ActionActivate) {
		return
	}
	p := &g.session.Player
	if !p.Grounded {
		return
	}
	p.VelY = g.cfg.Physics.JumpImpulse
	p.Grounded = false
}

func (g *Game) handleGameOver(in core.InputFrame, now time.Time) {
	if in.Has(core.ActionActivate) {
		g.startSession(now)
	}
}

// startSession resets every piece of session state and enters PLAYING.
func (g *Game) startSession(now time.Time) {
	g.session.reset(&g.cfg, now)
	g.session.Speed = g.progression.Speed(0)
	g.spawner.Reset(now)
	g.mode = ModePlaying
	g.musicRate = g.progression.MusicRate(0)

	g.cues.StartMusic()
	g.cues.SetMusicRate(g.musicRate)
}

// endSession enters GAME_OVER. The world is emptied so nothing outlives
// the session.
func (g *Game) endSession() {
	g.mode = ModeGameOver
	g.session.clearEntities()

	g.cues.StopMusic()
	g.cues.PlayGameOver()
}

// Step advances the simulation by one frame. It does nothing outside
// PLAYING, and Continue turns false the moment the session ends.
func (g *Game) Step(now time.Time) core.StepResult {
	if g.mode != ModePlaying {
		return g.result()
	}

	s := &g.session
	s.Now = now
	s.FrameCount++

	g.updateSpeed(s)
	g.spawner.Update(s, now)
	g.advanceEntities(s)
	g.applyPhysics(s)

	g.resolveCeiling(s, now)
	if g.mode != ModePlaying {
		return g.result()
	}

	g.resolvePlatforms(s)
	g.resolveCollisions(s, now)
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		Snapshot: g.Snapshot(),
		Continue: g.mode == ModePlaying,
	}
}

// updateSpeed derives scroll speed and music rate from the score.
func (g *Game) updateSpeed(s *Session) {
	s.Speed = g.progression.Speed(s.Score)

	rate := g.progression.MusicRate(s.Score)
	if rate != g.musicRate {
		g.musicRate = rate
		g.cues.SetMusicRate(rate)
	}
}

// advanceEntities scrolls the world left. Enemies that leave the screen
// were dodged and score a point each.
func (g *Game) advanceEntities(s *Session) {
	dx := -s.Speed
	s.Platforms, _ = scroll(s.Platforms, dx)
	s.Coins, _ = scroll(s.Coins, dx)
	s.HeartPickups, _ = scroll(s.HeartPickups, dx)

	var dodged int
	s.Enemies, dodged = scroll(s.Enemies, dx)
	s.Score += dodged * g.cfg.Pickups.DodgeScore
}

// applyPhysics integrates gravity and clamps to the ground.
// Grounded is recomputed from scratch every frame.
func (g *Game) applyPhysics(s *Session) {
	p := &s.Player
	p.VelY += g.cfg.Physics.Gravity
	p.FootY += p.VelY
	p.Grounded = false

	if ground := g.cfg.World.GroundY; p.FootY >= ground {
		p.FootY = ground
		p.VelY = 0
		p.Grounded = true
	}
}

// resolveCeiling pushes the head back below the ceiling and damages.
// Repeated contact is only filtered by the invulnerability window.
func (g *Game) resolveCeiling(s *Session, now time.Time) {
	p := &s.Player
	ceiling := g.cfg.World.CeilingY
	if p.FootY-g.cfg.Player.Height > ceiling {
		return
	}
	p.FootY = ceiling + g.cfg.Player.Height
	p.VelY = g.cfg.Physics.CeilingBounce
	g.damage(now)
}

// resolvePlatforms lands a falling player on any platform whose top edge
// the feet crossed this frame.
func (g *Game) resolvePlatforms(s *Session) {
	p := &s.Player
	if p.VelY < 0 {
		return
	}
	hit := g.playerHitbox()
	band := g.cfg.Physics.LandingTolerance + p.VelY

	for _, pl := range s.Platforms {
		if !hit.OverlapsX(pl.Box) {
			continue
		}
		if p.FootY >= pl.Box.Y && p.FootY <= pl.Box.Y+pl.Box.H+band {
			p.FootY = pl.Box.Y
			p.VelY = 0
			p.Grounded = true
			return
		}
	}
}

// resolveCollisions handles enemy damage and pickup collection.
func (g *Game) resolveCollisions(s *Session, now time.Time) {
	hit := g.playerHitbox()

	if touching(s.Enemies, hit) {
		g.damage(now)
		if g.mode != ModePlaying {
			return
		}
	}

	var coins int
	s.Coins, coins = collect(s.Coins, hit)
	s.Score += coins * g.cfg.Pickups.CoinScore

	var hearts int
	s.HeartPickups, hearts = collect(s.HeartPickups, hit)
	for i := 0; i < hearts; i++ {
		if s.Health < g.cfg.Health.MaxHearts {
			s.Health++
		} else {
			s.Score += g.cfg.Pickups.HeartBonus
		}
	}
}

// damage removes one heart unless the player is invulnerable at now.
// It reports whether a heart was lost.
func (g *Game) damage(now time.Time) bool {
	s := &g.session
	if now.Before(s.InvulnerableUntil) {
		return false
	}

	s.Health = max(s.Health-1, 0)
	s.InvulnerableUntil = now.Add(g.cfg.Health.Invulnerability())
	if s.Health == 0 {
		g.endSession()
	}
	return true
}

// playerHitbox returns the collision rectangle, slightly narrower than the sprite.
func (g *Game) playerHitbox() core.Rect {
	pc := g.cfg.Player
	foot := g.session.Player.FootY
	return core.NewRect(pc.X+pc.HitboxOffset, foot-pc.Height, pc.Width, pc.Height)
}

// Snapshot returns the HUD view of the game.
func (g *Game) Snapshot() core.Snapshot {
	s := &g.session
	return core.Snapshot{
		Mode:      g.mode.String(),
		Character: g.character.ID,
		Score:     s.Score,
		Hearts:    s.Health,
		MaxHearts: g.cfg.Health.MaxHearts,
		Speed:     s.Speed,
		Frame:     s.FrameCount,
	}
}

// Invulnerable reports whether damage is currently being ignored.
func (g *Game) Invulnerable() bool {
	return g.session.invulnerable()
}
