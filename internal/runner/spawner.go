package runner

import (
	"math/rand"
	"time"

	"github.com/adventure-squad/neon-runner/internal/config"
	"github.com/adventure-squad/neon-runner/internal/core"
)

// ObjectKind is the outcome of an object spawn roll.
type ObjectKind int

const (
	ObjectHeart ObjectKind = iota
	ObjectEnemy
	ObjectCoin
)

// Spawner owns the two independent spawn timers and the RNG that shapes
// new platforms and objects.
type Spawner struct {
	rng         *rand.Rand
	cfg         *config.RunnerConfig
	progression *config.Progression
	nextID      uint64

	lastPlatform  time.Time
	platformDelay time.Duration
	lastObject    time.Time
	objectDelay   time.Duration
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.RunnerConfig, prog *config.Progression) *Spawner {
	return &Spawner{
		rng:         rand.New(rand.NewSource(seed)),
		cfg:         cfg,
		progression: prog,
	}
}

// Reset restarts both timers at now with their initial delays.
// The RNG keeps its sequence so consecutive runs differ.
func (sp *Spawner) Reset(now time.Time) {
	sp.lastPlatform = now
	sp.platformDelay = sp.cfg.Spawn.Platform.Delay.Initial()
	sp.lastObject = now
	sp.objectDelay = sp.cfg.Spawn.Object.Delay.Initial()
}

// Update fires whichever timers have elapsed, appending at most one
// platform and one object to the session.
func (sp *Spawner) Update(s *Session, now time.Time) {
	if now.Sub(sp.lastPlatform) > sp.platformDelay {
		sp.spawnPlatform(s)
		sp.lastPlatform = now
		sp.platformDelay = sp.progression.PlatformDelay(s.Score, sp.rng.Float64())
	}

	if now.Sub(sp.lastObject) > sp.objectDelay {
		sp.spawnObject(s)
		sp.lastObject = now
		sp.objectDelay = sp.progression.ObjectDelay(s.Score, sp.rng.Float64())
	}
}

func (sp *Spawner) id() uint64 {
	sp.nextID++
	return sp.nextID
}

// spawnPlatform places a platform just past the right edge.
func (sp *Spawner) spawnPlatform(s *Session) {
	pc := sp.cfg.Spawn.Platform
	y := sp.cfg.World.GroundY - pc.MinRise - sp.rng.Float64()*pc.RiseRange
	w := pc.MinWidth + sp.rng.Float64()*pc.WidthRange

	s.Platforms = append(s.Platforms, Platform{
		ID:  sp.id(),
		Box: core.NewRect(sp.cfg.World.Width, y, w, pc.Height),
	})
}

// spawnObject rolls one of heart, enemy or coin and creates exactly one.
func (sp *Spawner) spawnObject(s *Session) {
	pk := sp.cfg.Pickups
	ground := sp.cfg.World.GroundY
	x := sp.cfg.World.Width

	switch sp.classify(sp.rng.Float64()) {
	case ObjectHeart:
		s.HeartPickups = append(s.HeartPickups, HeartPickup{
			ID:  sp.id(),
			Box: core.NewRect(x, ground-sp.lane(), pk.HeartSize, pk.HeartSize),
		})
	case ObjectEnemy:
		s.Enemies = append(s.Enemies, Enemy{
			ID:      sp.id(),
			Box:     core.NewRect(x, ground-pk.EnemyLift-pk.EnemySize, pk.EnemySize, pk.EnemySize),
			Variant: sp.variant(),
		})
	default:
		s.Coins = append(s.Coins, Coin{
			ID:  sp.id(),
			Box: core.NewRect(x, ground-sp.lane(), pk.CoinSize, pk.CoinSize),
		})
	}
}

// classify maps a roll in [0, 1) onto the object probability bands.
func (sp *Spawner) classify(roll float64) ObjectKind {
	oc := sp.cfg.Spawn.Object
	switch {
	case roll < oc.HeartChance:
		return ObjectHeart
	case roll < oc.HeartChance+oc.EnemyChance:
		return ObjectEnemy
	default:
		return ObjectCoin
	}
}

// lane picks the height above ground for a coin or heart.
func (sp *Spawner) lane() float64 {
	lanes := sp.cfg.Pickups.Lanes
	if len(lanes) == 0 {
		return 0
	}
	return lanes[sp.rng.Intn(len(lanes))]
}

func (sp *Spawner) variant() string {
	v := sp.cfg.Pickups.EnemyVariants
	if len(v) == 0 {
		return ""
	}
	return v[sp.rng.Intn(len(v))]
}
