package runner

import "github.com/adventure-squad/neon-runner/internal/core"

// Platform is a floating ledge the player can land on.
type Platform struct {
	ID  uint64
	Box core.Rect
}

// Enemy damages the player on contact and is only removed when it scrolls
// off the left edge, which counts as a dodge.
type Enemy struct {
	ID      uint64
	Box     core.Rect
	Variant string // sprite name
}

// Coin is collected on contact for score.
type Coin struct {
	ID  uint64
	Box core.Rect
}

// HeartPickup restores one heart on contact, or grants bonus score at full health.
type HeartPickup struct {
	ID  uint64
	Box core.Rect
}

func (p *Platform) box() *core.Rect { return &p.Box }
func (e *Enemy) box() *core.Rect { return &e.Box }
func (c *Coin) box() *core.Rect { return &c.Box }
func (h *HeartPickup) box() *core.Rect { return &h.Box }

// boxed is satisfied by pointers to entity types.
type boxed[T any] interface {
	*T
	box() *core.Rect
}

// scroll moves every entity horizontally by dx and drops the ones whose
// right edge has passed the left viewport boundary. An entity whose right
// edge lands exactly on 0 survives this call. The slice is filtered in place.
func scroll[T any, P boxed[T]](items []T, dx float64) (kept []T, removed int) {
	kept = items[:0]
	for i := range items {
		b := P(&items[i]).box()
		b.X += dx
		if b.Right() < 0 {
			removed++
			continue
		}
		kept = append(kept, items[i])
	}
	return kept, removed
}

// collect removes every entity that overlaps hitbox and reports how many
// were removed.
func collect[T any, P boxed[T]](items []T, hitbox core.Rect) (kept []T, collected int) {
	kept = items[:0]
	for i := range items {
		if hitbox.Intersects(*P(&items[i]).box()) {
			collected++
			continue
		}
		kept = append(kept, items[i])
	}
	return kept, collected
}

// touching reports whether any entity overlaps hitbox.
func touching[T any, P boxed[T]](items []T, hitbox core.Rect) bool {
	for i := range items {
		if hitbox.Intersects(*P(&items[i]).box()) {
			return true
		}
	}
	return false
}
