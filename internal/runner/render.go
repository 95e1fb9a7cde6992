package runner

import (
	"math"
	"time"

	"github.com/adventure-squad/neon-runner/internal/config"
	"github.com/adventure-squad/neon-runner/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▬'
	SolidChar    = '█'
	CoinChar     = '●'
	HeartChar    = '♥'
	GroundChar   = '═'
	CeilingChar  = '▀'
)

// lineThickness is the world height of the ground and ceiling lines.
const lineThickness = 4

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(w config.WorldConfig, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / w.Width,
		sy: float64(dst.Height()) / w.Height,
	}
}

// cells returns the screen span covered by r, never smaller than one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * v.sx))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return x0, y0, max(x1-x0, 1), max(y1-y0, 1)
}

// Render clears dst and draws the world back to front: platforms, player,
// enemies, coins, hearts, ground, ceiling. Score and hearts are left to
// the host.
func (g *Game) Render(dst *core.Screen, now time.Time) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := newViewport(g.cfg.World, dst)
	s := &g.session

	for _, p := range s.Platforms {
		x, y, w, h := v.cells(p.Box)
		dst.FillRect(x, y, w, h, PlatformChar, core.ColorCyan)
	}

	if g.playerVisible(now) {
		pc := g.cfg.Player
		box := core.NewRect(pc.X, s.Player.FootY-pc.Height, pc.Width, pc.Height)
		g.drawSprite(dst, v, g.character.ID, box, g.character.Color)
	}

	for _, e := range s.Enemies {
		g.drawSprite(dst, v, e.Variant, e.Box, core.ColorNeonPink)
	}
	for _, c := range s.Coins {
		drawGlyph(dst, v, c.Box, CoinChar, core.ColorGold)
	}
	for _, h := range s.HeartPickups {
		drawGlyph(dst, v, h.Box, HeartChar, core.ColorRed)
	}

	world := g.cfg.World
	x, y, w, h := v.cells(core.NewRect(0, world.GroundY, world.Width, lineThickness))
	dst.FillRect(x, y, w, h, GroundChar, core.ColorCyan)
	x, y, w, h = v.cells(core.NewRect(0, world.CeilingY-lineThickness, world.Width, lineThickness))
	dst.FillRect(x, y, w, h, CeilingChar, core.ColorNeonPink)
}

// playerVisible implements the damage blink: while invulnerable the
// player is drawn for the first part of every blink period.
func (g *Game) playerVisible(now time.Time) bool {
	if !now.Before(g.session.InvulnerableUntil) {
		return true
	}
	hc := g.cfg.Health
	if hc.BlinkPeriod <= 0 {
		return true
	}
	return g.session.FrameCount%hc.BlinkPeriod < hc.BlinkVisible
}

// drawSprite stretches a named sprite over box. Missing sprites fall back
// to a solid rectangle in the fallback color.
func (g *Game) drawSprite(dst *core.Screen, v viewport, name string, box core.Rect, fallback core.Color) {
	x, y, w, h := v.cells(box)

	sp, err := g.sheet.Get(name)
	if err != nil {
		dst.FillRect(x, y, w, h, SolidChar, fallback)
		return
	}

	color := fallback
	if tint, ok := sp.Tint(); ok {
		color = tint
	}
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			r := sp.At(cx*sp.Width()/w, cy*sp.Height()/h)
			if r != ' ' {
				dst.SetColored(x+cx, y+cy, r, color)
			}
		}
	}
}

// drawGlyph draws a single rune at the center of box.
func drawGlyph(dst *core.Screen, v viewport, box core.Rect, r rune, c core.Color) {
	cx, cy := box.Center()
	dst.SetColored(int(math.Floor(cx*v.sx)), int(math.Floor(cy*v.sy)), r, c)
}
