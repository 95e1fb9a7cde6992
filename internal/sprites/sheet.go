// Package sprites loads the rune art used to draw characters and enemies.
// Sprites are looked up by name; a missing sprite is not fatal, callers
// fall back to a solid rectangle.
package sprites

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adventure-squad/neon-runner/internal/core"
)

//go:embed defaults/sprites.yaml
var defaultSheetYAML []byte

// ErrNoSprite is returned when a sheet has no sprite with the requested name.
var ErrNoSprite = errors.New("sprite not found")

// Sprite is a grid of runes. Spaces are transparent.
type Sprite struct {
	Rows  []string `yaml:"rows"`
	Color string   `yaml:"color"` // optional tint, empty = caller's color

	grid [][]rune
}

// Width returns the widest row in runes.
func (s *Sprite) Width() int {
	w := 0
	for _, row := range s.grid {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (s *Sprite) Height() int {
	return len(s.grid)
}

// At returns the rune at (x, y), or a space outside the grid.
func (s *Sprite) At(x, y int) rune {
	if y < 0 || y >= len(s.grid) || x < 0 || x >= len(s.grid[y]) {
		return ' '
	}
	return s.grid[y][x]
}

// Tint returns the sprite's own color, if any.
func (s *Sprite) Tint() (core.Color, bool) {
	if s.Color == "" {
		return core.ColorDefault, false
	}
	return core.ParseColor(s.Color)
}

// Sheet is a named collection of sprites.
type Sheet struct {
	Sprites map[string]*Sprite `yaml:"sprites"`
}

// Default returns the embedded sprite sheet.
func Default() (*Sheet, error) {
	return Parse(defaultSheetYAML)
}

// Load reads a sprite sheet from disk, or the embedded sheet when path is empty.
func Load(path string) (*Sheet, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprites: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML sprite sheet.
func Parse(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("sprites: cannot parse sheet: %w", err)
	}
	for name, sp := range sheet.Sprites {
		if sp == nil || len(sp.Rows) == 0 {
			delete(sheet.Sprites, name)
			continue
		}
		if sp.Color != "" {
			if _, ok := core.ParseColor(sp.Color); !ok {
				return nil, fmt.Errorf("sprites: %s: unknown color %q", name, sp.Color)
			}
		}
		sp.grid = make([][]rune, len(sp.Rows))
		for i, row := range sp.Rows {
			sp.grid[i] = []rune(row)
		}
	}
	return &sheet, nil
}

// Get returns the named sprite. A nil sheet has no sprites.
func (s *Sheet) Get(name string) (*Sprite, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSprite, name)
	}
	sp, ok := s.Sprites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSprite, name)
	}
	return sp, nil
}
