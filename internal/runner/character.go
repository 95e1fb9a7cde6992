package runner

import (
	"slices"

	"github.com/adventure-squad/neon-runner/internal/core"
)

// Character is a selectable hero. ID doubles as the sprite name.
type Character struct {
	ID          string
	Name        string
	Description string
	Color       core.Color
}

var roster = []Character{
	{ID: "jack", Name: "Jack", Description: "Tech Leader", Color: core.ColorCyan},
	{ID: "peter", Name: "Peter", Description: "Detective", Color: core.ColorGreen},
	{ID: "charlie", Name: "Charlie", Description: "Powerhouse", Color: core.ColorMagenta},
}

// Characters returns the hero roster in display order.
func Characters() []Character {
	return slices.Clone(roster)
}

// CharacterByID looks up a hero by ID.
func CharacterByID(id string) (Character, bool) {
	i := slices.IndexFunc(roster, func(c Character) bool { return c.ID == id })
	if i < 0 {
		return Character{}, false
	}
	return roster[i], true
}
