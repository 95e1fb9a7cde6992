package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adventure-squad/neon-runner/internal/core"
	"github.com/adventure-squad/neon-runner/internal/runner"
)

// Overlay texts drawn on top of the game world.
const (
	titleText    = "N E O N   R U N N E R"
	pickHint     = "left/right choose  space confirm  1-3 pick"
	readyHint    = "SPACE or tap to run"
	changeHint   = "C to change hero"
	restartHint  = "SPACE or tap to run again"
	gameOverText = "GAME OVER"
)

// panel clears a centered box of the given size and frames it.
// Returns the box's top row and left column.
func panel(s *core.Screen, w, h int, c core.Color) (x, y int) {
	w = min(w, s.Width())
	h = min(h, s.Height())
	x = (s.Width() - w) / 2
	y = (s.Height() - h) / 2
	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, c)
	return x, y
}

// drawHUD writes score and hearts on the top row and the hero on the second.
func drawHUD(s *core.Screen, snap core.Snapshot, hero runner.Character, best int) {
	if s.Height() == 0 {
		return
	}
	s.DrawText(1, 0, fmt.Sprintf("SCORE: %d", snap.Score), core.ColorGold)

	hearts := "HEARTS: " + strings.Repeat("♥", snap.Hearts) + strings.Repeat("♡", max(snap.MaxHearts-snap.Hearts, 0))
	s.DrawText(s.Width()-len([]rune(hearts))-1, 0, hearts, core.ColorNeonPink)

	if s.Height() > 1 {
		s.DrawText(1, 1, strings.ToUpper(hero.Name), hero.Color)
		if best > 0 {
			label := fmt.Sprintf("BEST: %d", best)
			s.DrawText(s.Width()-len(label)-1, 1, label, core.ColorGray)
		}
	}
}

// drawCharacterMenu draws the hero picker.
func drawCharacterMenu(s *core.Screen, heroes []runner.Character, cursor int) {
	x, y := panel(s, 46, len(heroes)+8, core.ColorNeonPink)

	s.DrawTextCentered(y+1, titleText, core.ColorNeonPink)
	s.DrawTextCentered(y+2, "Choose your hero", core.ColorGray)

	for i, h := range heroes {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		line := fmt.Sprintf("%s%d. %-8s %s", marker, i+1, h.Name, h.Description)
		color := core.ColorGray
		if i == cursor {
			color = h.Color
		}
		s.DrawText(x+4, y+4+i, line, color)
	}

	s.DrawTextCentered(y+5+len(heroes), pickHint, core.ColorGray)
}

// drawReady draws the start prompt for the chosen hero.
func drawReady(s *core.Screen, hero runner.Character) {
	_, y := panel(s, 36, 7, hero.Color)
	s.DrawTextCentered(y+1, fmt.Sprintf("READY, %s?", strings.ToUpper(hero.Name)), hero.Color)
	s.DrawTextCentered(y+2, hero.Description, core.ColorGray)
	s.DrawTextCentered(y+4, readyHint, core.ColorWhite)
	s.DrawTextCentered(y+5, changeHint, core.ColorGray)
}

// drawGameOver draws the final score panel.
func drawGameOver(s *core.Screen, score, best int) {
	_, y := panel(s, 36, 8, core.ColorRed)
	s.DrawTextCentered(y+1, gameOverText, core.ColorRed)
	s.DrawTextCentered(y+3, fmt.Sprintf("Final Score: %d", score), core.ColorGold)

	switch {
	case best > 0 && score >= best:
		s.DrawTextCentered(y+4, "NEW BEST!", core.ColorNeonPink)
	case best > 0:
		s.DrawTextCentered(y+4, fmt.Sprintf("Best: %d", best), core.ColorGray)
	}
	s.DrawTextCentered(y+6, restartHint, core.ColorWhite)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
