// Package tui provides the Bubble Tea integration for Neon Runner.
// It handles the terminal UI loop, input mapping, overlays and the leaderboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to simulate one frame.
type TickMsg time.Time

// frameInterval converts a frame rate to the delay between ticks.
// Non-positive rates fall back to 60 fps.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// tickCmd schedules the next frame. The model keeps at most one in flight
// and stops rescheduling once a run ends.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
