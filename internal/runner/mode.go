package runner

// Mode is the screen the game is currently on. Exactly one is active.
type Mode int

const (
	// ModeCharacterSelect is the initial screen: pick a hero.
	ModeCharacterSelect Mode = iota
	// ModeStart waits for the first jump to begin a session.
	ModeStart
	// ModePlaying runs the per-frame simulation.
	ModePlaying
	// ModeGameOver shows the final score until the next jump.
	ModeGameOver
)

// String returns the mode name shown to the host.
func (m Mode) String() string {
	switch m {
	case ModeCharacterSelect:
		return "CHARACTER_SELECT"
	case ModeStart:
		return "START"
	case ModePlaying:
		return "PLAYING"
	case ModeGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}
