package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorGold     // coins
	ColorNeonPink // ceiling, enemy fallback
	ColorPurple   // HUD glow
)

// ParseColor maps a config color name to a Color.
// Unknown names return ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	switch name {
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "magenta":
		return ColorMagenta, true
	case "cyan":
		return ColorCyan, true
	case "white":
		return ColorWhite, true
	case "gray":
		return ColorGray, true
	case "gold":
		return ColorGold, true
	case "neon-pink":
		return ColorNeonPink, true
	case "purple":
		return ColorPurple, true
	case "", "default":
		return ColorDefault, true
	default:
		return ColorDefault, false
	}
}
