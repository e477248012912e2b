package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color when rendering.
type Color uint8

// Basic palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Arena roles. Renderers use these instead of raw palette entries so the
// look of the duel can be changed in one place.
const (
	ColorPlayer1      = ColorBrightBlue
	ColorPlayer2      = ColorBrightRed
	ColorShieldUp     = ColorBrightCyan
	ColorShieldBroken = ColorOrange
	ColorHealth       = ColorBrightGreen
	ColorWall         = ColorGray
)

// ActorColor returns the color used for the given player's actor.
func ActorColor(id PlayerID) Color {
	if id == Player2 {
		return ColorPlayer2
	}
	return ColorPlayer1
}

// ProjectileColor returns the color of projectiles fired by the given player.
func ProjectileColor(owner PlayerID) Color {
	if owner == Player2 {
		return ColorOrange
	}
	return ColorBrightCyan
}
