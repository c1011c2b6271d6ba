package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Base palette.
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

// Colours by track role.
const (
	ColorTrack     = ColorGray
	ColorObstacle  = ColorBrightRed
	ColorCoin      = ColorBrightYellow
	ColorHeart     = ColorBrightMagenta
	ColorPlayer    = ColorBrightCyan
	ColorPlayerHit = ColorRed
	ColorHUD       = ColorBrightWhite
)
