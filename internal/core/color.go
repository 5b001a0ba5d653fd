package core

// Color identifies a foreground color for a screen cell. The platform
// layer maps these onto terminal styles; games never deal with ANSI.
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
	ColorOrange
	ColorGray
)
