package core

// Color represents a foreground colour for a screen cell.
// Frontends map it to ANSI codes or RGBA.
type Color uint8

// Predefined colours for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightWhite
)
