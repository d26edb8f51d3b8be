package core

// Color identifies the foreground color of a screen cell.
// The platform maps each value onto an ANSI 256-color code.
type Color uint8

// Palette. ColorDefault is the zero value and renders with the terminal's
// default foreground; boards use it to mean "no block here".
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
	ColorDarkGray
)

// IsEmpty reports whether c is the empty (default) color.
func (c Color) IsEmpty() bool {
	return c == ColorDefault
}
