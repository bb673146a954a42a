package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors. Cell types, HUD text and highlights pick from these.
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

// ScreenCell is one character position in a Screen.
type ScreenCell struct {
	Rune  rune
	Color Color
	Bold  bool
}

// blank is the cleared cell.
var blank = ScreenCell{Rune: ' ', Color: ColorDefault}
