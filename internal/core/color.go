package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorOrange
	ColorGray
	ColorDarkRed
)

// GroundPalette is the round-robin palette used for ground segments.
// Segment color indices are taken modulo its length.
var GroundPalette = []Color{
	ColorGray,
	ColorDarkRed,
	ColorWhite,
	ColorOrange,
}

// PaletteColor returns the ground color for a segment color index.
func PaletteColor(index int) Color {
	if index < 0 {
		index = -index
	}
	return GroundPalette[index%len(GroundPalette)]
}
