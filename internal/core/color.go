package core

// Color represents a foreground colour for a screen cell.
// Platforms map these onto ANSI codes or RGB palettes.
type Color uint8

// Predefined colours. The block and number palettes of the tile sheets are
// expressed in this set so both frontends share one palette table.
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
	ColorCursor // Reverse-video highlight used by the cursor sprite
)
