// Package draw provides the indexed-colour drawing surface, its two-page
// buffer and the terminal presenters that show the visible page.
package draw

// Color is an index into the active palette.
type Color uint8

// Palette indices shared by every palette set.
const (
	Black Color = iota
	White
	Gray
	Yellow
	Red
	Green
	Cyan
	Magenta
	Brown
	Blue
	Navy
	Orange
)

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Palette maps colour indices to RGB. Unset entries are black.
type Palette [256]RGB

func newPalette(entries ...RGB) Palette {
	var p Palette
	copy(p[:], entries)
	return p
}

// GamePalette is loaded while playing.
var GamePalette = newPalette(
	RGB{0, 0, 0},       // Black
	RGB{255, 255, 255}, // White
	RGB{128, 128, 128}, // Gray
	RGB{255, 230, 0},   // Yellow
	RGB{230, 40, 40},   // Red
	RGB{40, 200, 70},   // Green
	RGB{0, 220, 230},   // Cyan
	RGB{220, 40, 220},  // Magenta
	RGB{150, 90, 40},   // Brown
	RGB{40, 90, 230},   // Blue
	RGB{10, 15, 60},    // Navy
	RGB{255, 150, 30},  // Orange
)

// StartPalette is loaded on the title and scoreboard screens. Black is a
// deep blue so the logo sits on a night sky.
var StartPalette = newPalette(
	RGB{8, 10, 40},
	RGB{240, 240, 255},
	RGB{110, 110, 160},
	RGB{255, 210, 60},
	RGB{255, 80, 60},
	RGB{80, 230, 120},
	RGB{90, 230, 255},
	RGB{240, 90, 240},
	RGB{190, 120, 60},
	RGB{70, 120, 255},
	RGB{20, 25, 80},
	RGB{255, 170, 50},
)

// PausePalette is a dimmed set used by the pause and end screens.
var PausePalette = newPalette(
	RGB{0, 0, 0},
	RGB{200, 200, 200},
	RGB{80, 80, 80},
	RGB{180, 160, 0},
	RGB{160, 30, 30},
	RGB{30, 140, 50},
	RGB{0, 150, 160},
	RGB{150, 30, 150},
	RGB{100, 60, 30},
	RGB{30, 60, 160},
	RGB{10, 10, 40},
	RGB{255, 190, 90},
)
