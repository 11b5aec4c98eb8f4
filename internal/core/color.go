package core

// Color is a palette entry for a screen cell. Both frontends draw from the
// same palette so brick rows look alike in the terminal and in a window.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorMagenta
	ColorGray
	ColorBrightWhite
	ColorBrightYellow
)

type swatch struct {
	ansi    string // ANSI 256-color code, empty for the terminal default
	r, g, b uint8
}

var palette = [...]swatch{
	ColorDefault:      {"", 220, 220, 220},
	ColorRed:          {"1", 220, 60, 60},
	ColorOrange:       {"208", 240, 150, 50},
	ColorYellow:       {"3", 230, 210, 70},
	ColorGreen:        {"2", 90, 200, 90},
	ColorCyan:         {"6", 70, 200, 210},
	ColorBlue:         {"4", 70, 110, 230},
	ColorMagenta:      {"5", 200, 80, 200},
	ColorGray:         {"245", 128, 128, 128},
	ColorBrightWhite:  {"15", 255, 255, 255},
	ColorBrightYellow: {"11", 255, 255, 120},
}

func (c Color) swatch() swatch {
	if int(c) >= len(palette) {
		return palette[ColorDefault]
	}
	return palette[c]
}

// ANSI returns the terminal color code, or "" for the default foreground.
func (c Color) ANSI() string {
	return c.swatch().ansi
}

// RGB returns the color used when drawing into an image.
func (c Color) RGB() (r, g, b uint8) {
	s := c.swatch()
	return s.r, s.g, s.b
}
