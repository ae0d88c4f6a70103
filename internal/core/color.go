package core

import "strconv"

// RGB is a 24-bit color used for bricks, bonuses and particles.
// The zero value renders as the terminal default.
type RGB struct {
	R, G, B uint8
}

// Color constructs an RGB value from channel integers, clamping each
// channel to [0, 255].
func Color(r, g, b int) RGB {
	return RGB{clampChan(r), clampChan(g), clampChan(b)}
}

func clampChan(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// IsZero reports whether the color is the default (unset) color.
func (c RGB) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// ANSI256 returns the nearest 256-color cube index as a string, suitable
// for lipgloss.Color.
func (c RGB) ANSI256() string {
	r := int(c.R) * 6 / 256
	g := int(c.G) * 6 / 256
	b := int(c.B) * 6 / 256
	return strconv.Itoa(16 + 36*r + 6*g + b)
}
