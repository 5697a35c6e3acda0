package render

import (
	"fmt"
	"image/color"
)

// ParseHexColor parses "#rrggbb". Anything else yields fallback.
func ParseHexColor(s string, fallback color.RGBA) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return fallback
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
