package gfx

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Fallbacks for an empty palette or background.
var (
	defaultGround     = []color.Color{colornames.Dimgray, colornames.Firebrick}
	defaultBackground = color.Color(colornames.Midnightblue)
	ballColor         = color.Color(colornames.Gold)
	spinColor         = color.Color(colornames.Darkorange)
	textShadow        = color.Color(colornames.Black)
)

// ParseColor resolves an SVG color name such as "firebrick".
func ParseColor(name string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("gfx: unknown color %q", name)
	}
	return c, nil
}

// Palette resolves ground colors by name. Segment color indices wrap
// around the returned slice.
func Palette(names []string) ([]color.Color, error) {
	if len(names) == 0 {
		return defaultGround, nil
	}
	out := make([]color.Color, 0, len(names))
	for _, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Background resolves the clear color, defaulting to midnight blue.
func Background(name string) (color.Color, error) {
	if name == "" {
		return defaultBackground, nil
	}
	return ParseColor(name)
}

// paletteColor picks the color for a segment color index.
func paletteColor(p []color.Color, index int) color.Color {
	if index < 0 {
		index = -index
	}
	return p[index%len(p)]
}
