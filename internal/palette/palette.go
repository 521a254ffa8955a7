// Package palette maps binary cell states to RGB colors.
package palette

import (
	"fmt"
	"image/color"
	"strconv"

	"sundryautomata/internal/core"
)

// Color is an RGB triple with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// New validates integer channel values and builds a Color.
func New(r, g, b int) (Color, error) {
	for _, ch := range []int{r, g, b} {
		if ch < 0 || ch > 255 {
			return Color{}, fmt.Errorf("%w: color channel %d outside [0,255]", core.ErrConfig, ch)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseHex parses a "#rrggbb" color string.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: color %q is not of the form #rrggbb", core.ErrConfig, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q is not of the form #rrggbb", core.ErrConfig, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// String renders the color in the filename style used by output path
// templates, e.g. "r255g0b128".
func (c Color) String() string {
	return fmt.Sprintf("r%dg%db%d", c.R, c.G, c.B)
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to the stdlib color type with full opacity.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Palette pairs the two colors an image is built from.
type Palette struct {
	Living Color
	Dead   Color
}

// ColorOf maps a cell state to its color.
func (p Palette) ColorOf(alive bool) Color {
	if alive {
		return p.Living
	}
	return p.Dead
}
