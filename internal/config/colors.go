package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a hex color string ("#RRGGBB", "#RGB", or either
// without the leading #) into a color.
func ParseColor(hex string) (colorful.Color, error) {
	if len(hex) > 0 && hex[0] != '#' {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return colorful.Color{}, fmt.Errorf("%q: %w", hex, ErrInvalidColor)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%q: %w", hex, ErrInvalidColor)
	}
	return c, nil
}

// MustParseColor converts a hex color string, panicking on error.
func MustParseColor(hex string) colorful.Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
