package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color. The zero value is fully transparent black;
// parsed colors default to full opacity.
type Color struct {
	R, G, B, A uint8
}

// ParseColor parses a hex color in "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA"
// form. The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("color %q: want 3, 4, 6 or 8 hex digits", s)
	}
	n, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := Color{A: 0xff}
	if len(h) == 8 {
		c.A = uint8(n)
		n >>= 8
	}
	c.B = uint8(n)
	n >>= 8
	c.G = uint8(n)
	n >>= 8
	c.R = uint8(n)
	return c, nil
}

// MustColor is ParseColor for known-good literals; it panics on error.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the canonical lowercase hex form, with an alpha pair only when
// the color is not fully opaque.
func (c Color) Hex() string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Engine returns the color in filter expression syntax: "0xRRGGBB", with an
// "@opacity" suffix when the color carries alpha.
func (c Color) Engine() string {
	s := fmt.Sprintf("0x%02X%02X%02X", c.R, c.G, c.B)
	if c.A != 0xff {
		s += "@" + strconv.FormatFloat(float64(c.A)/255, 'f', 2, 64)
	}
	return s
}
