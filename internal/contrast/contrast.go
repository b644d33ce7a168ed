// Package contrast provides pure color math for readable theming decisions.
package contrast

import (
	"errors"
	"fmt"
	"strings"
)

// Fixed text colors chosen against light and dark backgrounds.
const (
	darkText  = "#1a1a1a"
	lightText = "#f2f2f2"
)

// lightThreshold is the luminance above which a color counts as light.
// A luminance of exactly 140 is still dark.
const lightThreshold = 140

// ErrInvalidHex is returned for values that are not #RRGGBB hex colors.
var ErrInvalidHex = errors.New("invalid hex color")

// ParseHex decodes a #RRGGBB (leading # optional) color into channels.
func ParseHex(hex string) (r, g, b int, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	for i := 0; i < 6; i++ {
		if hexVal(s[i]) < 0 {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
	}
	r = hexVal(s[0])<<4 | hexVal(s[1])
	g = hexVal(s[2])<<4 | hexVal(s[3])
	b = hexVal(s[4])<<4 | hexVal(s[5])
	return r, g, b, nil
}

// FormatHex encodes channels as a normalized #rrggbb string.
func FormatHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(r), clamp(g), clamp(b))
}

// Luminance returns the perceived brightness of a color in [0, 255].
// Malformed input is treated as black.
func Luminance(hex string) int {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return 0
	}
	return (299*r + 587*g + 114*b) / 1000
}

// IsLight reports whether a color is bright enough to need dark text.
func IsLight(hex string) bool {
	return Luminance(hex) > lightThreshold
}

// ContrastingForeground returns a text color guaranteed legible on the
// given background.
func ContrastingForeground(hex string) string {
	if IsLight(hex) {
		return darkText
	}
	return lightText
}

// Darken scales each channel down by percent, truncating toward zero.
// Malformed input is treated as black, which darkens to black.
func Darken(hex string, percent int) string {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		r, g, b = 0, 0, 0
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	scale := func(c int) int { return c * (100 - percent) / 100 }
	return FormatHex(scale(r), scale(g), scale(b))
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func clamp(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}
