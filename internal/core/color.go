package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit foreground color for a screen cell.
// The zero value means the terminal's default color.
type Color uint32

const colorSet Color = 1 << 24

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Predefined colors used by the host and the demo content.
var (
	ColorDefault Color
	ColorBlack   = RGB(0, 0, 0)
	ColorWhite   = RGB(255, 255, 255)
	ColorRed     = RGB(205, 49, 49)
	ColorGreen   = RGB(13, 188, 121)
	ColorBlue    = RGB(36, 114, 200)
	ColorYellow  = RGB(229, 229, 16)
	ColorGray    = RGB(128, 128, 128)
	ColorIndigo  = RGB(102, 126, 234)
)

var namedColors = map[string]Color{
	"black":  ColorBlack,
	"white":  ColorWhite,
	"red":    ColorRed,
	"green":  ColorGreen,
	"blue":   ColorBlue,
	"yellow": ColorYellow,
	"gray":   ColorGray,
	"grey":   ColorGray,
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Hex returns the "#rrggbb" form, or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%06x", uint32(c&0xffffff))
}

// ParseStyle parses a CSS-like fill style into a color and an alpha in [0, 1].
// Supported forms: "#rgb", "#rrggbb", "rgb(r, g, b)", "rgba(r, g, b, a)",
// and a few color names.
func ParseStyle(style string) (Color, float64, error) {
	s := strings.ToLower(strings.TrimSpace(style))

	if c, ok := namedColors[s]; ok {
		return c, 1, nil
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return ColorDefault, 0, fmt.Errorf("core: bad hex color %q", style)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return ColorDefault, 0, fmt.Errorf("core: bad hex color %q: %w", style, err)
		}
		return colorSet | Color(v), 1, nil
	}

	var args string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args = s[len("rgb(") : len(s)-1]
	default:
		return ColorDefault, 0, fmt.Errorf("core: unsupported style %q", style)
	}

	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return ColorDefault, 0, fmt.Errorf("core: bad color %q", style)
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return ColorDefault, 0, fmt.Errorf("core: bad color component in %q", style)
		}
		rgb[i] = uint8(v)
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return ColorDefault, 0, fmt.Errorf("core: bad alpha in %q: %w", style, err)
		}
		alpha = ClampF(a, 0, 1)
	}

	return RGB(rgb[0], rgb[1], rgb[2]), alpha, nil
}
