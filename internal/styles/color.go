package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color
type Color struct {
	R, G, B uint8
}

// Named colors used by the default catalog
var (
	Black      = Color{0, 0, 0}
	White      = Color{255, 255, 255}
	Blue       = Color{0, 0, 255}
	DarkBlue   = Color{0, 0, 139}
	Navy       = Color{0, 0, 128}
	DarkGreen  = Color{0, 100, 0}
	DarkGray   = Color{169, 169, 169}
	Gray       = Color{128, 128, 128}
	Red        = Color{255, 0, 0}
	Yellow     = Color{255, 255, 0}
	WhiteSmoke = Color{245, 245, 245}
	Beige      = Color{245, 245, 220}
)

// ParseHexColor parses a "#RRGGBB" color code
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, &InvalidStyleError{
			Field:   "color",
			Value:   s,
			Message: "expected #RRGGBB",
		}
	}

	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return Color{}, &InvalidStyleError{
			Field:   "color",
			Value:   s,
			Message: "not a hex color",
			Cause:   err,
		}
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHexColor is ParseHexColor for compile-time constants
func MustParseHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#RRGGBB"
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Alignment is the horizontal alignment of text or a block
type Alignment int

// Alignment values, numbered like the classic paragraph alignment codes
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// ParseAlignment parses LEFT, CENTER/CENTRE, RIGHT or JUSTIFY (case-insensitive)
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "LEFT":
		return AlignLeft, nil
	case "CENTER", "CENTRE":
		return AlignCenter, nil
	case "RIGHT":
		return AlignRight, nil
	case "JUSTIFY":
		return AlignJustify, nil
	default:
		return AlignLeft, &InvalidStyleError{
			Field:   "alignment",
			Value:   s,
			Message: "expected LEFT, CENTER, RIGHT or JUSTIFY",
		}
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "CENTER"
	case AlignRight:
		return "RIGHT"
	case AlignJustify:
		return "JUSTIFY"
	default:
		return "LEFT"
	}
}
