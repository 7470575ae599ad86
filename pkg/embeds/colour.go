package embeds

import (
	"fmt"
	"strconv"
	"strings"
)

// Colour is a 24-bit RGB embed colour.
type Colour int

// Colours used across the library and the example bot.
const (
	ColourGreen     Colour = 0x00ff00 // Green
	ColourRed       Colour = 0xff0000 // Red
	ColourOrange    Colour = 0xffaa00 // Orange
	ColourBlurple   Colour = 0x7289da // Discord blurple
	ColourDarkTheme Colour = 0x313338 // Default embed background
)

// Int returns the colour as the plain int discordgo expects.
func (c Colour) Int() int {
	return int(c)
}

// Hex returns the colour as a "#rrggbb" string.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%06x", int(c))
}

// RGB returns the red, green and blue components of the colour.
func (c Colour) RGB() (r, g, b int) {
	return int(c) >> 16 & 0xff, int(c) >> 8 & 0xff, int(c) & 0xff
}

func (c Colour) String() string {
	return c.Hex()
}

// ParseColour converts a colour string to a Colour.
//
// Accepted forms:
//   - "#rgb" or "#rrggbb"
//   - "0xrrggbb" (a leading "0x#" also works)
//   - bare hex digits: "rrggbb"
//   - "rgb(r, g, b)" where each component is an integer 0-255 or a percentage
func ParseColour(value string) (Colour, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, fmt.Errorf("embeds: empty colour string")
	}

	if lower := strings.ToLower(s); strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		return parseRGBColour(s[4 : len(s)-1])
	}

	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "#")

	if len(s) == 3 {
		// #rgb shorthand, expand each digit
		var expanded strings.Builder
		for _, ch := range s {
			expanded.WriteRune(ch)
			expanded.WriteRune(ch)
		}
		s = expanded.String()
	}

	if len(s) != 6 {
		return 0, fmt.Errorf("embeds: invalid colour string %q", value)
	}

	n, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("embeds: invalid colour string %q", value)
	}

	return Colour(n), nil
}

func parseRGBColour(inner string) (Colour, error) {
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return 0, fmt.Errorf("embeds: rgb colour needs exactly 3 components, got %d", len(parts))
	}

	var components [3]int
	for i, part := range parts {
		part = strings.TrimSpace(part)

		var (
			n   int
			err error
		)
		if strings.HasSuffix(part, "%") {
			var pct int
			pct, err = strconv.Atoi(strings.TrimSuffix(part, "%"))
			n = pct * 255 / 100
		} else {
			n, err = strconv.Atoi(part)
		}
		if err != nil || n < 0 || n > 255 {
			return 0, fmt.Errorf("embeds: invalid rgb component %q", part)
		}
		components[i] = n
	}

	return Colour(components[0]<<16 | components[1]<<8 | components[2]), nil
}

// ColourFrom coerces common colour representations to a Colour.
// Supported inputs are Colour, any int/uint type and strings in the
// forms accepted by ParseColour.
func ColourFrom(value any) (Colour, error) {
	switch v := value.(type) {
	case Colour:
		return v, nil
	case int:
		return clampColour(int64(v))
	case int32:
		return clampColour(int64(v))
	case int64:
		return clampColour(v)
	case uint:
		return clampColour(int64(v))
	case uint32:
		return clampColour(int64(v))
	case uint64:
		if v > 0xffffff {
			return 0, fmt.Errorf("embeds: colour value %d out of range", v)
		}
		return Colour(v), nil
	case string:
		return ParseColour(v)
	default:
		return 0, fmt.Errorf("embeds: cannot convert %T to a colour", value)
	}
}

func clampColour(n int64) (Colour, error) {
	if n < 0 || n > 0xffffff {
		return 0, fmt.Errorf("embeds: colour value %d out of range", n)
	}
	return Colour(n), nil
}
