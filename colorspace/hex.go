package colorspace

import (
	"errors"
	"strings"
)

// ErrMalformedHex is returned when a string is not a 3 or 6 digit hex color.
var ErrMalformedHex = errors.New("malformed hex color")

// IsHexDigit reports whether c is 0-9, a-f or A-F.
func IsHexDigit(c byte) bool {
	_, ok := hexValue(c)
	return ok
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// ExpandHex turns the 3-digit form into the 6-digit form by doubling each digit.
// Other lengths are returned unchanged.
func ExpandHex(digits string) string {
	if len(digits) != 3 {
		return digits
	}
	return string([]byte{
		digits[0], digits[0],
		digits[1], digits[1],
		digits[2], digits[2],
	})
}

// ParseHex decodes "#rgb", "#rrggbb" or the same without the leading '#'.
func ParseHex(s string) (Color, error) {
	digits := ExpandHex(strings.TrimPrefix(s, "#"))
	if len(digits) != 6 {
		return Color{}, ErrMalformedHex
	}

	var channels [3]uint8
	for i := range channels {
		hi, ok1 := hexValue(digits[2*i])
		lo, ok2 := hexValue(digits[2*i+1])
		if !ok1 || !ok2 {
			return Color{}, ErrMalformedHex
		}
		channels[i] = hi<<4 | lo
	}

	return RGB(channels[0], channels[1], channels[2]), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is meant for trusted, embedded data.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err.Error() + ": " + s)
	}
	return c
}
