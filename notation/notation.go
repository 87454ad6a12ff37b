// Package notation parses the textual color notations accepted by cotocowind:
// #RGB / #RRGGBB, rgb(R, G, B) and hsl(H, S%, L%).
package notation

import (
	"fmt"
	"strings"

	"github.com/cotocowind/cotocowind/colorspace"
)

// Notation identifies one of the accepted syntaxes.
type Notation string

const (
	Hex Notation = "hex"
	RGB Notation = "rgb"
	HSL Notation = "hsl"
)

// prefixes are tested in order; the first one the input starts with decides the grammar.
var prefixes = []struct {
	prefix   string
	notation Notation
}{
	{"#", Hex},
	{"rgb", RGB},
	{"hsl", HSL},
}

// Detect reports which notation the input claims to be, judging by its prefix only.
func Detect(input string) (Notation, bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(input, p.prefix) {
			return p.notation, true
		}
	}
	return "", false
}

// Parser converts notation strings into colors.
type Parser struct {
	// StrictRange rejects rgb() channels above 255, hsl() hue above 360 and
	// saturation or lightness above 100. When false those values are clamped,
	// except hue, which is passed to the converter unchanged.
	StrictRange bool
}

// Parse is Parser{}.Parse.
func Parse(input string) (colorspace.Color, error) {
	return Parser{}.Parse(input)
}

// Parse converts input to a color. Errors are always *ParseError.
func (p Parser) Parse(input string) (colorspace.Color, error) {
	n, ok := Detect(input)
	if !ok {
		return colorspace.Color{}, &ParseError{Kind: UnrecognizedNotation, Input: input}
	}

	switch n {
	case Hex:
		return parseHex(input)
	case RGB:
		return p.parseRGB(input)
	default:
		return p.parseHSL(input)
	}
}

func parseHex(input string) (colorspace.Color, error) {
	digits := input[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return colorspace.Color{}, newError(InvalidHexFormat, input, "expected 3 or 6 hex digits, got %d", len(digits))
	}

	for i := 0; i < len(digits); i++ {
		if !colorspace.IsHexDigit(digits[i]) {
			return colorspace.Color{}, newError(InvalidHexFormat, input, "%q is not a hex digit", digits[i])
		}
	}

	return colorspace.MustParseHex(digits), nil
}

var channelNames = [3]string{"red", "green", "blue"}

func (p Parser) parseRGB(input string) (colorspace.Color, error) {
	s := &scanner{src: input}
	s.literal(string(RGB))

	values, reason := s.arguments([3]bool{})
	if reason != "" {
		return colorspace.Color{}, &ParseError{Kind: InvalidRgbFormat, Input: input, Reason: reason}
	}

	if p.StrictRange {
		for i, v := range values {
			if v > 255 {
				return colorspace.Color{}, newError(InvalidRgbFormat, input, "%s channel %d exceeds 255", channelNames[i], v)
			}
		}
	}

	return colorspace.Clamp(values[0], values[1], values[2]), nil
}

func (p Parser) parseHSL(input string) (colorspace.Color, error) {
	s := &scanner{src: input}
	s.literal(string(HSL))

	values, reason := s.arguments([3]bool{false, true, true})
	if reason != "" {
		return colorspace.Color{}, &ParseError{Kind: InvalidHslFormat, Input: input, Reason: reason}
	}

	h, sat, light := values[0], values[1], values[2]
	if p.StrictRange {
		if err := checkRange(input, "hue", h, 360); err != nil {
			return colorspace.Color{}, err
		}
		if err := checkRange(input, "saturation", sat, 100); err != nil {
			return colorspace.Color{}, err
		}
		if err := checkRange(input, "lightness", light, 100); err != nil {
			return colorspace.Color{}, err
		}
	}

	sat, light = min(sat, 100), min(light, 100)
	return colorspace.HSLToRGB(float64(h), float64(sat), float64(light)), nil
}

func checkRange(input, component string, v, limit int) error {
	if v <= limit {
		return nil
	}
	return &ParseError{
		Kind:   InvalidHslFormat,
		Input:  input,
		Reason: fmt.Sprintf("%s %d exceeds %d", component, v, limit),
	}
}
