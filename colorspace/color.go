// Package colorspace holds the RGB color value shared by the parser and the matcher,
// together with hex decoding and HSL conversion.
package colorspace

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple with 8-bit channels. The zero value is black.
type Color struct {
	r, g, b uint8
}

// RGB builds a color from channel intensities.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b}
}

// Clamp builds a color from arbitrary integers, saturating each channel into [0, 255].
func Clamp(r, g, b int) Color {
	return Color{r: clampChannel(r), g: clampChannel(g), b: clampChannel(b)}
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(v)
	}
}

// RGB returns the red, green and blue channels.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Hex returns the lowercase #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// String returns the rgb() functional form.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
}

// HSL returns hue in degrees and saturation and lightness in percent.
func (c Color) HSL() (h, s, l float64) {
	h, s, l = colorful.Color{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
	}.Hsl()
	return h, s * 100, l * 100
}

// Distance is the Euclidean distance between two colors in raw channel space.
func (c Color) Distance(other Color) float64 {
	dr := float64(c.r) - float64(other.r)
	dg := float64(c.g) - float64(other.g)
	db := float64(c.b) - float64(other.b)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// MarshalText encodes the color as #rrggbb.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a #rrggbb or #rgb string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
