package colorspace

import "math"

// HSLToRGB converts hue (degrees), saturation (percent) and lightness (percent) to RGB.
//
// The hue is divided by 360 without being wrapped, so callers should pass a value in
// [0, 360]. Channels are rounded half away from zero; HSLToRGB(0, 0, 50) is (128, 128, 128).
// Results outside [0, 255], which only arise from out-of-range input, are clamped.
func HSLToRGB(h, s, l float64) Color {
	h /= 360
	s /= 100
	l /= 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueToChannel(p, q, h+1.0/3)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3)
	}

	return Clamp(toChannel(r), toChannel(g), toChannel(b))
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func toChannel(v float64) int {
	scaled := math.Round(v * 255)
	switch {
	case math.IsNaN(scaled), scaled < 0:
		return 0
	case scaled > math.MaxUint8:
		return math.MaxUint8
	default:
		return int(scaled)
	}
}
