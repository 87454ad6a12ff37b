package palette

import (
	"math"

	"github.com/cotocowind/cotocowind/colorspace"
)

// Result is the outcome of a nearest-match search.
type Result struct {
	Code     string  `json:"code"`
	Hex      string  `json:"hex"`
	Distance float64 `json:"distance"`
}

// Closest scans the palette in order and returns the entry with the smallest
// Euclidean distance to target. The first of several equally close entries wins.
// A nil or zero Palette yields the zero Entry at infinite distance.
func (p *Palette) Closest(target colorspace.Color) (Entry, float64) {
	if p == nil || len(p.entries) == 0 {
		return Entry{}, math.Inf(1)
	}

	best, bestDistance := 0, math.Inf(1)
	for i, e := range p.entries {
		if d := target.Distance(e.color); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return p.entries[best], bestDistance
}

// FindClosest reports the code and canonical hex of the entry closest to target.
func FindClosest(target colorspace.Color, p *Palette) Result {
	e, d := p.Closest(target)
	return Result{Code: e.Code(), Hex: e.Hex, Distance: d}
}
