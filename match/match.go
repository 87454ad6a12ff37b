// Package match turns a color notation into the closest palette entry.
package match

import (
	"strings"

	"github.com/cotocowind/cotocowind/colorspace"
	"github.com/cotocowind/cotocowind/notation"
	"github.com/cotocowind/cotocowind/palette"
)

// Result is a successful match.
type Result struct {
	Code     string            `json:"code"`
	Hex      string            `json:"hex"`
	Distance float64           `json:"distance"`
	Input    colorspace.Color  `json:"input"`
	Notation notation.Notation `json:"notation"`
}

// Finder matches inputs against one palette. The zero Parser clamps out-of-range numerals.
type Finder struct {
	Palette *palette.Palette
	Parser  notation.Parser
}

// Find trims input, parses it and returns the closest entry.
// Parse failures are returned as *notation.ParseError and nothing is matched.
// A Finder without entries fails with palette.ErrEmptyPalette.
func (f Finder) Find(input string) (*Result, error) {
	if f.Palette == nil || f.Palette.Len() == 0 {
		return nil, palette.ErrEmptyPalette
	}

	input = strings.TrimSpace(input)

	c, err := f.Parser.Parse(input)
	if err != nil {
		return nil, err
	}

	n, _ := notation.Detect(input)
	found := palette.FindClosest(c, f.Palette)

	return &Result{
		Code:     found.Code,
		Hex:      found.Hex,
		Distance: found.Distance,
		Input:    c,
		Notation: n,
	}, nil
}

// Find matches input against p with the default parser.
func Find(p *palette.Palette, input string) (*Result, error) {
	return Finder{Palette: p}.Find(input)
}
