// Package palette models reference color palettes and finds the swatch nearest to a color.
//
// A Palette is immutable once built. Its entry order is significant: when several
// entries are equally close to a color, the first one wins.
package palette

import (
	"errors"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrEmptyPalette is returned when building a palette without entries.
var ErrEmptyPalette = errors.New("palette has no entries")

// Palette is a named, ordered, read-only collection of entries.
type Palette struct {
	name    string
	entries []Entry
	byCode  map[string]int
}

// New builds a palette. The entries slice is copied.
func New(name string, entries []Entry) (*Palette, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyPalette
	}

	p := &Palette{
		name:    name,
		entries: append([]Entry(nil), entries...),
		byCode:  make(map[string]int, len(entries)),
	}
	for i, e := range p.entries {
		if _, seen := p.byCode[e.Code()]; !seen {
			p.byCode[e.Code()] = i
		}
	}

	return p, nil
}

// Name returns the palette identifier.
func (p *Palette) Name() string {
	return p.name
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the entries in palette order.
func (p *Palette) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// Families returns family names in order of first appearance.
func (p *Palette) Families() []string {
	return lo.Uniq(lo.Map(p.entries, func(e Entry, _ int) string {
		return e.Family
	}))
}

// Family returns the entries of a single family in palette order.
func (p *Palette) Family(name string) []Entry {
	return lo.Filter(p.entries, func(e Entry, _ int) bool {
		return e.Family == name
	})
}

// Lookup finds an entry by its code, e.g. "red-500" or "white".
func (p *Palette) Lookup(code string) mo.Option[Entry] {
	i, ok := p.byCode[code]
	if !ok {
		return mo.None[Entry]()
	}
	return mo.Some(p.entries[i])
}

// Search returns entries whose code fuzzily matches query, best matches first.
// Ties keep palette order.
func (p *Palette) Search(query string) []Entry {
	codes := lo.Map(p.entries, func(e Entry, _ int) string {
		return e.Code()
	})

	ranks := fuzzy.RankFindFold(query, codes)
	sort.Stable(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) Entry {
		return p.entries[r.OriginalIndex]
	})
}
