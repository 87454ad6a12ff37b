package palette

import (
	"encoding/json"
	"fmt"

	"github.com/cotocowind/cotocowind/colorspace"
	"github.com/samber/mo"
)

// DefaultShade marks the swatch that is addressed by the bare family name.
const DefaultShade = "DEFAULT"

// Entry is a single reference swatch.
type Entry struct {
	Family string
	Shade  mo.Option[string]
	// Hex is the canonical value reported to callers, exactly as written in the dataset.
	Hex string

	color colorspace.Color
}

// NewEntry decodes hex once so that matching never has to.
func NewEntry(family string, shade mo.Option[string], hex string) (Entry, error) {
	c, err := colorspace.ParseHex(hex)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", entryCode(family, shade), err)
	}

	return Entry{Family: family, Shade: shade, Hex: hex, color: c}, nil
}

// Color returns the decoded value of Hex.
func (e Entry) Color() colorspace.Color {
	return e.color
}

// Code is the identifier exposed to users: "family" or "family-shade".
func (e Entry) Code() string {
	return entryCode(e.Family, e.Shade)
}

func entryCode(family string, shade mo.Option[string]) string {
	s, ok := shade.Get()
	if !ok || s == DefaultShade {
		return family
	}
	return family + "-" + s
}

func (e Entry) String() string {
	return e.Code()
}

// EntryJSON is the encoded form of an Entry.
type EntryJSON struct {
	Code   string `json:"code"`
	Family string `json:"family"`
	// Shade is empty for entries addressed by the family name alone.
	Shade string `json:"shade,omitempty"`
	Hex   string `json:"hex"`
}

// MarshalJSON encodes the entry with its derived code.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(EntryJSON{
		Code:   e.Code(),
		Family: e.Family,
		Shade:  e.Shade.OrEmpty(),
		Hex:    e.Hex,
	})
}
