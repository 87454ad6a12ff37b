package palette

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cotocowind/cotocowind/filesystem"
	"github.com/cotocowind/cotocowind/util"
	"github.com/samber/mo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Decode builds a palette from a JSON document that maps each family either to a
// hex string or to an object of shade → hex. Document order becomes palette order.
//
//	{
//	  "black": "#000000",
//	  "red": {"50": "#fef2f2", "DEFAULT": "#ef4444"}
//	}
func Decode(name string, data []byte) (*Palette, error) {
	families := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, families); err != nil {
		return nil, fmt.Errorf("palette %s: %w", name, err)
	}

	var entries []Entry
	for pair := families.Oldest(); pair != nil; pair = pair.Next() {
		decoded, err := decodeFamily(pair.Key, pair.Value)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		entries = append(entries, decoded...)
	}

	p, err := New(name, entries)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", name, err)
	}
	return p, nil
}

func decodeFamily(family string, raw json.RawMessage) ([]Entry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: empty value", family)
	}

	switch raw[0] {
	case '"':
		var hex string
		if err := json.Unmarshal(raw, &hex); err != nil {
			return nil, fmt.Errorf("%s: %w", family, err)
		}

		e, err := NewEntry(family, mo.None[string](), hex)
		if err != nil {
			return nil, err
		}
		return []Entry{e}, nil
	case '{':
		shades := orderedmap.New[string, string]()
		if err := json.Unmarshal(raw, shades); err != nil {
			return nil, fmt.Errorf("%s: %w", family, err)
		}

		entries := make([]Entry, 0, shades.Len())
		for pair := shades.Oldest(); pair != nil; pair = pair.Next() {
			e, err := NewEntry(family, mo.Some(pair.Key), pair.Value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%s: expected a hex string or an object of shades", family)
	}
}

// Load reads and decodes a palette file through the filesystem backend.
// The palette is named after the file stem.
func Load(path string) (*Palette, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(util.FileStem(path), data)
}
