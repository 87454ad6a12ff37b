package inline

import (
	"encoding/json"
	"errors"

	"github.com/cotocowind/cotocowind/match"
	"github.com/cotocowind/cotocowind/notation"
)

// Item is the outcome for one input. Exactly one of Match and Error is set.
type Item struct {
	Input string        `json:"input"`
	Match *match.Result `json:"match,omitempty"`
	// Error is the parse error message.
	Error string `json:"error,omitempty"`
	// Kind is the parse error kind, e.g. InvalidHexFormat.
	Kind string `json:"kind,omitempty"`
}

type Output struct {
	Palette string  `json:"palette"`
	Results []*Item `json:"results"`
}

func newItem(input string, result *match.Result, err error) *Item {
	item := &Item{Input: input, Match: result}
	if err == nil {
		return item
	}

	item.Error = err.Error()
	var perr *notation.ParseError
	if errors.As(err, &perr) {
		item.Kind = perr.Kind.String()
	}
	return item
}

func asJson(paletteName string, items []*Item) ([]byte, error) {
	if items == nil {
		items = []*Item{}
	}

	return json.Marshal(&Output{
		Palette: paletteName,
		Results: items,
	})
}
