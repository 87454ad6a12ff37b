// Package history persists successful lookups and suggests them back for completion.
package history

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cotocowind/cotocowind/filesystem"
	"github.com/cotocowind/cotocowind/key"
	"github.com/cotocowind/cotocowind/match"
	"github.com/cotocowind/cotocowind/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Record is one remembered lookup.
type Record struct {
	Input    string    `json:"input"`
	Palette  string    `json:"palette"`
	Code     string    `json:"code"`
	Hex      string    `json:"hex"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}

var cacher = sync.OnceValue(func() *gache.Cache[map[string]*Record] {
	return gache.New[map[string]*Record](
		&gache.Options{
			Path:       where.History(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
})

// Get returns every stored record keyed by normalized input.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Remember stores a successful lookup, bumping its count if it was seen before.
func Remember(input, paletteName string, result *match.Result) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	k := normalize(input)
	record, ok := saved[k]
	if !ok {
		record = &Record{Input: strings.TrimSpace(input)}
		saved[k] = record
	}

	record.Palette = paletteName
	record.Code = result.Code
	record.Hex = result.Hex
	record.Count++
	record.LastUsed = time.Now()

	return cacher().Set(saved)
}

// List returns records, most recently used first.
func List() ([]*Record, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	sort.Slice(records, func(i, j int) bool {
		return records[i].LastUsed.After(records[j].LastUsed)
	})
	return records, nil
}

// Suggest returns previous inputs fuzzily matching partial, most used first.
func Suggest(partial string) []string {
	if !viper.GetBool(key.HistorySuggest) {
		return []string{}
	}

	saved, err := Get()
	if err != nil {
		return []string{}
	}

	partial = normalize(partial)
	records := lo.Filter(lo.Values(saved), func(r *Record, _ int) bool {
		return fuzzy.Match(partial, normalize(r.Input))
	})

	slices.SortFunc(records, func(a, b *Record) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Input, b.Input)
	})

	return lo.Map(records, func(r *Record, _ int) string {
		return r.Input
	})
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
