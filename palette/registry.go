package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cotocowind/cotocowind/filesystem"
	"github.com/cotocowind/cotocowind/log"
	"github.com/cotocowind/cotocowind/util"
	"github.com/cotocowind/cotocowind/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrUnknownPalette is returned by Get when no palette has the requested name.
var ErrUnknownPalette = errors.New("unknown palette")

const customExt = ".json"

// Builtins returns the palettes compiled into the binary.
func Builtins() []*Palette {
	return []*Palette{Tailwind()}
}

// Customs returns every palette file in the user palettes directory.
// Files that fail to decode are logged and skipped.
func Customs() []*Palette {
	dir := where.Palettes()
	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		log.Warnf("read palettes directory: %v", err)
		return nil
	}

	var palettes []*Palette
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != customExt {
			continue
		}

		p, err := Load(filepath.Join(dir, f.Name()))
		if err != nil {
			log.Warnf("skipping palette %s: %v", f.Name(), err)
			continue
		}
		palettes = append(palettes, p)
	}

	return palettes
}

// Names lists builtin palette names followed by custom ones.
func Names() []string {
	builtins := lo.Map(Builtins(), func(p *Palette, _ int) string { return p.Name() })

	files, _ := filesystem.API().ReadDir(where.Palettes())
	customs := lo.FilterMap(files, func(f os.FileInfo, _ int) (string, bool) {
		if f.IsDir() || filepath.Ext(f.Name()) != customExt {
			return "", false
		}
		return util.FileStem(f.Name()), true
	})

	return lo.Uniq(append(builtins, customs...))
}

// Get resolves a palette by name. Builtins take precedence over custom files.
func Get(name string) (*Palette, error) {
	for _, p := range Builtins() {
		if p.Name() == name {
			return p, nil
		}
	}

	path := filepath.Join(where.Palettes(), name+customExt)
	if exists, _ := filesystem.API().Exists(path); exists {
		return Load(path)
	}

	if suggestion, ok := Suggest(name).Get(); ok {
		return nil, fmt.Errorf("%w %s, did you mean %s?", ErrUnknownPalette, name, suggestion)
	}
	return nil, fmt.Errorf("%w %s", ErrUnknownPalette, name)
}

// Suggest returns the known palette name closest to name by edit distance.
func Suggest(name string) mo.Option[string] {
	names := Names()
	if len(names) == 0 {
		return mo.None[string]()
	}

	return mo.Some(lo.MinBy(names, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	}))
}
