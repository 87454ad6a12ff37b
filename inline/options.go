package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cotocowind/cotocowind/match"
	"github.com/samber/mo"
)

type (
	// Formatter renders one match as a single line of text.
	Formatter func(*match.Result) string
	// Hook observes every successful match.
	Hook func(input string, result *match.Result)
)

type Options struct {
	Out     io.Writer
	In      mo.Option[io.Reader]
	Inputs  []string
	Finder  match.Finder
	Json    bool
	Format  mo.Option[Formatter]
	OnMatch mo.Option[Hook]
}

// ParseFormat builds a formatter.
//
//	code        red-500
//	hex         #ef4444
//	line        red-500 #ef4444 12.37
//	class:<p>   <p>-red-500, e.g. class:bg gives bg-red-500
func ParseFormat(kind, value string) (Formatter, error) {
	switch kind {
	case "code":
		return func(r *match.Result) string { return r.Code }, nil
	case "hex":
		return func(r *match.Result) string { return r.Hex }, nil
	case "line":
		return func(r *match.Result) string {
			return r.Code + " " + r.Hex + " " + strconv.FormatFloat(r.Distance, 'f', 2, 64)
		}, nil
	case "class":
		if value == "" {
			return nil, fmt.Errorf("class format needs a prefix, e.g. class:bg")
		}
		return func(r *match.Result) string { return value + "-" + r.Code }, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", kind)
	}
}
