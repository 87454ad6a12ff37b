// Package inline implements the non-interactive, scriptable matching mode.
package inline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cotocowind/cotocowind/log"
	"github.com/cotocowind/cotocowind/match"
)

// Run matches every input from options.Inputs and then options.In, one per line.
// In text mode the first parse error aborts the run; in JSON mode errors are
// reported per item.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	inputs, err := collectInputs(options)
	if err != nil {
		return err
	}

	format := options.Format.OrElse(defaultFormat)
	items := make([]*Item, 0, len(inputs))

	for _, input := range inputs {
		result, err := options.Finder.Find(input)
		if err != nil {
			log.WithField("input", input).Warn(err)
			if !options.Json {
				return err
			}
		} else if hook, ok := options.OnMatch.Get(); ok {
			hook(input, result)
		}

		if options.Json {
			items = append(items, newItem(strings.TrimSpace(input), result, err))
			continue
		}

		if _, err := fmt.Fprintln(options.Out, format(result)); err != nil {
			return err
		}
	}

	if options.Json {
		return writeJson(options.Out, options.Finder.Palette.Name(), items)
	}

	return nil
}

func collectInputs(options *Options) ([]string, error) {
	inputs := append([]string(nil), options.Inputs...)

	reader, ok := options.In.Get()
	if !ok {
		return inputs, nil
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}

	return inputs, scanner.Err()
}

var defaultFormat = Formatter(func(r *match.Result) string {
	return r.Code + " " + r.Hex
})

func writeJson(out io.Writer, paletteName string, items []*Item) error {
	data, err := asJson(paletteName, items)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
