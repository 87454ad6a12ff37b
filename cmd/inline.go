package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cotocowind/cotocowind/filesystem"
	"github.com/cotocowind/cotocowind/inline"
	"github.com/cotocowind/cotocowind/palette"
	"github.com/cotocowind/cotocowind/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("input", "i", "", "Read colors from a file, one per line. Use - for stdin")
	inlineCmd.Flags().StringP("format", "f", "", "Output format for text mode: code, hex, line or class:<prefix>")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"code", "hex", "line", "class:bg", "class:text"}, cobra.ShellCompDirectiveNoFileComp
	}))
	inlineCmd.MarkFlagsMutuallyExclusive("json", "format")
}

// inlineCmd matches colors without any decoration so it can be used in scripts.
var inlineCmd = &cobra.Command{
	Use:   "inline [color...]",
	Short: "Match colors in non-interactive, scriptable inline mode",
	Long: `Match colors without prompts or decoration so the output can be piped.

Colors are taken from the arguments first, then from --input one per line.
Blank lines are skipped.

Formats (default prints code and hex):
  code - palette code, e.g. red-500
  hex - palette hex, e.g. #ef4444
  line - code, hex and distance separated by spaces
  class:<prefix> - code with a prefix, e.g. class:bg gives bg-red-500

In text mode the first invalid color stops the run with a non-zero exit code.
With --json every input is reported and invalid ones carry an error.`,
	Example: strings.Join([]string{
		"  cat colors.txt | cotocowind inline -i - --format class:bg",
		"  cotocowind inline --json '#ff0000' 'rgb(0, 0, 0)'",
	}, "\n"),
	Run: func(cmd *cobra.Command, args []string) {
		var writer io.Writer = cmd.OutOrStdout()

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		}

		reader := mo.None[io.Reader]()
		switch input := lo.Must(cmd.Flags().GetString("input")); input {
		case "":
		case "-":
			reader = mo.Some[io.Reader](os.Stdin)
		default:
			file, err := filesystem.API().Open(input)
			handleErr(err)
			defer util.Ignore(file.Close)
			reader = mo.Some[io.Reader](file)
		}

		format := mo.None[inline.Formatter]()
		if flag := lo.Must(cmd.Flags().GetString("format")); flag != "" {
			kind, value, _ := strings.Cut(flag, ":")
			fn, err := inline.ParseFormat(kind, value)
			handleErr(err)
			format = mo.Some(fn)
		}

		options := &inline.Options{
			Out:     writer,
			In:      reader,
			Inputs:  args,
			Finder:  newFinder(),
			Json:    lo.Must(cmd.Flags().GetBool("json")),
			Format:  format,
			OnMatch: mo.Some[inline.Hook](rememberLookup),
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("entries", "e", false, "Generate the JSON Schema for palette entries instead")
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "result", "item", "output", "entry":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("entries")):
			schema = reflector.Reflect([]palette.EntryJSON{})
		default:
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
