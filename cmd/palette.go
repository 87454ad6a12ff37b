package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cotocowind/cotocowind/color"
	"github.com/cotocowind/cotocowind/icon"
	"github.com/cotocowind/cotocowind/key"
	"github.com/cotocowind/cotocowind/palette"
	"github.com/cotocowind/cotocowind/style"
	"github.com/cotocowind/cotocowind/util"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/muesli/reflow/padding"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
}

// paletteCmd groups palette inspection commands.
var paletteCmd = &cobra.Command{
	Use:     "palette",
	Short:   "Inspect built-in and custom palettes",
	Aliases: []string{"palettes"},
}

func init() {
	paletteCmd.AddCommand(paletteListCmd)

	paletteListCmd.Flags().BoolP("raw", "r", false, "Suppress headers in the output")
	paletteListCmd.Flags().BoolP("custom", "c", false, "Display only custom palettes")
	paletteListCmd.Flags().BoolP("builtin", "b", false, "Display only built-in palettes")
	paletteListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
}

// paletteListCmd displays every available palette.
var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all available palettes",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := func(s string) string { return style.Fg(color.HiBlue)(style.Underline(s)) }

		printGroup := func(title string, palettes []*palette.Palette) {
			if printHeader {
				cmd.Println(headerStyle(title))
			}
			for _, p := range palettes {
				if printHeader {
					cmd.Printf("%s %s\n", p.Name(), style.Faint(util.Quantify(p.Len(), "color", "colors")))
				} else {
					cmd.Println(p.Name())
				}
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printGroup("Builtin:", palette.Builtins())
		case lo.Must(cmd.Flags().GetBool("custom")):
			printGroup("Custom:", palette.Customs())
		default:
			printGroup("Builtin:", palette.Builtins())
			if printHeader {
				cmd.Println()
			}
			printGroup("Custom:", palette.Customs())
		}
	},
}

func init() {
	paletteCmd.AddCommand(paletteShowCmd)

	paletteShowCmd.Flags().StringP("family", "f", "", "Show a single family")
	paletteShowCmd.Flags().StringP("filter", "F", "", "Fuzzy filter entries by code")
	paletteShowCmd.Flags().BoolP("json", "j", false, "Print entries as JSON")
	paletteShowCmd.MarkFlagsMutuallyExclusive("family", "filter")
}

// paletteShowCmd renders the entries of a palette.
var paletteShowCmd = &cobra.Command{
	Use:               "show [name]",
	Short:             "Render the swatches of a palette",
	Long:              "Render the swatches of a palette. Without a name the configured palette is shown.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionPalettes,
	Run: func(cmd *cobra.Command, args []string) {
		name := viper.GetString(key.PaletteDefault)
		if len(args) == 1 {
			name = args[0]
		}

		p, err := palette.Get(name)
		handleErr(err)

		entries := p.Entries()
		if family := lo.Must(cmd.Flags().GetString("family")); family != "" {
			entries = p.Family(family)
			if len(entries) == 0 {
				closest := lo.MinBy(p.Families(), func(a, b string) bool {
					return levenshtein.Distance(family, a) < levenshtein.Distance(family, b)
				})
				handleErr(fmt.Errorf("unknown family %s, did you mean %s?", style.Fg(color.Red)(family), style.Fg(color.Yellow)(closest)))
			}
		}
		if filter := lo.Must(cmd.Flags().GetString("filter")); filter != "" {
			entries = p.Search(filter)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		cmd.Printf("%s %s\n\n", icon.Get(icon.Palette), style.Title(p.Name()))
		cmd.Print(renderSwatches(entries))
	},
}

// renderSwatches lays entries out one family per block, wrapping to the terminal width.
func renderSwatches(entries []palette.Entry) string {
	width := 80
	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		width = w
	}

	var (
		b        strings.Builder
		families = lo.Uniq(lo.Map(entries, func(e palette.Entry, _ int) string { return e.Family }))
		grouped  = lo.GroupBy(entries, func(e palette.Entry) string { return e.Family })
		nameCol  = uint(util.Max(lo.Map(families, func(f string, _ int) int { return len(f) })...) + 2)
	)

	for _, family := range families {
		cells := lo.Map(grouped[family], func(e palette.Entry, _ int) string {
			return style.Swatch(e.Color(), e.Code()+" "+e.Hex)
		})

		var row []string
		rowWidth := int(nameCol)
		first := true
		flush := func() {
			prefix := strings.Repeat(" ", int(nameCol))
			if first {
				prefix = padding.String(family, nameCol)
				first = false
			}
			b.WriteString(prefix + lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
			row, rowWidth = nil, int(nameCol)
		}

		for _, cell := range cells {
			w := lipgloss.Width(cell) + 1
			if len(row) > 0 && rowWidth+w > width {
				flush()
			}
			row = append(row, cell+" ")
			rowWidth += w
		}
		if len(row) > 0 {
			flush()
		}
	}

	return b.String()
}
