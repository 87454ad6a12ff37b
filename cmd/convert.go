package cmd

import (
	"fmt"
	"strings"

	"github.com/cotocowind/cotocowind/color"
	"github.com/cotocowind/cotocowind/colorspace"
	"github.com/cotocowind/cotocowind/key"
	"github.com/cotocowind/cotocowind/notation"
	"github.com/cotocowind/cotocowind/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var conversions = map[string]func(colorspace.Color) string{
	"hex": colorspace.Color.Hex,
	"rgb": colorspace.Color.String,
	"hsl": formatHSL,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("to", "t", "", "Print only the given notation (hex, rgb or hsl)")
	lo.Must0(convertCmd.RegisterFlagCompletionFunc("to", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Keys(conversions), cobra.ShellCompDirectiveNoFileComp
	}))
}

// convertCmd prints a color in every supported notation.
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Print a color as hex, rgb() and hsl()",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := notation.Parser{StrictRange: viper.GetBool(key.ParseStrictRange)}
		c, err := parser.Parse(strings.TrimSpace(args[0]))
		handleErr(err)

		if to := lo.Must(cmd.Flags().GetString("to")); to != "" {
			convert, ok := conversions[to]
			if !ok {
				handleErr(fmt.Errorf("unknown notation %s, expected hex, rgb or hsl", to))
			}
			cmd.Println(convert(c))
			return
		}

		label := style.Fg(color.Blue)
		for _, n := range []string{"hex", "rgb", "hsl"} {
			cmd.Printf("%s %s\n", label(n+":"), conversions[n](c))
		}
	},
}
