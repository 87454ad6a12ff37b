// Package cmd implements the command-line interface for cotocowind.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cotocowind/cotocowind/color"
	"github.com/cotocowind/cotocowind/constant"
	"github.com/cotocowind/cotocowind/history"
	"github.com/cotocowind/cotocowind/icon"
	"github.com/cotocowind/cotocowind/key"
	"github.com/cotocowind/cotocowind/log"
	"github.com/cotocowind/cotocowind/match"
	"github.com/cotocowind/cotocowind/notation"
	"github.com/cotocowind/cotocowind/palette"
	"github.com/cotocowind/cotocowind/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("json", "j", false, "Print matches as JSON")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("palette", "p", "", "Palette to match against")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("palette", completionPalettes))
	lo.Must0(viper.BindPFlag(key.PaletteDefault, rootCmd.PersistentFlags().Lookup("palette")))

	rootCmd.PersistentFlags().Bool("strict", false, "Reject out-of-range rgb() and hsl() values instead of clamping them")
	lo.Must0(viper.BindPFlag(key.ParseStrictRange, rootCmd.PersistentFlags().Lookup("strict")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember successful lookups")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.SetOut(os.Stdout)
}

// rootCmd matches each argument against the configured palette.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [color...]",
	Args:  cobra.ArbitraryArgs,
	Short: "Find the closest palette color for any hex, rgb() or hsl() value",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Find the closest Tailwind color for any hex, rgb() or hsl() value"),
	Example: strings.Join([]string{
		"  " + constant.App + " '#ff0000'",
		"  " + constant.App + " 'rgb(34, 197, 94)' 'hsl(217, 91%, 60%)'",
		"  " + constant.App + " --palette brand --json '#123'",
	}, "\n"),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return history.Suggest(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		finder := newFinder()

		if len(args) == 0 {
			args = []string{promptColor(finder.Parser)}
		}

		results := make([]*match.Result, 0, len(args))
		for _, arg := range args {
			result, err := finder.Find(arg)
			handleErr(err)
			rememberLookup(arg, result)
			results = append(results, result)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(results))
			return
		}

		for _, result := range results {
			cmd.Println(renderResult(finder.Palette, result))
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.HiRed)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

func newFinder() match.Finder {
	p, err := palette.Get(viper.GetString(key.PaletteDefault))
	handleErr(err)

	return match.Finder{
		Palette: p,
		Parser:  notation.Parser{StrictRange: viper.GetBool(key.ParseStrictRange)},
	}
}

func rememberLookup(input string, result *match.Result) {
	if !viper.GetBool(key.HistorySave) {
		return
	}

	if err := history.Remember(input, viper.GetString(key.PaletteDefault), result); err != nil {
		log.Warnf("remember %q: %v", input, err)
	}
}

func promptColor(parser notation.Parser) string {
	var response string
	prompt := &survey.Input{
		Message: "Color (hex, rgb or hsl):",
		Suggest: history.Suggest,
	}

	handleErr(survey.AskOne(prompt, &response, survey.WithValidator(func(ans interface{}) error {
		_, err := parser.Parse(strings.TrimSpace(fmt.Sprint(ans)))
		return err
	})))

	return response
}

func completionPalettes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return palette.Names(), cobra.ShellCompDirectiveNoFileComp
}
