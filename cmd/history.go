package cmd

import (
	"encoding/json"

	"github.com/cotocowind/cotocowind/color"
	"github.com/cotocowind/cotocowind/colorspace"
	"github.com/cotocowind/cotocowind/history"
	"github.com/cotocowind/cotocowind/icon"
	"github.com/cotocowind/cotocowind/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Print history as JSON")
	historyCmd.Flags().IntP("limit", "n", 0, "Show at most n records, 0 for all")
}

// historyCmd lists remembered lookups, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display previously matched colors",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.List()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(records) {
			records = records[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Printf("%s history is empty\n", icon.Get(icon.History))
			return
		}

		for _, r := range records {
			swatch := r.Code
			if c, err := colorspace.ParseHex(r.Hex); err == nil {
				swatch = style.Swatch(c, r.Code)
			}

			cmd.Printf(
				"%s %s %s %s\n",
				style.Fg(color.HiYellow)(r.Input),
				swatch,
				style.Italic(r.Palette),
				style.Faint(r.LastUsed.Format("2006-01-02 15:04")),
			)
		}
	},
}
