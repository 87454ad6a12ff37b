package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cotocowind/cotocowind/color"
	"github.com/cotocowind/cotocowind/colorspace"
	"github.com/cotocowind/cotocowind/icon"
	"github.com/cotocowind/cotocowind/key"
	"github.com/cotocowind/cotocowind/match"
	"github.com/cotocowind/cotocowind/palette"
	"github.com/cotocowind/cotocowind/style"
	"github.com/spf13/viper"
)

func formatHSL(c colorspace.Color) string {
	h, s, l := c.HSL()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s, l)
}

func renderResult(p *palette.Palette, r *match.Result) string {
	label := style.Fg(color.Blue)
	rows := []string{
		fmt.Sprintf("%s %s %s", icon.Get(icon.Match), style.Bold(r.Code), style.Faint("("+p.Name()+")")),
		fmt.Sprintf("%s    %s", label("Hex:"), style.Fg(color.Yellow)(r.Hex)),
		fmt.Sprintf("%s  %s  %s  %s", label("Input:"), r.Input.Hex(), r.Input, formatHSL(r.Input)),
		fmt.Sprintf("%s %.2f", label("Offset:"), r.Distance),
	}

	if viper.GetBool(key.PaletteShowSwatch) {
		target := colorspace.MustParseHex(r.Hex)
		swatches := lipgloss.JoinHorizontal(lipgloss.Top,
			style.Swatch(r.Input, "input"),
			" ",
			style.Swatch(target, r.Code),
		)
		rows = append(rows, "", swatches)
	}

	return style.Card(strings.Join(rows, "\n"))
}
