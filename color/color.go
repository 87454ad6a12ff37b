// Package color provides the terminal colors used to decorate CLI output.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cotocowind/cotocowind/colorspace"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Of converts a parsed color into a true-color lipgloss color.
func Of(c colorspace.Color) lipgloss.Color {
	return New(c.Hex())
}

// Contrast picks black or white text, whichever reads better on top of c.
func Contrast(c colorspace.Color) lipgloss.Color {
	r, g, b := c.RGB()
	// ITU-R BT.601 luma
	if 299*int(r)+587*int(g)+114*int(b) >= 128_000 {
		return New("#000000")
	}
	return New("#ffffff")
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// High-intensity ANSI 16-color palette extension.
var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
)
