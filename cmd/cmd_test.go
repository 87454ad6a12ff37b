package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cotocowind/cotocowind/config"
	"github.com/cotocowind/cotocowind/filesystem"
	"github.com/cotocowind/cotocowind/inline"
	"github.com/cotocowind/cotocowind/key"
	"github.com/cotocowind/cotocowind/match"
	"github.com/cotocowind/cotocowind/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

// resetFlags restores every flag in the tree, since cobra keeps parsed values between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if s, ok := f.Value.(pflag.SliceValue); ok {
			lo.Must0(s.Replace([]string{}))
		} else {
			lo.Must0(f.Value.Set(f.DefValue))
		}
		f.Changed = false
	}

	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(args ...string) string {
	var out bytes.Buffer

	resetFlags(rootCmd)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	So(rootCmd.Execute(), ShouldBeNil)
	return out.String()
}

func setup(t *testing.T) {
	t.Setenv(where.EnvConfigPath, "/config")
	lo.Must0(config.Setup())
	viper.Set(key.HistorySave, false)
}

func TestFlagShorthands(t *testing.T) {
	Convey("Every command should merge its inherited flags without clashes", t, func() {
		var walk func(c *cobra.Command)
		walk = func(c *cobra.Command) {
			So(func() {
				c.InheritedFlags()
				c.LocalFlags()
			}, ShouldNotPanic)

			for _, sub := range c.Commands() {
				walk(sub)
			}
		}

		walk(rootCmd)
	})
}

func TestRoot(t *testing.T) {
	setup(t)

	Convey("Given the root command", t, func() {
		Convey("A hex argument renders the closest Tailwind color", func() {
			out := execute("#ff0000")
			So(out, ShouldContainSubstring, "red-600")
			So(out, ShouldContainSubstring, "#dc2626")
		})

		Convey("--json encodes one result per argument", func() {
			var results []*match.Result
			So(json.Unmarshal([]byte(execute("--json", "rgb(255, 255, 255)", "#000")), &results), ShouldBeNil)
			So(results, ShouldHaveLength, 2)
			So(results[0].Code, ShouldEqual, "white")
			So(results[0].Distance, ShouldEqual, 0)
			So(results[1].Code, ShouldEqual, "black")
		})

		Convey("--palette selects a custom palette file", func() {
			So(filesystem.API().WriteFile(where.Palettes()+"/brand.json", []byte(`{"ink": "#101010"}`), 0o644), ShouldBeNil)

			out := execute("--palette", "brand", "#000")
			So(out, ShouldContainSubstring, "ink")
		})
	})
}

func TestInlineCommand(t *testing.T) {
	setup(t)

	Convey("Given the inline command", t, func() {
		Convey("--json reports matches and errors per input", func() {
			var output inline.Output
			So(json.Unmarshal([]byte(execute("inline", "--json", "#000", "#12")), &output), ShouldBeNil)
			So(output.Palette, ShouldEqual, "tailwind")
			So(output.Results, ShouldHaveLength, 2)
			So(output.Results[0].Match.Code, ShouldEqual, "black")
			So(output.Results[1].Kind, ShouldEqual, "InvalidHexFormat")
		})

		Convey("--format prints one formatted line per input", func() {
			out := execute("inline", "--format", "class:bg", "#ef4444", "hsl(0, 0%, 100%)")
			So(out, ShouldEqual, "bg-red-500\nbg-white\n")
		})
	})
}

func TestWhereCommand(t *testing.T) {
	setup(t)

	Convey("where --palettes prints the palettes directory", t, func() {
		So(strings.TrimSpace(execute("where", "--palettes")), ShouldEqual, where.Palettes())
	})
}

func TestPaletteCommand(t *testing.T) {
	setup(t)

	Convey("Given the palette command", t, func() {
		Convey("show --family renders only that family", func() {
			out := execute("palette", "show", "--family", "red")
			So(out, ShouldContainSubstring, "red-500 #ef4444")
			So(out, ShouldContainSubstring, "red-950")
			So(out, ShouldNotContainSubstring, "blue-500")
		})

		Convey("show --json encodes entries", func() {
			var entries []map[string]string
			So(json.Unmarshal([]byte(execute("palette", "show", "--filter", "rose-950", "--json")), &entries), ShouldBeNil)
			So(entries, ShouldNotBeEmpty)
			So(entries[0]["code"], ShouldEqual, "rose-950")
		})

		Convey("list names the built-in palette", func() {
			So(execute("palette", "list", "--raw", "--builtin"), ShouldEqual, "tailwind\n")
		})
	})
}
