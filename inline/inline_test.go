package inline

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cotocowind/cotocowind/match"
	"github.com/cotocowind/cotocowind/notation"
	"github.com/cotocowind/cotocowind/palette"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRun(t *testing.T) {
	Convey("Given the Tailwind finder", t, func() {
		var buf bytes.Buffer
		finder := match.Finder{Palette: palette.Tailwind()}

		Convey("Text mode prints one line per input", func() {
			err := Run(&Options{
				Out:    &buf,
				Finder: finder,
				Inputs: []string{"#ef4444", "rgb(255, 255, 255)"},
			})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual, "red-500 #ef4444\nwhite #ffffff\n")
		})

		Convey("Lines from the reader follow arguments", func() {
			err := Run(&Options{
				Out:    &buf,
				Finder: finder,
				Inputs: []string{"#000"},
				In:     mo.Some[io.Reader](strings.NewReader("\n  hsl(0, 0%, 100%)  \n\n")),
				Format: mo.Some(lo.Must(ParseFormat("code", ""))),
			})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual, "black\nwhite\n")
		})

		Convey("Text mode stops at the first error", func() {
			err := Run(&Options{Out: &buf, Finder: finder, Inputs: []string{"#fff", "#12", "#000"}})
			So(errors.Is(err, notation.ErrInvalidHex), ShouldBeTrue)
			So(buf.String(), ShouldEqual, "white #ffffff\n")
		})

		Convey("JSON mode reports errors per item", func() {
			var seen []string
			err := Run(&Options{
				Out:     &buf,
				Finder:  finder,
				Json:    true,
				Inputs:  []string{"#fff", "nope"},
				OnMatch: mo.Some[Hook](func(input string, _ *match.Result) { seen = append(seen, input) }),
			})
			So(err, ShouldBeNil)
			So(seen, ShouldResemble, []string{"#fff"})

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Palette, ShouldEqual, palette.TailwindName)
			So(output.Results, ShouldHaveLength, 2)
			So(output.Results[0].Match.Code, ShouldEqual, "white")
			So(output.Results[0].Error, ShouldBeEmpty)
			So(output.Results[1].Match, ShouldBeNil)
			So(output.Results[1].Kind, ShouldEqual, "UnrecognizedNotation")
		})

		Convey("JSON mode with no inputs yields an empty list", func() {
			So(Run(&Options{Out: &buf, Finder: finder, Json: true}), ShouldBeNil)
			So(buf.String(), ShouldEqual, `{"palette":"tailwind","results":[]}`)
		})
	})
}

func TestParseFormat(t *testing.T) {
	Convey("ParseFormat", t, func() {
		res := &match.Result{Code: "red-500", Hex: "#ef4444", Distance: 12.3456}

		So(lo.Must(ParseFormat("code", ""))(res), ShouldEqual, "red-500")
		So(lo.Must(ParseFormat("hex", ""))(res), ShouldEqual, "#ef4444")
		So(lo.Must(ParseFormat("line", ""))(res), ShouldEqual, "red-500 #ef4444 12.35")
		So(lo.Must(ParseFormat("class", "bg"))(res), ShouldEqual, "bg-red-500")

		_, err := ParseFormat("class", "")
		So(err, ShouldNotBeNil)
		_, err = ParseFormat("yaml", "")
		So(err, ShouldNotBeNil)
	})
}
