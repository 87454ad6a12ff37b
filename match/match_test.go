package match

import (
	"errors"
	"sync"
	"testing"

	"github.com/cotocowind/cotocowind/colorspace"
	"github.com/cotocowind/cotocowind/notation"
	"github.com/cotocowind/cotocowind/palette"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFind(t *testing.T) {
	Convey("Given the Tailwind palette", t, func() {
		p := palette.Tailwind()

		Convey("Pure red resolves by distance to a red shade", func() {
			res, err := Find(p, "#ff0000")
			So(err, ShouldBeNil)
			So(res.Code, ShouldEqual, "red-600")
			So(res.Hex, ShouldEqual, "#dc2626")
			So(res.Notation, ShouldEqual, notation.Hex)
		})

		Convey("White from rgb() and hsl() agree", func() {
			fromRGB, err := Find(p, "rgb(255, 255, 255)")
			So(err, ShouldBeNil)
			So(fromRGB.Code, ShouldEqual, "white")
			So(fromRGB.Hex, ShouldEqual, "#ffffff")
			So(fromRGB.Distance, ShouldEqual, 0)

			fromHSL, err := Find(p, "hsl(0, 0%, 100%)")
			So(err, ShouldBeNil)
			So(fromHSL.Code, ShouldEqual, fromRGB.Code)
			So(fromHSL.Hex, ShouldEqual, fromRGB.Hex)
			So(fromHSL.Input, ShouldResemble, fromRGB.Input)
		})

		Convey("Input is trimmed", func() {
			res, err := Find(p, "  #EF4444\n")
			So(err, ShouldBeNil)
			So(res.Code, ShouldEqual, "red-500")
			So(res.Distance, ShouldEqual, 0)
		})

		Convey("Parse errors keep their kind and produce no result", func() {
			cases := map[string]error{
				"not-a-color":  notation.ErrUnrecognized,
				"#12":          notation.ErrInvalidHex,
				"rgb(1,2)":     notation.ErrInvalidRgb,
				"hsl(1,2,3,4)": notation.ErrInvalidHsl,
			}
			for in, want := range cases {
				res, err := Find(p, in)
				So(res, ShouldBeNil)
				So(errors.Is(err, want), ShouldBeTrue)
			}
		})

		Convey("Strict parsing is opt-in", func() {
			_, err := Finder{Palette: p, Parser: notation.Parser{StrictRange: true}}.Find("rgb(300, 0, 0)")
			So(errors.Is(err, notation.ErrInvalidRgb), ShouldBeTrue)

			res, err := Find(p, "rgb(300, 0, 0)")
			So(err, ShouldBeNil)
			So(res.Input, ShouldResemble, colorspace.RGB(255, 0, 0))
		})

		Convey("Concurrent lookups agree", func() {
			var wg sync.WaitGroup
			codes := make([]string, 32)
			for i := range codes {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					res, err := Find(p, "#3b82f6")
					if err == nil {
						codes[i] = res.Code
					}
				}(i)
			}
			wg.Wait()
			So(lo.Uniq(codes), ShouldResemble, []string{"blue-500"})
		})
	})

	Convey("Given a palette without an exact red", t, func() {
		p := lo.Must(palette.New("warm", []palette.Entry{
			lo.Must(palette.NewEntry("orange", mo.Some("400"), "#fb923c")),
			lo.Must(palette.NewEntry("red", mo.Some("500"), "#ef4444")),
		}))

		Convey("The nearest entry wins regardless of order", func() {
			res, err := Find(p, "#ff0000")
			So(err, ShouldBeNil)
			So(res.Code, ShouldEqual, "red-500")
		})
	})
}

func TestFindWithoutPalette(t *testing.T) {
	Convey("A Finder without entries", t, func() {
		for _, f := range []Finder{{}, {Palette: &palette.Palette{}}} {
			r, err := f.Find("#ffffff")
			So(r, ShouldBeNil)
			So(errors.Is(err, palette.ErrEmptyPalette), ShouldBeTrue)
		}
	})
}
