package history

import (
	"testing"

	"github.com/cotocowind/cotocowind/filesystem"
	"github.com/cotocowind/cotocowind/key"
	"github.com/cotocowind/cotocowind/match"
	"github.com/cotocowind/cotocowind/palette"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func remember(input string) {
	res := lo.Must(match.Find(palette.Tailwind(), input))
	So(Remember(input, palette.TailwindName, res), ShouldBeNil)
}

func TestHistory(t *testing.T) {
	Convey("Given an empty history", t, func() {
		So(cacher().Set(make(map[string]*Record)), ShouldBeNil)
		viper.Set(key.HistorySuggest, true)

		Convey("Get returns an empty map", func() {
			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved, ShouldBeEmpty)
		})

		Convey("When remembering lookups", func() {
			remember("#ff0000")
			remember("#FF0000 ")
			remember("rgb(255, 255, 255)")

			Convey("Repeated inputs are merged case-insensitively", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldHaveLength, 2)
				So(saved["#ff0000"].Count, ShouldEqual, 2)
				So(saved["#ff0000"].Code, ShouldEqual, "red-600")
				So(saved["#ff0000"].Palette, ShouldEqual, palette.TailwindName)
			})

			Convey("List puts the latest lookup first", func() {
				records, err := List()
				So(err, ShouldBeNil)
				So(records[0].Input, ShouldEqual, "rgb(255, 255, 255)")
			})

			Convey("Suggest ranks by use count", func() {
				So(Suggest(""), ShouldResemble, []string{"#ff0000", "rgb(255, 255, 255)"})
				So(Suggest("rgb"), ShouldResemble, []string{"rgb(255, 255, 255)"})
			})

			Convey("Suggest can be disabled", func() {
				viper.Set(key.HistorySuggest, false)
				So(Suggest(""), ShouldBeEmpty)
			})
		})
	})
}
