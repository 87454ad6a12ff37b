package where

import (
	"path/filepath"
	"testing"

	"github.com/cotocowind/cotocowind/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Palettes()", func() {
			path := Palettes()
			So(filepath.Dir(path), ShouldEqual, Config())
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("History()", func() {
			So(filepath.Base(History()), ShouldEqual, "history.json")
		})

		Convey("Config() honors the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/config")
			So(Config(), ShouldEqual, "/custom/config")
			So(lo.Must(filesystem.API().IsDir("/custom/config")), ShouldBeTrue)
		})
	})
}
