package config

import (
	"testing"

	"github.com/cotocowind/cotocowind/filesystem"
	"github.com/cotocowind/cotocowind/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.PaletteDefault), ShouldEqual, "tailwind")
			So(viper.GetBool(key.ParseStrictRange), ShouldBeFalse)
		})

		Convey("Every defined key should be registered", func() {
			So(Default, ShouldHaveLength, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("parse.strict_range"), ShouldEqual, "parse_strict_range")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the strict range field", t, func() {
		field := Default[key.ParseStrictRange]

		Convey("Env should be prefixed with the app name", func() {
			So(field.Env(), ShouldEqual, "COTOCOWIND_PARSE_STRICT_RANGE")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ParseStrictRange)
		})

		Convey("MarshalJSON should report the type", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"bool"`)
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Given a setup without a config file", t, func() {
		filesystem.SetMemMapFs()
		So(Setup(), ShouldBeNil)

		Convey("Write should create the file with current values", func() {
			viper.Set(key.PaletteDefault, "brand")
			So(Write(), ShouldBeNil)

			data, err := filesystem.API().ReadFile(Path())
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "brand")

			viper.Set(key.PaletteDefault, "tailwind")
		})
	})
}
