package style

import (
	"testing"

	"github.com/cotocowind/cotocowind/colorspace"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSwatch(t *testing.T) {
	Convey("Swatch should keep its label", t, func() {
		So(Swatch(colorspace.RGB(239, 68, 68), "red-500"), ShouldContainSubstring, "red-500")
	})
}

func TestCard(t *testing.T) {
	Convey("Card should wrap content in a border", t, func() {
		out := Card("white")
		So(out, ShouldContainSubstring, "white")
		So(out, ShouldContainSubstring, "╭")
	})
}

func TestTextHelpers(t *testing.T) {
	Convey("Text helpers should keep their input", t, func() {
		for _, render := range []func(string) string{Faint, Bold, Italic, Underline} {
			So(render("tailwind"), ShouldContainSubstring, "tailwind")
		}
	})
}
