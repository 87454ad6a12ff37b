package palette

import (
	"testing"

	"github.com/cotocowind/cotocowind/colorspace"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func entry(family, shade, hex string) Entry {
	s := mo.None[string]()
	if shade != "" {
		s = mo.Some(shade)
	}
	return lo.Must(NewEntry(family, s, hex))
}

func TestEntry(t *testing.T) {
	Convey("Entry codes", t, func() {
		So(entry("white", "", "#ffffff").Code(), ShouldEqual, "white")
		So(entry("red", "500", "#ef4444").Code(), ShouldEqual, "red-500")
		So(entry("brand", DefaultShade, "#123456").Code(), ShouldEqual, "brand")
	})

	Convey("Entry decodes its hex once", t, func() {
		So(entry("red", "500", "#EF4444").Color(), ShouldResemble, colorspace.RGB(239, 68, 68))
		So(entry("red", "500", "#EF4444").Hex, ShouldEqual, "#EF4444")
	})

	Convey("Entry rejects malformed hex", t, func() {
		_, err := NewEntry("red", mo.Some("500"), "#ef44")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "red-500")
	})

	Convey("Entry JSON includes the code", t, func() {
		data, err := entry("red", "500", "#ef4444").MarshalJSON()
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `{"code":"red-500","family":"red","shade":"500","hex":"#ef4444"}`)
	})
}

func TestNew(t *testing.T) {
	Convey("New rejects empty palettes", t, func() {
		_, err := New("empty", nil)
		So(err, ShouldEqual, ErrEmptyPalette)
	})

	Convey("New copies its input", t, func() {
		entries := []Entry{entry("black", "", "#000000")}
		p := lo.Must(New("mono", entries))
		entries[0] = entry("white", "", "#ffffff")
		So(p.Entries()[0].Code(), ShouldEqual, "black")

		Convey("and Entries hands out copies", func() {
			p.Entries()[0] = entry("white", "", "#ffffff")
			So(p.Entries()[0].Code(), ShouldEqual, "black")
		})
	})
}

func TestAccessors(t *testing.T) {
	Convey("Given a small palette", t, func() {
		p := lo.Must(New("small", []Entry{
			entry("black", "", "#000000"),
			entry("red", "100", "#fee2e2"),
			entry("red", "500", "#ef4444"),
			entry("blue", "500", "#3b82f6"),
		}))

		So(p.Name(), ShouldEqual, "small")
		So(p.Len(), ShouldEqual, 4)
		So(p.Families(), ShouldResemble, []string{"black", "red", "blue"})
		So(lo.Map(p.Family("red"), func(e Entry, _ int) string { return e.Code() }), ShouldResemble, []string{"red-100", "red-500"})

		Convey("Lookup by code", func() {
			e, ok := p.Lookup("red-500").Get()
			So(ok, ShouldBeTrue)
			So(e.Hex, ShouldEqual, "#ef4444")
			So(p.Lookup("green-500").IsAbsent(), ShouldBeTrue)
		})

		Convey("Search is fuzzy and case-insensitive", func() {
			codes := lo.Map(p.Search("RD5"), func(e Entry, _ int) string { return e.Code() })
			So(codes, ShouldResemble, []string{"red-500"})
			So(p.Search("zzz"), ShouldBeEmpty)
		})
	})
}
