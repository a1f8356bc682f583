package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("Journal: 20h?.mp4"), ShouldEqual, "Journal_20h_.mp4")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("a__b"), ShouldEqual, "a_b")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-Les Guignols-"), ShouldEqual, "Les_Guignols")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "show", "shows"), ShouldEqual, "1 show")
		So(Quantify(0, "show", "shows"), ShouldEqual, "0 shows")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history file"), ShouldEqual, "History file")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("sources/arte.lua"), ShouldEqual, "arte")
		So(FileStem("arte"), ShouldEqual, "arte")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete removes files and directory trees", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/data/nested", 0755), ShouldBeNil)
		So(fs.WriteFile("/data/nested/file", []byte("x"), 0644), ShouldBeNil)
		So(fs.WriteFile("/single", []byte("x"), 0644), ShouldBeNil)

		So(Delete("/single"), ShouldBeNil)
		So(Delete("/data"), ShouldBeNil)

		exists, _ := fs.Exists("/data/nested/file")
		So(exists, ShouldBeFalse)
		So(Delete("/missing"), ShouldNotBeNil)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("menu")
		s.Push("shows")
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "shows")
		So(s.Pop(), ShouldEqual, "shows")
		So(s.Pop(), ShouldEqual, "menu")
		So(s.Pop(), ShouldEqual, "")
		s.Push("x")
		s.Clear()
		So(s.Len(), ShouldEqual, 0)
	})
}
