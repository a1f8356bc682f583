package history

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/internal/testsource"
	"github.com/vod-cli/vod/source"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a saved show", t, func() {
		Reset(func() { lo.Must0(Clear()) })

		show := &source.Show{ID: "42", Title: "Le Journal", Source: &testsource.Source{}}
		lo.Must0(filesystem.API().WriteFile("/videos/Le_Journal.mp4", make([]byte, 2048), 0o644))

		record, err := Save(show, "/videos/Le_Journal.mp4")
		So(err, ShouldBeNil)
		So(record.SourceID, ShouldEqual, "test")
		So(record.Size, ShouldEqual, 2048)

		Convey("It is listed", func() {
			records, err := Get()
			So(err, ShouldBeNil)
			So(records, ShouldHaveLength, 1)
			So(records[0].Title, ShouldEqual, "Le Journal")
			So(records[0].String(), ShouldStartWith, "Le Journal (2.0 kB")
		})

		Convey("Saving again replaces the record", func() {
			_, err := Save(show, "/videos/Le_Journal.mp4")
			So(err, ShouldBeNil)
			So(lo.Must(Get()), ShouldHaveLength, 1)
		})

		Convey("The most recent record comes first", func() {
			_, err := Save(&source.Show{ID: "43", Title: "Zorro"}, "/videos/Zorro.mp4")
			So(err, ShouldBeNil)

			records := lo.Must(Get())
			So(records, ShouldHaveLength, 2)
			So(records[0].Title, ShouldEqual, "Zorro")
		})

		Convey("It can be removed", func() {
			So(Remove(record), ShouldBeNil)
			So(lo.Must(Get()), ShouldBeEmpty)
		})
	})
}
