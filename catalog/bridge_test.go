package catalog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/source"
)

func TestDispatch(t *testing.T) {
	Convey("Given the starting filter", t, func() {
		current := StartFilter(100)
		So(current.Category, ShouldEqual, All)
		So(current.Limit, ShouldEqual, 100)

		Convey("Selecting a category keeps the channel and clears the query", func() {
			current.Channel = "arte"
			current.Query = "journal"

			cmd := Dispatch(current, SelectCategory{Name: "info"}, false)
			So(cmd.Action, ShouldEqual, ActionList)
			So(cmd.Filter.Category, ShouldEqual, "info")
			So(cmd.Filter.Channel, ShouldEqual, "arte")
			So(cmd.Filter.Query, ShouldBeEmpty)
			So(cmd.Filter.Sort, ShouldEqual, source.SortAlpha)
			So(cmd.Filter.Limit, ShouldEqual, 100)
		})

		Convey("Selecting a channel", func() {
			cmd := Dispatch(current, SelectChannel{Name: "france2"}, false)
			So(cmd.Action, ShouldEqual, ActionList)
			So(cmd.Filter.Channel, ShouldEqual, "france2")
		})

		Convey("Going back to the list is ignored during a transfer", func() {
			So(Dispatch(current, GotoList{}, true).Action, ShouldEqual, ActionNone)
			So(Dispatch(current, GotoList{}, false).Action, ShouldEqual, ActionList)
		})

		Convey("Selecting a show", func() {
			cmd := Dispatch(current, SelectShow{ID: "1234"}, false)
			So(cmd.Action, ShouldEqual, ActionShow)
			So(cmd.ShowID, ShouldEqual, "1234")
		})

		Convey("Searching", func() {
			Convey("with text runs a relevance search", func() {
				cmd := Dispatch(current, SubmitSearch{Text: " journal "}, false)
				So(cmd.Action, ShouldEqual, ActionList)
				So(cmd.Mode, ShouldEqual, Search)
				So(cmd.Filter.Query, ShouldEqual, "journal")
				So(cmd.Filter.Sort, ShouldEqual, source.SortRelevance)
			})

			Convey("with digits selects the show", func() {
				cmd := Dispatch(current, SubmitSearch{Text: "98765"}, false)
				So(cmd.Action, ShouldEqual, ActionShow)
				So(cmd.ShowID, ShouldEqual, "98765")
			})

			Convey("with a url selects the show", func() {
				cmd := Dispatch(current, SubmitSearch{Text: "http://example.org/show/1"}, false)
				So(cmd.Action, ShouldEqual, ActionShow)
				So(cmd.ShowID, ShouldEqual, "http://example.org/show/1")
			})

			Convey("with mixed text searches", func() {
				So(Dispatch(current, SubmitSearch{Text: "12 coups"}, false).Action, ShouldEqual, ActionList)
			})
		})
	})
}
