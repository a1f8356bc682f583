package catalog

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/internal/testsource"
	"github.com/vod-cli/vod/metadata"
	"github.com/vod-cli/vod/source"
)

func newShow(id, title, category, channel string) *source.Show {
	return &source.Show{
		ID:    id,
		Title: title,
		Metadata: metadata.NewTree().
			Set("category", metadata.Text(category)).
			Set("channel", metadata.Text(channel)),
	}
}

func newSource() *testsource.Source {
	return &testsource.Source{
		CategoryList: []string{"info", "series"},
		ChannelList:  []string{"france2", "arte"},
		Shows: []*source.Show{
			newShow("3", "Zorro", "series", "france2"),
			newShow("1", "Le Journal", "info", "france2"),
			newShow("2", "Arte Journal", "info", "arte"),
		},
	}
}

func TestNormalize(t *testing.T) {
	Convey("Given a filter", t, func() {
		f := Filter{Category: All, Channel: "arte", Sort: source.SortAlpha, Page: 1, Limit: 20}

		Convey("All becomes an absent constraint", func() {
			q := f.Normalize()
			So(q.Category.IsAbsent(), ShouldBeTrue)
			So(q.Channel.MustGet(), ShouldEqual, "arte")
			So(q.Sort, ShouldEqual, source.SortAlpha)
		})

		Convey("An empty category is also absent", func() {
			f.Category = ""
			So(f.Normalize().Category.IsAbsent(), ShouldBeTrue)
		})

		Convey("A query forces relevance", func() {
			f.Query = "journal"
			q := f.Normalize()
			So(q.Sort, ShouldEqual, source.SortRelevance)
			So(q.Query, ShouldEqual, "journal")
		})

		Convey("A blank query does not", func() {
			f.Query = "   "
			So(f.Normalize().Sort, ShouldEqual, source.SortAlpha)
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Validate rejects bad paging", t, func() {
		So(errs.IsUserInput(Filter{Page: 0, Limit: 1}.Validate()), ShouldBeTrue)
		So(errs.IsUserInput(Filter{Page: 1, Limit: 0}.Validate()), ShouldBeTrue)
		So(errs.IsUserInput(Filter{Page: 1, Limit: 1, Sort: "date"}.Validate()), ShouldBeTrue)
		So(Filter{Page: 1, Limit: 1}.Validate(), ShouldBeNil)
	})
}

func TestBrowse(t *testing.T) {
	Convey("Given a browser", t, func() {
		src := newSource()
		browser := NewBrowser(src)

		Convey("A directory request without constraints gives the menu", func() {
			listing, err := browser.Browse(Filter{Page: 1, Limit: 20}, Directory)
			So(err, ShouldBeNil)
			So(listing.Menu, ShouldNotBeNil)
			So(listing.Menu.Categories, ShouldResemble, []string{"info", "series"})
			So(listing.Menu.Channels, ShouldResemble, []string{"france2", "arte"})
			So(src.Queries(), ShouldBeEmpty)
		})

		Convey("A search request without constraints lists everything", func() {
			listing, err := browser.Browse(Filter{Query: "journal", Page: 1, Limit: 20}, Search)
			So(err, ShouldBeNil)
			So(listing.Menu, ShouldBeNil)

			shows, err := Collect(listing.Shows)
			So(err, ShouldBeNil)
			So(shows, ShouldHaveLength, 2)
			So(listing.Query.Sort, ShouldEqual, source.SortRelevance)
		})

		Convey("help gives the menu in any mode", func() {
			listing, err := browser.Browse(Filter{Category: Help, Page: 1, Limit: 20}, Search)
			So(err, ShouldBeNil)
			So(listing.Menu, ShouldNotBeNil)
		})

		Convey("all counts as an explicit value", func() {
			listing, err := browser.Browse(Filter{Category: All, Page: 1, Limit: 20, Sort: source.SortAlpha}, Directory)
			So(err, ShouldBeNil)
			So(listing.Menu, ShouldBeNil)

			shows, err := Collect(listing.Shows)
			So(err, ShouldBeNil)
			So(shows, ShouldHaveLength, 3)
			So(shows[0].Title, ShouldEqual, "Arte Journal")
			So(shows[2].Title, ShouldEqual, "Zorro")
		})

		Convey("Invalid paging is rejected before calling the source", func() {
			_, err := browser.Browse(Filter{Category: All, Page: 0, Limit: 20}, Directory)
			So(errs.IsUserInput(err), ShouldBeTrue)
			So(src.Queries(), ShouldBeEmpty)
		})

		Convey("Service failures come back unchanged", func() {
			failure := errs.Service(errors.New("connection refused"))
			src.Err = failure

			_, err := browser.Browse(Filter{Page: 1, Limit: 20}, Directory)
			So(err, ShouldEqual, failure)
		})
	})
}

func TestList(t *testing.T) {
	Convey("Given a listing sequence", t, func() {
		src := newSource()
		shows := NewBrowser(src).List(Filter{Channel: "france2", Page: 1, Limit: 20, Sort: source.SortAlpha})

		Convey("Nothing is requested before it is ranged over", func() {
			So(src.Queries(), ShouldBeEmpty)
		})

		Convey("Each range requests again", func() {
			first, err := Collect(shows)
			So(err, ShouldBeNil)
			second, err := Collect(shows)
			So(err, ShouldBeNil)

			So(first, ShouldResemble, second)
			So(src.Queries(), ShouldHaveLength, 2)
			So(src.Queries()[0].Channel.MustGet(), ShouldEqual, "france2")
		})

		Convey("Breaking early stops the sequence", func() {
			count := 0
			for range shows {
				count++
				break
			}
			So(count, ShouldEqual, 1)
		})

		Convey("Errors are yielded once", func() {
			src.Err = errs.Service(errors.New("timeout"))
			_, err := Collect(shows)
			So(errs.IsService(err), ShouldBeTrue)
		})
	})
}
