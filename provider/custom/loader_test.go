package custom

import (
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/source"
)

func init() {
	filesystem.SetMemMapFs()
}

const catalogScript = `
function Categories() return { "info", "series" } end
function Channels() return { "france2", "arte" } end

function ListShows(filter)
	local title = "everything"
	if filter.channel ~= nil then title = filter.channel end
	return {
		{ id = "1", title = title .. " " .. filter.sort .. " " .. filter.page .. "/" .. filter.limit },
	}
end

function GetShow(id)
	if id == "404" then error("no such show") end
	return { id = id, title = "Show " .. id, metadata = { { key = "id", value = id } } }
end

function ShowStream(id)
	return { url = "https://cdn.example.org/" .. id .. "/master.m3u8" }
end
`

func writeScript(path, contents string) {
	lo.Must0(filesystem.API().WriteFile(path, []byte(contents), 0o644))
}

func TestLoadSource(t *testing.T) {
	Convey("Given a catalog script", t, func() {
		writeScript("/sources/tv.lua", catalogScript)

		src, err := LoadSource("/sources/tv.lua")
		So(err, ShouldBeNil)
		defer src.Close()

		So(src.Name(), ShouldEqual, "tv")
		So(src.ID(), ShouldEqual, "tv custom")

		Convey("Categories and channels come back in order", func() {
			So(lo.Must(src.Categories()), ShouldResemble, []string{"info", "series"})
			So(lo.Must(src.Channels()), ShouldResemble, []string{"france2", "arte"})
		})

		Convey("The query is passed as a table", func() {
			shows, err := src.List(source.Query{Channel: mo.Some("arte"), Sort: source.SortAlpha, Page: 2, Limit: 10})
			So(err, ShouldBeNil)
			So(shows[0].Title, ShouldEqual, "arte alpha 2/10")

			shows, err = src.List(source.Query{Sort: source.SortRelevance, Page: 1, Limit: 5})
			So(err, ShouldBeNil)
			So(shows[0].Title, ShouldEqual, "everything relevance 1/5")
		})

		Convey("A show keeps a reference to its catalog", func() {
			show, err := src.Show("42")
			So(err, ShouldBeNil)
			So(show.Title, ShouldEqual, "Show 42")
			So(show.Source, ShouldEqual, src)

			stream, err := src.Stream(show)
			So(err, ShouldBeNil)
			So(stream.URL, ShouldEqual, "https://cdn.example.org/42/master.m3u8")
		})

		Convey("Script errors are service errors", func() {
			_, err := src.Show("404")
			So(errs.IsService(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "no such show")
		})

		Convey("An empty id is a user input error", func() {
			_, err := src.Show("")
			So(errs.IsUserInput(err), ShouldBeTrue)
		})

		Convey("Calls after close fail", func() {
			So(src.Close(), ShouldBeNil)
			_, err := src.Categories()
			So(errs.IsService(err), ShouldBeTrue)
		})
	})

	Convey("A script missing a function is rejected", t, func() {
		writeScript("/sources/partial.lua", `function Categories() return {} end`)

		_, err := LoadSource("/sources/partial.lua")
		So(errs.IsService(err), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "Channels")
	})
}
