package custom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/metadata"
	"github.com/vod-cli/vod/source"
	lua "github.com/yuin/gopher-lua"
)

func evalTable(L *lua.LState, expr string) *lua.LTable {
	if err := L.DoString("__value = " + expr); err != nil {
		panic(err)
	}
	return L.GetGlobal("__value").(*lua.LTable)
}

func TestShowFromTable(t *testing.T) {
	Convey("showFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Keeps the order of metadata pairs", func() {
			table := evalTable(L, `{
				id = "42", title = "Le Journal",
				metadata = {
					{ key = "title", value = "Le Journal" },
					{ key = "duration", value = 1800 },
					{ key = "crew", value = {
						{ key = "writers", value = { { key = "first", value = "Jane" } } },
					} },
					{ key = "page", value = "https://example.org/42" },
					{ key = "poster", value = { kind = "image", value = "https://example.org/42.jpg" } },
				},
				summary = { { key = "Chaîne", value = "france2" }, { key = "Site", value = "https://example.org", kind = "link" } },
				crew = { { role = "Présentation", kind = "host", name = "Anne" } },
				synopsis = { "First.", "  ", "Second." },
			}`)

			show, err := showFromTable(table, "42")
			So(err, ShouldBeNil)
			So(show.Keys(), ShouldResemble, []string{"title", "duration", "crew", "page", "poster"})

			duration, _ := show.Metadata.Get("duration")
			So(duration.Kind(), ShouldEqual, metadata.KindScalar)
			So(duration.String(), ShouldEqual, "1800")

			page, _ := show.Metadata.Get("page")
			So(page.Kind(), ShouldEqual, metadata.KindLink)

			poster, _ := show.Metadata.Get("poster")
			So(poster.Kind(), ShouldEqual, metadata.KindImage)

			crew, _ := show.Metadata.Get("crew")
			crewTree, ok := crew.Tree()
			So(ok, ShouldBeTrue)
			So(crewTree.Keys(), ShouldResemble, []string{"writers"})

			So(show.Summary, ShouldResemble, []source.Entry{
				{Key: "Chaîne", Value: "france2", Kind: source.EntryPlain},
				{Key: "Site", Value: "https://example.org", Kind: source.EntryLink},
			})
			So(show.Crew, ShouldResemble, []source.CrewMember{{Role: "Présentation", PersonKind: "host", Name: "Anne"}})
			So(show.Synopsis, ShouldResemble, []string{"First.", "Second."})
		})

		Convey("Sorts the keys of a plain metadata table", func() {
			table := evalTable(L, `{ title = "x", metadata = { zeta = 1, alpha = true, mid = "m" } }`)

			show, err := showFromTable(table, "7")
			So(err, ShouldBeNil)
			So(show.ID, ShouldEqual, "7")
			So(show.Keys(), ShouldResemble, []string{"alpha", "mid", "zeta"})
		})

		Convey("Splits an HTML synopsis into paragraphs", func() {
			table := evalTable(L, `{ title = "x", synopsis = "<p>One\n two.</p><p></p><p>Three.</p>" }`)

			show, err := showFromTable(table, "7")
			So(err, ShouldBeNil)
			So(show.Synopsis, ShouldResemble, []string{"One two.", "Three."})
		})

		Convey("Splits a plain synopsis on blank lines", func() {
			table := evalTable(L, `{ title = "x", synopsis = "One.\n\nTwo." }`)

			show, err := showFromTable(table, "7")
			So(err, ShouldBeNil)
			So(show.Synopsis, ShouldResemble, []string{"One.", "Two."})
		})

		Convey("Requires a title", func() {
			_, err := showFromTable(evalTable(L, `{ id = "1" }`), "1")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects pairs without a key", func() {
			_, err := showFromTable(evalTable(L, `{ title = "x", metadata = { { value = "v" } } }`), "1")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSummariesFromTable(t *testing.T) {
	Convey("summariesFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Skips broken entries when others are valid", func() {
			shows, err := summariesFromTable(evalTable(L, `{ { id = "1", title = "A", image = "https://i/1.jpg" }, { title = "no id" } }`))
			So(err, ShouldBeNil)
			So(shows, ShouldResemble, []*source.Summary{{ID: "1", Title: "A", ImageURL: "https://i/1.jpg"}})
		})

		Convey("Fails when nothing is valid", func() {
			_, err := summariesFromTable(evalTable(L, `{ { title = "no id" } }`))
			So(err, ShouldNotBeNil)
		})

		Convey("Accepts numeric ids", func() {
			shows, err := summariesFromTable(evalTable(L, `{ { id = 1234, title = "A" } }`))
			So(err, ShouldBeNil)
			So(shows[0].ID, ShouldEqual, "1234")
		})
	})
}

func TestStreamFromTable(t *testing.T) {
	Convey("streamFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Reads the url and headers", func() {
			stream, err := streamFromTable(evalTable(L, `{ url = "https://cdn/master.m3u8", headers = { Referer = "https://example.org" } }`))
			So(err, ShouldBeNil)
			So(stream.URL, ShouldEqual, "https://cdn/master.m3u8")
			So(stream.Headers["Referer"], ShouldEqual, "https://example.org")
		})

		Convey("Requires a url", func() {
			_, err := streamFromTable(evalTable(L, `{}`))
			So(err, ShouldNotBeNil)
		})
	})
}
