package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/catalog"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/internal/testsource"
	"github.com/vod-cli/vod/metadata"
	"github.com/vod-cli/vod/source"
	"github.com/vod-cli/vod/transfer"
)

func init() {
	filesystem.SetMemMapFs()
}

func newSource() *testsource.Source {
	show := func(id, title string) *source.Show {
		return &source.Show{
			ID:       id,
			Title:    title,
			Metadata: metadata.NewTree().Set("category", metadata.Text("info")).Set("channel", metadata.Text("arte")),
			Summary: []source.Entry{
				{Key: "Site", Value: "https://example.org/" + id, Kind: source.EntryLink},
				{Key: "Duration", Value: "26 min", Kind: source.EntryPlain},
			},
			Crew:     []source.CrewMember{{Role: "presenter", Name: "Anne"}},
			Synopsis: []string{"A daily news show."},
		}
	}

	return &testsource.Source{
		CategoryList: []string{"info"},
		ChannelList:  []string{"arte"},
		Shows:        []*source.Show{show("1", "Le Journal"), show("2", "Arte Journal")},
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestBubble(t *testing.T) {
	Convey("Given a client with a loaded catalog", t, func() {
		b := newBubble(&Options{Limit: 10})
		b.setState(loadingState)
		b.Update(sourceLoadedMsg{src: newSource()})

		So(b.browser, ShouldNotBeNil)
		So(b.filter, ShouldResemble, catalog.StartFilter(10))

		Convey("The start listing holds every show", func() {
			msg := b.browse(b.filter, catalog.Directory)()
			So(msg, ShouldHaveSameTypeAs, showsMsg{})

			b.Update(msg)
			So(b.state, ShouldEqual, showsState)
			So(b.showsC.Items(), ShouldHaveLength, 2)

			Convey("Confirming a show fetches it", func() {
				b.Update(keyPress("enter"))
				So(b.state, ShouldEqual, loadingState)

				item := b.showsC.SelectedItem().(*listItem)
				b.Update(b.fetchShow(item.internal.(*source.Summary).ID)())
				So(b.state, ShouldEqual, showState)
				So(b.selectedShow.Title, ShouldEqual, "Arte Journal")
				So(b.showC.Items(), ShouldHaveLength, 3)

				Convey("The link entry is the open target", func() {
					target, ok := b.showC.SelectedItem().(*listItem).target()
					So(ok, ShouldBeTrue)
					So(target, ShouldEqual, "https://example.org/2")
				})

				Convey("Going back returns to the listing", func() {
					b.Update(keyPress("esc"))
					So(b.state, ShouldEqual, showsState)
				})

				Convey("Going to the list is ignored while a download runs", func() {
					b.session = &transfer.Session{ID: "s1"}
					b.Update(keyPress("L"))
					So(b.state, ShouldEqual, showState)
				})

				Convey("A second download is refused while one runs", func() {
					running := &transfer.Session{ID: "s1", ShowID: "1"}
					b.session = running
					b.transferShow = &source.Show{ID: "1", Title: "Le Journal"}

					cmd := b.startTransfer()
					So(cmd, ShouldNotBeNil)
					So(b.session, ShouldEqual, running)
					So(b.transferShow.ID, ShouldEqual, "1")
					So(b.registry.Running(b.selectedShow.ID), ShouldBeFalse)

					b.Update(cmd())
					So(b.notifier.Current(), ShouldEqual, transferBusy)
				})

				Convey("Going to the list reloads it otherwise", func() {
					b.Update(keyPress("L"))
					So(b.state, ShouldEqual, loadingState)
				})
			})
		})

		Convey("Selecting a category narrows the filter", func() {
			b.Update(b.loadMenu(false)())
			So(b.menu, ShouldNotBeNil)
			So(b.categoriesC.Items(), ShouldHaveLength, 2)

			b.setState(categoriesState)
			b.categoriesC.Select(1)
			b.Update(keyPress("enter"))
			So(b.filter.Category, ShouldEqual, "info")
			So(b.filter.Channel, ShouldEqual, catalog.All)
			So(b.state, ShouldEqual, loadingState)
		})

		Convey("A numeric search opens the show directly", func() {
			b.setState(searchState)
			b.inputC.SetValue("2")
			b.Update(keyPress("enter"))
			So(b.state, ShouldEqual, loadingState)
			So(b.filter.Query, ShouldBeEmpty)
		})

		Convey("A text search lists by relevance", func() {
			b.setState(searchState)
			b.inputC.SetValue("journal")
			b.Update(keyPress("enter"))
			So(b.filter.Query, ShouldEqual, "journal")
			So(b.filter.Sort, ShouldEqual, source.SortRelevance)
		})
	})
}

func TestTransferBar(t *testing.T) {
	Convey("Given a running download", t, func() {
		b := newBubble(&Options{Limit: 10})
		b.session = &transfer.Session{ID: "s1"}
		b.transferShow = &source.Show{ID: "1", Title: "Le Journal"}

		Convey("The bar is idle before the first tick", func() {
			So(b.viewTransfer(), ShouldContainSubstring, "ETA -/-")
		})

		Convey("A tick shows spent and estimated seconds", func() {
			b.Update(transferMsg{event: transfer.Event{
				Kind:      transfer.EventTick,
				SessionID: "s1",
				Progress:  transfer.Progress{Position: 50, Total: 200, Elapsed: 10},
				Estimate:  transfer.Estimate{Fraction: 0.25, ETA: 40},
			}})
			So(b.viewTransfer(), ShouldContainSubstring, "ETA 10s/40s")

			Convey("Completion resets it", func() {
				b.Update(transferMsg{event: transfer.Event{
					Kind:      transfer.EventCompleted,
					SessionID: "s1",
					Result:    transfer.Result{ArtifactPath: "/videos/Le_Journal.mp4"},
				}})
				So(b.transferring(), ShouldBeFalse)
				So(b.lastArtifact, ShouldEqual, "/videos/Le_Journal.mp4")
				So(b.viewTransfer(), ShouldContainSubstring, "ETA -/-")
			})
		})

		Convey("Events of another session are ignored", func() {
			b.Update(transferMsg{event: transfer.Event{Kind: transfer.EventCompleted, SessionID: "other"}})
			So(b.transferring(), ShouldBeTrue)
		})
	})
}
