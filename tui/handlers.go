package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vod-cli/vod/catalog"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/history"
	"github.com/vod-cli/vod/inspect"
	"github.com/vod-cli/vod/internal/ui"
	"github.com/vod-cli/vod/log"
	"github.com/vod-cli/vod/provider"
	"github.com/vod-cli/vod/source"
	"github.com/vod-cli/vod/transfer"
)

type (
	sourceLoadedMsg struct {
		src source.Source
	}

	menuMsg struct {
		menu *catalog.Menu

		// open the category list once loaded
		open bool
	}

	showsMsg struct {
		filter catalog.Filter
		shows  []*source.Summary
	}

	showMsg struct {
		show *source.Show
	}

	transferMsg struct {
		event transfer.Event
	}

	// transferClosedMsg is sent when the event channel of a session is drained.
	transferClosedMsg struct{}
)

func (b *statefulBubble) loadProviders() tea.Cmd {
	items := lo.Map(provider.Customs(), func(p *provider.Provider, _ int) list.Item {
		return &listItem{internal: p, marked: true}
	})
	return b.sourcesC.SetItems(items)
}

func (b *statefulBubble) loadSource(p *provider.Provider) tea.Cmd {
	return func() tea.Msg {
		log.Info("loading catalog " + p.ID)
		b.progressStatus = "Loading catalog " + p.Name

		src, err := p.CreateSource()
		if err != nil {
			return err
		}

		return sourceLoadedMsg{src: src}
	}
}

func (b *statefulBubble) loadMenu(open bool) tea.Cmd {
	browser := b.browser
	return func() tea.Msg {
		menu, err := browser.Menu()
		if err != nil {
			return err
		}
		return menuMsg{menu: menu, open: open}
	}
}

func (b *statefulBubble) browse(f catalog.Filter, mode catalog.Mode) tea.Cmd {
	browser := b.browser
	return func() tea.Msg {
		log.WithFields(logrus.Fields{"category": f.Category, "channel": f.Channel, "query": f.Query}).Info("listing shows")
		b.progressStatus = "Listing shows"

		listing, err := browser.Browse(f, mode)
		if err != nil {
			return err
		}

		if listing.Menu != nil {
			return menuMsg{menu: listing.Menu, open: true}
		}

		shows, err := catalog.Collect(listing.Shows)
		if err != nil {
			return err
		}

		return showsMsg{filter: f, shows: shows}
	}
}

func (b *statefulBubble) fetchShow(id string) tea.Cmd {
	src := b.src
	return func() tea.Msg {
		log.Info("getting show " + id)
		b.progressStatus = fmt.Sprintf("Getting show %s", id)

		show, err := src.Show(id)
		if err != nil {
			return err
		}
		return showMsg{show: show}
	}
}

// apply performs what Dispatch decided.
func (b *statefulBubble) apply(command catalog.Command) tea.Cmd {
	switch command.Action {
	case catalog.ActionList:
		b.filter = command.Filter
		b.newState(loadingState)
		return tea.Batch(b.startLoading(), b.browse(command.Filter, command.Mode))
	case catalog.ActionShow:
		b.filter = command.Filter
		b.newState(loadingState)
		return tea.Batch(b.startLoading(), b.fetchShow(command.ShowID))
	default:
		if b.transferring() {
			return ui.Notify(transferBusy)
		}
		return nil
	}
}

func (b *statefulBubble) dispatch(ev catalog.Event) tea.Cmd {
	return b.apply(catalog.Dispatch(b.filter, ev, b.transferring()))
}

func (b *statefulBubble) setMenu(menu *catalog.Menu) tea.Cmd {
	b.menu = menu
	toItems := func(names []string) []list.Item {
		return lo.Map(append([]string{catalog.All}, names...), func(name string, _ int) list.Item {
			return &listItem{internal: name}
		})
	}

	return tea.Batch(
		b.categoriesC.SetItems(toItems(menu.Categories)),
		b.channelsC.SetItems(toItems(menu.Channels)),
	)
}

func (b *statefulBubble) setShows(msg showsMsg) tea.Cmd {
	b.filter = msg.filter
	b.showsC.Title = b.filterTitle()
	b.showsC.ResetSelected()

	items := lo.Map(msg.shows, func(s *source.Summary, _ int) list.Item {
		return &listItem{internal: s, marked: b.registry.Running(s.ID)}
	})
	return b.showsC.SetItems(items)
}

func (b *statefulBubble) setShow(show *source.Show) tea.Cmd {
	b.selectedShow = show
	b.showC.Title = show.Title
	b.showC.ResetSelected()

	var items []list.Item
	for _, entry := range show.Summary {
		items = append(items, &listItem{internal: entry, marked: entry.Kind != source.EntryPlain})
	}
	for _, member := range show.Crew {
		items = append(items, &listItem{internal: member})
	}

	b.synopsis = nil
	for _, paragraph := range show.Synopsis {
		b.synopsis = append(b.synopsis, inspect.Wrap(paragraph, b.width)...)
		b.synopsis = append(b.synopsis, "")
	}
	b.layoutShow()

	return b.showC.SetItems(items)
}

const transferBusy = "a download is running, wait for it to finish"

// startTransfer downloads the selected show. Only one download runs at a time:
// its event channel must be drained until the terminal event.
func (b *statefulBubble) startTransfer() tea.Cmd {
	show := b.selectedShow
	if show == nil {
		return nil
	}

	if b.transferring() {
		return ui.Notify(transferBusy)
	}

	session, events, err := b.registry.Start(context.Background(), transfer.Request{
		Show:   show,
		Config: b.options.Transfer,
	})
	if err != nil {
		return ui.Notify(errs.OneLine(err))
	}

	b.session = session
	b.transferEvents = events
	b.transferShow = show
	b.lastTick = transfer.Event{}

	return tea.Batch(ui.Notify("downloading "+show.Title), b.waitForTransfer())
}

func (b *statefulBubble) waitForTransfer() tea.Cmd {
	events := b.transferEvents
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return transferClosedMsg{}
		}
		return transferMsg{event: event}
	}
}

// onTransfer follows a session until its terminal event.
func (b *statefulBubble) onTransfer(event transfer.Event) tea.Cmd {
	if b.session == nil || event.SessionID != b.session.ID {
		return nil
	}

	if !event.Terminal() {
		b.lastTick = event
		return b.waitForTransfer()
	}

	show := b.transferShow
	b.session = nil
	b.lastTick = transfer.Event{}

	if event.Err != nil {
		log.Error(event.Err)
		return tea.Batch(ui.Notify(errs.OneLine(event.Err)), b.waitForTransfer())
	}

	b.lastArtifact = event.Result.ArtifactPath
	if b.options.SaveHistory && show != nil {
		if _, err := history.Save(show, b.lastArtifact); err != nil {
			log.Warn(err)
		}
	}

	return tea.Batch(ui.Notify(fmt.Sprintf("%s saved", b.lastArtifact)), b.waitForTransfer())
}
