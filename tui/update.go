package tui

import (
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/catalog"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/internal/ui"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/log"
	"github.com/vod-cli/vod/open"
	"github.com/vod-cli/vod/provider"
	"github.com/vod-cli/vod/query"
	"github.com/vod-cli/vod/source"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		b.stopLoading()
		b.raiseError(msg)
		return b, cmd
	case transferMsg:
		return b, tea.Batch(cmd, b.onTransfer(msg.event))
	case transferClosedMsg:
		return b, cmd
	case menuMsg:
		if !msg.open {
			return b, tea.Batch(cmd, b.setMenu(msg.menu))
		}
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) && b.state != loadingState {
			switch b.state {
			case searchState:
				b.inputC.SetValue("")
				b.inputC.Blur()
				b.searchSuggestion = mo.None[string]()
			case sourcesState, errorState:
				if b.statesHistory.Len() == 0 {
					return b, tea.Quit
				}
			}

			b.previousState()
			return b, cmd
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case loadingState:
		stateCmd = b.updateLoading(msg)
	case sourcesState:
		stateCmd = b.updateSources(msg)
	case searchState:
		stateCmd = b.updateSearch(msg)
	case showsState:
		stateCmd = b.updateShows(msg)
	case categoriesState:
		stateCmd = b.updateMenu(msg, &b.categoriesC, func(name string) catalog.Event {
			return catalog.SelectCategory{Name: name}
		})
	case channelsState:
		stateCmd = b.updateMenu(msg, &b.channelsC, func(name string) catalog.Event {
			return catalog.SelectChannel{Name: name}
		})
	case showState:
		stateCmd = b.updateShow(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.back) {
			b.stopLoading()
			if b.statesHistory.Len() == 0 {
				return tea.Quit
			}
			b.previousState()
		}
		return nil
	case sourceLoadedMsg:
		b.src = msg.src
		b.menu = nil
		b.browser = catalog.NewBrowser(msg.src)
		b.filter = catalog.StartFilter(b.options.Limit)
		b.statesHistory.Clear()
		return tea.Batch(b.loadMenu(false), b.browse(b.filter, catalog.Directory))
	case menuMsg:
		b.stopLoading()
		cmd := b.setMenu(msg.menu)
		b.newState(categoriesState)
		return cmd
	case showsMsg:
		b.stopLoading()
		cmd := b.setShows(msg)
		b.newState(showsState)
		return cmd
	case showMsg:
		b.stopLoading()
		cmd := b.setShow(msg.show)
		b.newState(showState)
		return cmd
	case spinner.TickMsg:
		if !b.loading {
			return nil
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return cmd
	}

	return nil
}

func (b *statefulBubble) updateSources(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		item, ok := b.sourcesC.SelectedItem().(*listItem)
		if !ok {
			return nil
		}

		p := item.internal.(*provider.Provider)
		if b.src != nil {
			if b.transferring() {
				return ui.Notify("a download is running, wait for it to finish")
			}
			log.Info("closing catalog " + b.src.ID())
			_ = b.src.Close()
			b.src = nil
		}

		b.newState(loadingState)
		return tea.Batch(b.startLoading(), b.loadSource(p))
	}

	var cmd tea.Cmd
	b.sourcesC, cmd = b.sourcesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			text := strings.TrimSpace(b.inputC.Value())
			if text == "" {
				return nil
			}

			if err := query.Remember(text, 1); err != nil {
				log.Warn(err)
			}

			b.inputC.SetValue("")
			b.inputC.Blur()
			b.searchSuggestion = mo.None[string]()
			return b.dispatch(catalog.SubmitSearch{Text: text})
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion):
			if suggestion, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.CursorEnd()
				b.searchSuggestion = mo.None[string]()
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)

	if viper.GetBool(key.SearchShowQuerySuggestions) {
		b.searchSuggestion = query.Suggest(b.inputC.Value())
	}

	return cmd
}

// updateCatalogKeys handles the keys shared by the list and show pages.
func (b *statefulBubble) updateCatalogKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case bubblesKey.Matches(msg, b.keymap.search):
		b.newState(searchState)
		b.inputC.SetValue(b.filter.Query)
		b.inputC.CursorEnd()
		return tea.Batch(b.inputC.Focus(), textinput.Blink), true
	case bubblesKey.Matches(msg, b.keymap.categories):
		if b.menu == nil {
			b.newState(loadingState)
			return tea.Batch(b.startLoading(), b.loadMenu(true)), true
		}
		b.newState(categoriesState)
		return nil, true
	case bubblesKey.Matches(msg, b.keymap.channels):
		if b.menu == nil {
			return ui.Notify("channels are still loading"), true
		}
		b.newState(channelsState)
		return nil, true
	case bubblesKey.Matches(msg, b.keymap.changeSource):
		b.newState(sourcesState)
		return b.loadProviders(), true
	case bubblesKey.Matches(msg, b.keymap.cancelDownload):
		if b.session == nil {
			return nil, true
		}
		b.session.Cancel()
		return ui.Notify("cancelling download"), true
	}

	return nil, false
}

func (b *statefulBubble) updateShows(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, ok := b.updateCatalogKeys(msg); ok {
			return cmd
		}

		if bubblesKey.Matches(msg, b.keymap.confirm) {
			item, ok := b.showsC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			summary := item.internal.(*source.Summary)
			return b.dispatch(catalog.SelectShow{ID: summary.ID})
		}
	}

	var cmd tea.Cmd
	b.showsC, cmd = b.showsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateMenu(msg tea.Msg, l *list.Model, event func(string) catalog.Event) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.confirm) {
		item, ok := l.SelectedItem().(*listItem)
		if !ok {
			return nil
		}
		return b.dispatch(event(item.FilterValue()))
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return cmd
}

func (b *statefulBubble) updateShow(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, ok := b.updateCatalogKeys(msg); ok {
			return cmd
		}

		switch {
		case bubblesKey.Matches(msg, b.keymap.download):
			return b.startTransfer()
		case bubblesKey.Matches(msg, b.keymap.gotoList):
			return b.dispatch(catalog.GotoList{})
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b.openSelected()
		}
	}

	var cmd tea.Cmd
	b.showC, cmd = b.showC.Update(msg)
	return cmd
}

// openSelected opens the selected link entry, or else the last saved file.
func (b *statefulBubble) openSelected() tea.Cmd {
	target := b.lastArtifact
	if item, ok := b.showC.SelectedItem().(*listItem); ok {
		if t, ok := item.target(); ok {
			target = t
		}
	}

	if target == "" {
		return ui.Notify("nothing to open")
	}

	if err := open.Start(target); err != nil {
		return ui.Notify(errs.OneLine(err))
	}

	return ui.Notify("opened " + target)
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return tea.Quit
	}
	return nil
}
