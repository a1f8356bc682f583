package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vod-cli/vod/catalog"
	"github.com/vod-cli/vod/internal/ui"
	"github.com/vod-cli/vod/provider"
	"github.com/vod-cli/vod/source"
	"github.com/vod-cli/vod/style"
	"github.com/vod-cli/vod/transfer"
	"github.com/vod-cli/vod/util"
)

// lines reserved under the lists for the transfer bar
const transferBarHeight = 2

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC    spinner.Model
	inputC      textinput.Model
	sourcesC    list.Model
	showsC      list.Model
	categoriesC list.Model
	channelsC   list.Model
	showC       list.Model
	progressC   progress.Model
	helpC       help.Model

	pending *provider.Provider
	src     source.Source
	browser *catalog.Browser
	filter  catalog.Filter
	menu    *catalog.Menu

	selectedShow   *source.Show
	synopsis       []string
	synopsisHeight int

	registry       *transfer.Registry
	session        *transfer.Session
	transferEvents <-chan transfer.Event
	transferShow   *source.Show
	lastTick       transfer.Event
	lastArtifact   string

	progressStatus string
	lastError      error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s and remembers where it came from, except for transient states.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) transferring() bool {
	return b.session != nil
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.sourcesC, &b.categoriesC, &b.channelsC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.showsC.SetSize(listWidth, listHeight-transferBarHeight)
	b.showsC.Help.Width = listWidth

	b.progressC.Width = listWidth / 2
	b.inputC.Width = listWidth

	b.width = styledWidth
	b.height = styledHeight
	b.helpC.Width = listWidth

	b.layoutShow()
}

// layoutShow splits the show page between the entry list and the synopsis.
func (b *statefulBubble) layoutShow() {
	xx, yy := listExtraPaddingStyle.GetFrameSize()
	listWidth := b.width + paddingStyle.GetHorizontalFrameSize() - xx
	listHeight := b.height + paddingStyle.GetVerticalFrameSize() - yy - transferBarHeight

	b.synopsisHeight = util.Max(0, util.Min(len(b.synopsis), listHeight/3))
	b.showC.SetSize(listWidth, listHeight-b.synopsisHeight)
	b.showC.Help.Width = listWidth
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
}

// close releases the opened catalog and cancels a running download.
func (b *statefulBubble) close() {
	if b.session != nil {
		b.session.Cancel()
	}
	if b.src != nil {
		util.Ignore(b.src.Close)
	}
}

// filterTitle describes the current listing, like "Shows · news » france2".
func (b *statefulBubble) filterTitle() string {
	title := fmt.Sprintf("Shows · %s » %s", b.filter.Category, b.filter.Channel)
	if b.filter.Query != "" {
		title += fmt.Sprintf(" · %q", b.filter.Query)
	}
	return title
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		filter:        catalog.StartFilter(options.Limit),
		registry:      transfer.NewRegistry(transfer.NewDownloader(options.Transfer.Converter)),
		notifier:      &ui.Model{},
		options:       options,
	}

	type listOptions struct {
		TitleStyle mo.Option[lipgloss.Style]
	}

	makeList := func(title string, description bool, options *listOptions) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		if titleStyle, ok := options.TitleStyle.Get(); ok {
			listC.Styles.Title = titleStyle
		}
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetFilteringEnabled(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	titled := func(bg lipgloss.Color) *listOptions {
		return &listOptions{
			TitleStyle: mo.Some(lipgloss.NewStyle().Foreground(style.Base).Background(bg).Padding(0, 1)),
		}
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Title, show id or http:// link"
	bubble.inputC.CharLimit = 120
	bubble.inputC.Prompt = "> "

	bubble.progressC = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	bubble.sourcesC = makeList("Catalogs", false, titled(style.AccentColor))
	bubble.sourcesC.SetStatusBarItemName("catalog", "catalogs")

	bubble.showsC = makeList(bubble.filterTitle(), true, titled(style.Lavender))
	bubble.showsC.SetStatusBarItemName("show", "shows")
	bubble.showsC.SetShowPagination(true)

	bubble.categoriesC = makeList("Categories", false, titled(style.Peach))
	bubble.categoriesC.SetStatusBarItemName("category", "categories")

	bubble.channelsC = makeList("Channels", false, titled(style.Teal))
	bubble.channelsC.SetStatusBarItemName("channel", "channels")

	bubble.showC = makeList("Show", true, titled(style.Blue))
	bubble.showC.SetStatusBarItemName("entry", "entries")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
