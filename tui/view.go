package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/vod-cli/vod/color"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/icon"
	"github.com/vod-cli/vod/style"
	"github.com/vod-cli/vod/transfer"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case sourcesState:
		output = listExtraPaddingStyle.Render(b.sourcesC.View())
	case searchState:
		output = b.viewSearch()
	case showsState:
		output = b.viewShows()
	case categoriesState:
		output = listExtraPaddingStyle.Render(b.categoriesC.View())
	case channelsState:
		output = listExtraPaddingStyle.Render(b.channelsC.View())
	case showState:
		output = b.viewShow()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.progressStatus,
		},
	)
}

func (b *statefulBubble) viewSearch() string {
	lines := []string{
		style.Title("Search"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok && suggestion != b.inputC.Value() {
		lines = append(lines, "", style.Faint("tab: "+suggestion))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewShows() string {
	return listExtraPaddingStyle.Render(b.showsC.View() + "\n" + b.viewTransfer())
}

func (b *statefulBubble) viewShow() string {
	sections := []string{b.showC.View()}
	if b.synopsisHeight > 0 {
		sections = append(sections, strings.Join(b.synopsis[:b.synopsisHeight], "\n"))
	}
	sections = append(sections, b.viewTransfer())

	return listExtraPaddingStyle.Render(strings.Join(sections, "\n"))
}

// viewTransfer is the progress bar with "ETA spent/eta", or an empty bar with "ETA -/-".
func (b *statefulBubble) viewTransfer() string {
	return b.progressC.ViewAs(b.lastTick.Estimate.Fraction) + " " + etaText(b.lastTick)
}

func etaText(tick transfer.Event) string {
	if tick.Progress.Position < 1 {
		return style.Faint("ETA -/-")
	}

	return style.Fg(color.Purple)(fmt.Sprintf("ETA %ds/%ds", int(tick.Progress.Elapsed), tick.Estimate.ETA))
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(errs.OneLine(b.lastError)), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
