// Package tui is the interactive catalog client started by the gui command.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vod-cli/vod/provider"
	"github.com/vod-cli/vod/transfer"
)

// Options of the interactive client.
type Options struct {
	// Limit is the size of every listing.
	Limit int

	// Transfer configures the downloads started with the download key.
	Transfer transfer.Config

	// SaveHistory records completed downloads.
	SaveHistory bool
}

// Run opens the default catalog, or lets the user pick one when several are
// installed, and blocks until the client exits.
func Run(options *Options) error {
	bubble := newBubble(options)

	p, err := provider.Default()
	switch {
	case err == nil:
		bubble.pending = p
		bubble.setState(loadingState)
	case len(provider.Customs()) > 1:
		bubble.setState(sourcesState)
	default:
		return err
	}

	defer bubble.close()

	_, err = tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
