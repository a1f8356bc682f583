package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init opens the pending catalog, or fills the catalog picker when there is none.
func (b *statefulBubble) Init() tea.Cmd {
	if b.pending != nil {
		p := b.pending
		b.pending = nil
		return tea.Batch(b.startLoading(), b.loadSource(p))
	}

	return b.loadProviders()
}
