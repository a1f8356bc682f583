// Package ui holds the transient status line shown under the interactive client views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vod-cli/vod/style"
)

// Lifetime of a notification on screen.
const Lifetime = 3 * time.Second

// Notification is a message that sets the status line.
type Notification string

// ClearNotificationMsg resets the status line.
type ClearNotificationMsg struct {
	at time.Time
}

// Model is the status line state.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// Notify returns a command that shows text on the status line.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return Notification(text)
	}
}

func clearAfter(at time.Time) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: at}
	})
}

// Update handles Notification and ClearNotificationMsg and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		// a newer notification keeps its own lifetime
		if msg.at.IsZero() || msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Current is the text on the status line, empty when there is none.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
