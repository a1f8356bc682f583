package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vod-cli/vod/icon"
	"github.com/vod-cli/vod/provider"
	"github.com/vod-cli/vod/source"
	"github.com/vod-cli/vod/style"
)

// listItem adapts catalog values to list.Item.
type listItem struct {
	internal any
	marked   bool
}

func (t *listItem) getMark() string {
	switch e := t.internal.(type) {
	case *source.Summary:
		return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Download))
	case source.Entry:
		switch e.Kind {
		case source.EntryLink:
			return icon.Get(icon.Link)
		case source.EntryImage:
			return icon.Get(icon.Image)
		}
	case *provider.Provider:
		return icon.Get(icon.Lua)
	}
	return ""
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case source.Entry:
		title = e.Key
	case source.CrewMember:
		title = e.Name
	default:
		title = t.FilterValue()
	}

	if title != "" && t.marked {
		title = fmt.Sprintf("%s %s", title, t.getMark())
	}

	return
}

func (t *listItem) Description() (description string) {
	switch e := t.internal.(type) {
	case *source.Summary:
		description = style.Faint(e.ID)
		if e.ImageURL != "" {
			description += " " + style.Faint(icon.Get(icon.Image))
		}
	case source.Entry:
		description = e.Value
	case source.CrewMember:
		parts := []string{e.Role}
		if e.PersonKind != "" {
			parts = append(parts, style.Faint(e.PersonKind))
		}
		description = strings.Join(parts, " • ")
	case *provider.Provider:
		description = e.Path
	}

	return
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *source.Summary:
		return e.Title
	case *provider.Provider:
		return e.Name
	case source.Entry:
		return e.Key + " " + e.Value
	case source.CrewMember:
		return e.Name
	case string:
		return e
	default:
		return ""
	}
}

// target is what the open key launches for this item.
func (t *listItem) target() (string, bool) {
	entry, ok := t.internal.(source.Entry)
	if !ok || entry.Kind == source.EntryPlain {
		return "", false
	}
	return entry.Value, true
}
