// Package style renders strings with lipgloss.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vod-cli/vod/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored is a style with fg and bg set. An empty color leaves the terminal default.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer painting its argument in c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title is the banner above the gui lists.
func Title(s string) string {
	return banner(color.Indigo)(s)
}

// ErrorTitle is the banner of the gui error screen.
func ErrorTitle(s string) string {
	return banner(color.Red)(s)
}

func banner(bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(color.Cream, bg).Padding(0, 1).Render(s) }
}
