// Package color holds the terminal colors of the command line output.
package color

import "github.com/charmbracelet/lipgloss"

// ANSI colors follow the user's terminal theme.
var (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")

	HiRed    = lipgloss.Color("9")
	HiBlue   = lipgloss.Color("12")
	HiPurple = lipgloss.Color("13")
)

// Orange marks downloads.
var Orange = lipgloss.Color("#ffb703")

// Cream and Indigo compose the title banners.
var (
	Cream  = lipgloss.Color("230")
	Indigo = lipgloss.Color("62")
)
