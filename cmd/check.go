package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/icon"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/provider"
	"github.com/vod-cli/vod/style"
	"github.com/vod-cli/vod/transfer"
	"github.com/vod-cli/vod/where"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the converter and the catalog scripts are installed",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		converter, err := transfer.LookupConverter(viper.GetString(key.TransferConverter))
		if err != nil {
			cmd.Println(problemBox(
				"Missing converter",
				"Shows are converted to mp4 with avconv or ffmpeg, none was found in your PATH.",
				installHint(),
			))
		} else {
			cmd.Printf("%s converter %s\n", icon.Get(icon.Success), converter)
		}

		providers, err := provider.CustomProviders()
		handleErr(err)
		if len(providers) == 0 {
			cmd.Println(problemBox(
				"No catalog",
				fmt.Sprintf("No catalog script was found in %s.", where.Sources()),
				"vod sources gen --name <name> --url <url>",
			))
			return
		}

		for _, p := range providers {
			cmd.Printf("%s catalog %s\n", icon.Get(icon.Success), p.Name)
		}
	},
}

func installHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "brew install ffmpeg"
	case "linux":
		return "sudo apt install ffmpeg"
	case "windows":
		return "scoop install ffmpeg"
	default:
		return ""
	}
}

func problemBox(title, body, suggestion string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	lines := []string{
		style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s %s", icon.Get(icon.Fail), title)),
		"",
		style.New().Foreground(style.Text).Render(body),
	}

	if suggestion != "" {
		lines = append(lines, "", "Try:", "  "+style.New().Foreground(style.AccentColor).Bold(true).Render(suggestion))
	}

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
