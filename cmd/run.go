package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vod-cli/vod/color"
	"github.com/vod-cli/vod/icon"
	"github.com/vod-cli/vod/provider/custom"
	"github.com/vod-cli/vod/style"
	"github.com/vod-cli/vod/util"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Load a catalog script and report what it exposes",
	Long: `Load a Lua catalog script outside of the sources directory.
Useful while writing a script: every required function is checked and the categories are fetched once.`,
	Args:    cobra.ExactArgs(1),
	Example: "  vod run ./catalog.lua",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := custom.LoadSource(args[0])
		handleErr(err)
		defer util.Ignore(src.Close)

		categories, err := src.Categories()
		handleErr(err)

		cmd.Printf("%s %s %s\n", icon.Get(icon.Lua), style.Fg(color.Yellow)(src.Name()), style.Faint(src.ID()))
		cmd.Println(util.Quantify(len(categories), "category", "categories"))
	},
}
