package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vod-cli/vod/history"
	"github.com/vod-cli/vod/icon"
	"github.com/vod-cli/vod/internal/cache"
	"github.com/vod-cli/vod/query"
	"github.com/vod-cli/vod/util"
	"github.com/vod-cli/vod/where"
)

// clearTarget is something "vod clear" can remove.
type clearTarget struct {
	name  string
	flag  string
	short string
	clear func() error
}

var clearTargets = []clearTarget{
	{"listing cache", "cache", "c", cache.Clear},
	{"download history", "history", "s", history.Clear},
	{"search history", "queries", "q", query.Clear},
	{"temporary files", "temp", "t", func() error { return util.Delete(where.Temp()) }},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		clearCmd.Flags().BoolP(target.flag, target.short, false, "Clear the "+target.name)
	}
	clearCmd.Flags().BoolP("all", "a", false, "Clear everything")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached listings, histories and temporary files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return all || lo.Must(cmd.Flags().GetBool(t.flag))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, target := range selected {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing the %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			erase()
			handleErr(err)
			cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
