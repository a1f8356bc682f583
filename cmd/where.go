package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vod-cli/vod/color"
	"github.com/vod-cli/vod/style"
	"github.com/vod-cli/vod/where"
)

type whereTarget struct {
	name   string
	flag   string
	path   func() string
	hidden bool
}

var whereTargets = []whereTarget{
	{"Config", "config", where.Config, false},
	{"Catalog scripts", "sources", where.Sources, false},
	{"Logs", "logs", where.Logs, false},
	{"Listing cache", "cache", where.Listings, true},
	{"Download history", "history", where.History, true},
	{"Search history", "queries", where.Queries, true},
	{"Temporary files", "temp", where.Temp, true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, target := range whereTargets {
		whereCmd.Flags().Bool(target.flag, false, target.name+" path")
		if target.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(target.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t whereTarget, _ int) string {
		return t.flag
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print where vod keeps its files",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, target := range whereTargets {
			if lo.Must(cmd.Flags().GetBool(target.flag)) {
				cmd.Println(target.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(whereTargets, func(t whereTarget, _ int) bool { return t.hidden })
		for i, target := range visible {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(target.name+"?"), style.Fg(color.Yellow)("--"+target.flag))
			cmd.Println(target.path())
		}
	},
}
