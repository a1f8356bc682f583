package cmd

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vod-cli/vod/color"
	"github.com/vod-cli/vod/history"
	"github.com/vod-cli/vod/icon"
	"github.com/vod-cli/vod/style"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "JSON output")
	historyCmd.Flags().IntP("limit", "n", 0, "Only the most recent entries")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed downloads, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.Get()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(records) {
			records = records[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			if records == nil {
				records = []*history.Record{}
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("No downloads yet"))
			return
		}

		for _, record := range records {
			cmd.Printf("%s %s\n", icon.Get(icon.Download), record)
			cmd.Printf("  %s\n", style.Fg(color.Purple)(record.Path))
		}
	},
}
