package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/tui"
)

func init() {
	rootCmd.AddCommand(guiCmd)
}

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Browse the catalog interactively",
	Long: `Open the interactive client on the whole catalog.
Pick a category or a channel, search by title or show id, and download the selected show in the background.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(tui.Run(&tui.Options{
			Limit:       viper.GetInt(key.GUILimit),
			Transfer:    transferConfig(),
			SaveHistory: viper.GetBool(key.TransferSaveHistory),
		}))
	},
}
