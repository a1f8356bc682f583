package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vod-cli/vod/inline"
	"github.com/vod-cli/vod/inspect"
	"github.com/vod-cli/vod/source"
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("json", "j", false, "JSON output, including the full metadata tree")

	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolP("json", "j", false, "JSON output")
}

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Short:   "Describe a show",
	Long:    "Print the title, summary, crew and synopsis of a show.",
	Example: "  vod show 1234",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withSource(func(src source.Source) error {
			show, err := src.Show(args[0])
			if err != nil {
				return err
			}
			return inline.WriteShow(outputOptions(cmd), show)
		}))
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id> [key...]",
	Short: "Print a metadata value of a show",
	Long: `Walk the metadata of a show along the given keys.
Without keys, the top level keys are listed. A key holding nested metadata lists its subkeys.`,
	Example: "  vod get 1234 diffusion date",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withSource(func(src source.Source) error {
			show, err := src.Show(args[0])
			if err != nil {
				return err
			}

			resolved, err := inspect.Render(show, args[1:])
			if err != nil {
				return err
			}

			return inline.WriteResolved(outputOptions(cmd), show, resolved)
		}))
	},
}
