package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/vod-cli/vod/inline"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:       "schema [output]",
	Short:     "Print the JSON schema of a --json output",
	Long:      "Print the JSON schema of the list, menu, show, get or history output. Without an argument, the output names are listed.",
	Example:   "  vod schema show",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: inline.SchemaNames(),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			for _, name := range inline.SchemaNames() {
				cmd.Println(name)
			}
			return
		}

		schema, err := inline.Schema(args[0])
		handleErr(err)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
