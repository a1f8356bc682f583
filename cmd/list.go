package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vod-cli/vod/catalog"
	"github.com/vod-cli/vod/log"
	"github.com/vod-cli/vod/query"
	"github.com/vod-cli/vod/source"
)

func init() {
	rootCmd.AddCommand(listCmd)
	addListingFlags(listCmd)
	listCmd.Flags().StringP("query", "q", "", "Only shows whose title matches")
	listCmd.Flags().StringP("sort", "s", "", "Order of the shows: alpha or relevance")
	lo.Must0(listCmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(source.SortAlpha), string(source.SortRelevance)}, cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.AddCommand(searchCmd)
	addListingFlags(searchCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the shows of a category and channel",
	Long: `List the shows of a category and channel.
Without --category and --channel, or with "help" as either value, the available categories and channels are printed instead.`,
	Example: "  vod list --category info --channel arte --limit 10",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		f, err := listingFilter(cmd)
		handleErr(err)

		handleErr(withSource(func(src source.Source) error {
			listing, err := catalog.NewBrowser(src).Browse(f, catalog.Directory)
			if err != nil {
				return err
			}
			return writeListing(cmd, src, listing)
		}))
	},
}

var searchCmd = &cobra.Command{
	Use:     "search <query...>",
	Short:   "Search shows by title, most relevant first",
	Example: "  vod search journal --channel arte",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := listingFilter(cmd)
		handleErr(err)
		f.Query = strings.Join(args, " ")
		f.Sort = source.SortRelevance

		if err := query.Remember(f.Query, 1); err != nil {
			log.Warn(err)
		}

		handleErr(withSource(func(src source.Source) error {
			listing, err := catalog.NewBrowser(src).Browse(f, catalog.Search)
			if err != nil {
				return err
			}
			return writeListing(cmd, src, listing)
		}))
	},
}
