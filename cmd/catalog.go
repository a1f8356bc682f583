package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/catalog"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/inline"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/provider"
	"github.com/vod-cli/vod/source"
)

// withSource opens the selected catalog for the duration of f.
func withSource(f func(src source.Source) error) error {
	src, err := provider.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	return f(src)
}

// addListingFlags registers the flags shared by list and search.
func addListingFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("category", "c", "", `Category to list, "all" or "help"`)
	cmd.Flags().StringP("channel", "C", "", `Channel to list, "all" or "help"`)
	cmd.Flags().Int("page", 1, "Page of results, starting at 1")
	cmd.Flags().IntP("limit", "n", 0, "Number of shows per page")
	cmd.Flags().BoolP("image", "i", false, "Print the image URL of every show")
	cmd.Flags().BoolP("json", "j", false, "JSON output")

	for _, name := range []string{"category", "channel"} {
		lo.Must0(cmd.RegisterFlagCompletionFunc(name, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{catalog.All, catalog.Help}, cobra.ShellCompDirectiveNoFileComp
		}))
	}
}

// listingFilter reads the listing flags. Unset limit and sort fall back to the configuration.
func listingFilter(cmd *cobra.Command) (catalog.Filter, error) {
	f := catalog.Filter{
		Category: lo.Must(cmd.Flags().GetString("category")),
		Channel:  lo.Must(cmd.Flags().GetString("channel")),
		Page:     lo.Must(cmd.Flags().GetInt("page")),
		Limit:    viper.GetInt(key.CatalogLimit),
		Sort:     source.Sort(viper.GetString(key.CatalogSort)),
	}

	if cmd.Flags().Changed("limit") {
		f.Limit = lo.Must(cmd.Flags().GetInt("limit"))
	}

	if flag := cmd.Flags().Lookup("sort"); flag != nil && flag.Changed {
		sort, err := source.ParseSort(flag.Value.String())
		if err != nil {
			return f, errs.UserInput("%s", err)
		}
		f.Sort = sort
	}

	if flag := cmd.Flags().Lookup("query"); flag != nil {
		f.Query = flag.Value.String()
	}

	return f, f.Validate()
}

func outputOptions(cmd *cobra.Command) inline.Options {
	options := inline.Options{
		Out:  cmd.OutOrStdout(),
		Json: lo.Must(cmd.Flags().GetBool("json")),
	}
	if flag := cmd.Flags().Lookup("image"); flag != nil {
		options.Image = flag.Value.String() == "true"
	}
	return options
}

// writeListing prints the menu or the shows of a listing.
func writeListing(cmd *cobra.Command, src source.Source, listing catalog.Listing) error {
	options := outputOptions(cmd)
	if listing.Menu != nil {
		return inline.WriteMenu(options, src, listing.Menu)
	}
	return inline.WriteListing(options, src, listing.Query, listing.Shows)
}
