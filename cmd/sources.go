package cmd

import (
	"context"
	"io"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vod-cli/vod/color"
	"github.com/vod-cli/vod/constant"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/icon"
	"github.com/vod-cli/vod/network"
	"github.com/vod-cli/vod/provider"
	"github.com/vod-cli/vod/style"
	"github.com/vod-cli/vod/util"
	"github.com/vod-cli/vod/where"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage the installed catalog scripts",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesListCmd.Flags().BoolP("raw", "r", false, "Names only")
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the installed catalog scripts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		providers, err := provider.CustomProviders()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, p := range providers {
				cmd.Println(p.Name)
			}
			return
		}

		if len(providers) == 0 {
			cmd.Printf("No catalog script in %s, see %s\n", where.Sources(), style.Fg(color.Yellow)("vod sources gen"))
			return
		}

		cmd.Println(style.New().Foreground(color.HiBlue).Bold(true).Render("Catalog scripts:"))
		for _, p := range providers {
			cmd.Printf("%s %s %s\n", icon.Get(icon.Lua), p.Name, style.Faint(p.Path))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)
	sourcesRemoveCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var sourcesRemoveCmd = &cobra.Command{
	Use:               "remove <name...>",
	Short:             "Uninstall catalog scripts",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeSources,
	Run: func(cmd *cobra.Command, args []string) {
		yes := lo.Must(cmd.Flags().GetBool("yes"))

		for _, name := range args {
			p, ok := provider.Get(name)
			if !ok {
				handleErr(errs.UserInput("catalog %q is not installed", name))
			}

			if !yes {
				var confirmed bool
				handleErr(survey.AskOne(&survey.Confirm{
					Message: "Remove " + p.Path + "?",
					Default: false,
				}, &confirmed))
				if !confirmed {
					continue
				}
			}

			handleErr(filesystem.API().Remove(p.Path))
			cmd.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(p.Name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesUpdateCmd)
	sourcesUpdateCmd.Flags().String("from", provider.DefaultUpdateURL, "Base URL the scripts are fetched from")
}

var sourcesUpdateCmd = &cobra.Command{
	Use:               "update [name...]",
	Short:             "Update catalog scripts from their upstream repository",
	Long:              "Download the upstream version of each script and replace the installed one when it differs.",
	ValidArgsFunction: completeSources,
	Run: func(cmd *cobra.Command, args []string) {
		providers := provider.Customs()
		if len(args) > 0 {
			providers = lo.Filter(providers, func(p *provider.Provider, _ int) bool {
				return lo.Contains(args, p.Name)
			})
		}

		erase := util.PrintErasable(icon.Get(icon.Progress) + " Updating catalog scripts...")
		updated, err := provider.Update(context.Background(), network.Client, lo.Must(cmd.Flags().GetString("from")), providers)
		erase()

		for _, name := range updated {
			cmd.Printf("%s updated %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
		if len(updated) == 0 && err == nil {
			cmd.Println("Everything is up to date")
		}
		handleErr(err)
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "Name of the catalog")
	sourcesGenCmd.Flags().StringP("url", "u", "", "Base URL of the catalog service")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

type scriptTemplate struct {
	Name, URL, Author string

	CategoriesFn, ChannelsFn, ListShowsFn, GetShowFn, ShowStreamFn string
}

func writeScriptTemplate(w io.Writer, s scriptTemplate) error {
	tmpl, err := template.New("source").Funcs(template.FuncMap{
		"repeat": strings.Repeat,
		"plus":   func(a, b int) int { return a + b },
		"max":    util.Max[int],
	}).Parse(constant.SourceTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, s)
}

var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Create a catalog script from a template",
	Long:  "Write a Lua catalog script defining every function vod calls, ready to be filled in.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := scriptTemplate{
			Name:         lo.Must(cmd.Flags().GetString("name")),
			URL:          lo.Must(cmd.Flags().GetString("url")),
			Author:       author,
			CategoriesFn: constant.CategoriesFn,
			ChannelsFn:   constant.ChannelsFn,
			ListShowsFn:  constant.ListShowsFn,
			GetShowFn:    constant.GetShowFn,
			ShowStreamFn: constant.ShowStreamFn,
		}

		target := filepath.Join(where.Sources(), util.SanitizeFilename(s.Name)+provider.CustomProviderExtension)
		if exists, _ := filesystem.API().Exists(target); exists {
			handleErr(errs.UserInput("%s already exists", target))
		}

		f, err := filesystem.API().Create(target)
		handleErr(err)
		defer util.Ignore(f.Close)

		handleErr(writeScriptTemplate(f, s))
		cmd.Println(target)
	},
}
