// Package cmd implements the vod command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/color"
	"github.com/vod-cli/vod/constant"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/icon"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/log"
	"github.com/vod-cli/vod/provider"
	"github.com/vod-cli/vod/style"
	"github.com/vod-cli/vod/util"
	"github.com/vod-cli/vod/version"
	"github.com/vod-cli/vod/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "V", false, "Print the application version")

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show full error details and log to stderr")
	lo.Must0(viper.BindPFlag(key.CliVerbose, rootCmd.PersistentFlags().Lookup("verbose")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant (plain, emoji, nerd, kaomoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Catalog script to use")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", completeSources))
	lo.Must0(viper.BindPFlag(key.CatalogSource, rootCmd.PersistentFlags().Lookup("source")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(context.Background(), cmd.OutOrStdout())
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

func completeSources(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.Customs(), func(p *provider.Provider, _ int) string {
		return p.Name
	}), cobra.ShellCompDirectiveNoFileComp
}

var rootCmd = &cobra.Command{
	Use:   constant.Vod,
	Short: "Browse a video on demand catalog and download its shows",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse a video on demand catalog and download its shows"),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("verbose") {
			return log.Setup()
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		guiCmd.Run(guiCmd, args)
	},
}

// Execute runs the command line and exits with code 2 on failure.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		handleErr(errs.UserInput("%s", err.Error()))
	}
}

// handleErr reports err and exits. Verbose mode prints the whole chain and the stack.
func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)

	message := errs.OneLine(err)
	if viper.GetBool(key.CliVerbose) {
		message = strings.TrimRight(errs.Detail(err), "\n")
	}

	_, _ = fmt.Fprintf(os.Stderr, "%s Error: %s\n", icon.Get(icon.Fail), message)
	os.Exit(errs.ExitCode)
}
