package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/history"
	"github.com/vod-cli/vod/icon"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/log"
	"github.com/vod-cli/vod/source"
	"github.com/vod-cli/vod/transfer"
	"github.com/vod-cli/vod/util"
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringP("target", "t", "", "Directory where the show is saved")
	lo.Must0(viper.BindPFlag(key.TransferTarget, fetchCmd.Flags().Lookup("target")))

	fetchCmd.Flags().String("avconv", "", "Path to avconv or ffmpeg")
	lo.Must0(viper.BindPFlag(key.TransferConverter, fetchCmd.Flags().Lookup("avconv")))

	fetchCmd.Flags().BoolP("keep", "k", false, "Keep the downloaded transport stream")
	lo.Must0(viper.BindPFlag(key.TransferKeepIntermediate, fetchCmd.Flags().Lookup("keep")))

	fetchCmd.Flags().BoolP("yes", "y", false, "Overwrite an existing file without asking")
}

// transferConfig builds the transfer settings from the configuration.
func transferConfig() transfer.Config {
	return transfer.Config{
		Destination:      viper.GetString(key.TransferTarget),
		Converter:        viper.GetString(key.TransferConverter),
		Verbose:          viper.GetBool(key.CliVerbose),
		KeepIntermediate: viper.GetBool(key.TransferKeepIntermediate),
	}
}

var fetchCmd = &cobra.Command{
	Use:     "fetch <id>",
	Short:   "Download a show and convert it to mp4",
	Example: "  vod fetch 1234 --target ~/Videos",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		handleErr(withSource(func(src source.Source) error {
			show, err := src.Show(args[0])
			if err != nil {
				return err
			}

			req := transfer.Request{Show: show, Config: transferConfig()}
			destination := transfer.Destination(req)

			if exists, _ := filesystem.API().Exists(destination); exists && !lo.Must(cmd.Flags().GetBool("yes")) {
				var overwrite bool
				err := survey.AskOne(&survey.Confirm{
					Message: fmt.Sprintf("%s already exists. Overwrite?", destination),
					Default: false,
				}, &overwrite)
				if err != nil {
					return err
				}
				if !overwrite {
					return nil
				}
			}

			out := cmd.OutOrStdout()
			width := util.TerminalWidth()
			registry := transfer.NewRegistry(transfer.NewDownloader(req.Config.Converter))

			result, err := registry.Run(ctx, req, func(event transfer.Event) {
				if !event.Terminal() {
					fmt.Fprint(out, "\r"+progressLine(width, event))
				}
			})
			fmt.Fprintln(out)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s Download and conversion done: '%s' saved\n", icon.Get(icon.Success), result.ArtifactPath)

			if viper.GetBool(key.TransferSaveHistory) {
				if _, err := history.Save(show, result.ArtifactPath); err != nil {
					log.Warn(err)
				}
			}

			return nil
		}))
	},
}

// progressLine renders "Download and convert: [#####     ] 25% ETA: 10s/40s"
// with a bar taking 60% of width.
func progressLine(width int, event transfer.Event) string {
	barWidth := util.Max(width*6/10, 10)
	fraction := util.Min(util.Max(event.Estimate.Fraction, 0), 1)
	filled := int(fraction * float64(barWidth))

	return fmt.Sprintf("Download and convert: [%s%s] %d%% ETA: %ds/%ds",
		strings.Repeat("#", filled),
		strings.Repeat(" ", barWidth-filled),
		int(fraction*100),
		int(event.Progress.Elapsed),
		event.Estimate.ETA,
	)
}
