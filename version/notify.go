package version

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/viper"
	"github.com/vod-cli/vod/color"
	"github.com/vod-cli/vod/constant"
	"github.com/vod-cli/vod/icon"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/style"
	"github.com/vod-cli/vod/util"
)

// Notify prints a notice to out when a newer release exists. Failures are silent.
func Notify(ctx context.Context, out io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if c, err := Compare(latest, constant.Version); err != nil || c <= 0 {
		return
	}

	fmt.Fprintf(out, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(you're on %s)", constant.Version)),
		style.Faint("https://github.com/"+constant.Repository+"/releases/tag/v"+latest),
	)
}
