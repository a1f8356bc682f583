// Command vod browses VOD catalogs, inspects shows and downloads them as mp4.
package main

import (
	"github.com/samber/lo"
	"github.com/vod-cli/vod/cmd"
	"github.com/vod-cli/vod/config"
	"github.com/vod-cli/vod/internal/cache"
	"github.com/vod-cli/vod/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
