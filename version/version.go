package version

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/vod-cli/vod/constant"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/network"
	"github.com/vod-cli/vod/util"
	"github.com/vod-cli/vod/where"
)

// ReleaseURL answers with the latest release of the repository.
var ReleaseURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   48 * time.Hour,
	FileSystem: &filesystem.GacheFs{},
})

// Latest is the version of the most recent release, without the "v" prefix.
// The answer is cached for two days.
func Latest(ctx context.Context) (string, error) {
	if cached, expired, err := versionCacher.Get(); err == nil && !expired && cached != "" {
		return cached, nil
	}

	resp, err := network.Get(ctx, network.Client, ReleaseURL, map[string]string{"Accept": "application/vnd.github+json"})
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("latest release has no tag")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(latest)
	return latest, nil
}
