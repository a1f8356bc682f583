package scraper

import (
	"bytes"
	"context"
	"crypto/sha256"
	"io"
	"net/http"

	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/network"
)

// Sync downloads remoteURL and replaces localPath when the content differs.
// It reports whether the file changed. The swap goes through a temporary file
// and a rename, so localPath is never left half written.
func Sync(ctx context.Context, client *http.Client, remoteURL, localPath string) (bool, error) {
	resp, err := network.Get(ctx, client, remoteURL, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	remote, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	if local, err := filesystem.API().ReadFile(localPath); err == nil {
		remoteHash, localHash := sha256.Sum256(remote), sha256.Sum256(local)
		if bytes.Equal(remoteHash[:], localHash[:]) {
			return false, nil
		}
	}

	tmp := localPath + ".tmp"
	if err := filesystem.API().WriteFile(tmp, remote, 0o644); err != nil {
		return false, err
	}

	if err := filesystem.API().Rename(tmp, localPath); err != nil {
		_ = filesystem.API().Remove(tmp)
		return false, err
	}

	Forget(localPath)
	return true, nil
}
