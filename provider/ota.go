package provider

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/internal/scraper"
	"github.com/vod-cli/vod/log"
)

// DefaultUpdateURL is where "sources update" looks for newer scripts.
const DefaultUpdateURL = "https://raw.githubusercontent.com/vod-cli/sources/main/"

// Update fetches every given provider from baseURL and replaces the changed
// scripts. It returns the names of the updated providers. A failing provider
// does not stop the others; the first failure is returned.
func Update(ctx context.Context, client *http.Client, baseURL string, providers []*Provider) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	var (
		updated []string
		first   error
	)

	for _, p := range providers {
		remote, err := url.JoinPath(baseURL, p.Name+CustomProviderExtension)
		if err != nil {
			return updated, errs.UserInput("invalid update url %q: %s", baseURL, err)
		}

		changed, err := scraper.Sync(ctx, client, remote, p.Path)
		if err != nil {
			log.Warnf("updating %s from %s: %v", p.Name, remote, err)
			if first == nil {
				first = errs.Servicef(err, "update %s", p.Name)
			}
			continue
		}

		if changed {
			log.Infof("updated catalog script %s", p.Name)
			updated = append(updated, p.Name)
		}
	}

	return updated, first
}
