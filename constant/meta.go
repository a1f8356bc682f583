// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Vod is the canonical application identifier used for filesystem paths and CLI branding.
	Vod = "vod"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with catalog, playlist and segment requests.
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Repository is the upstream project location, used for release checks and script updates.
	Repository = "vod-cli/vod"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
