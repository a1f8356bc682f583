// Package where resolves the directories and files the application reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vod-cli/vod/constant"
	"github.com/vod-cli/vod/filesystem"
)

// EnvConfigPath overrides the configuration directory when set.
const EnvConfigPath = "VOD_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding vod.toml, the catalog scripts and the logs.
// It follows os.UserConfigDir unless VOD_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Vod))
}

// Cache is the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Vod))
}

// Listings holds cached catalog listings.
func Listings() string {
	return ensureDir(filepath.Join(Cache(), "listings"))
}

// Logs is where dated log files are written.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Sources holds the Lua catalog scripts.
func Sources() string {
	return ensureDir(filepath.Join(Config(), "sources"))
}

// History is the file recording completed transfers.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries is the file backing search suggestions.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp holds intermediate transport streams while a transfer runs.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Vod))
}
