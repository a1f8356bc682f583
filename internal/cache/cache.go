// Package cache keeps catalog responses on disk for a configurable number of hours.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/log"
	"github.com/vod-cli/vod/where"
)

// TTL is the lifetime of an entry. Zero disables the cache.
func TTL() time.Duration {
	return time.Duration(viper.GetInt(key.CatalogCacheHours)) * time.Hour
}

// GenerateKey hashes the parts into a file name. Parts are case and space insensitive.
func GenerateKey(parts ...string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(strings.Join(parts, "\x00")), ""))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

func path(key string) string {
	return filepath.Join(where.Listings(), key+".json")
}

// Read decodes the entry stored under key into target. It reports false when
// the entry is missing, expired or unreadable.
func Read(key string, target any) bool {
	ttl := TTL()
	if ttl <= 0 {
		return false
	}

	info, err := filesystem.API().Stat(path(key))
	if err != nil || time.Since(info.ModTime()) > ttl {
		return false
	}

	data, err := filesystem.API().ReadFile(path(key))
	if err != nil {
		return false
	}

	return json.Unmarshal(data, target) == nil
}

// Write stores data under key, replacing the previous entry in one rename.
func Write(key string, data any) error {
	if TTL() <= 0 {
		return nil
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	target := path(key)
	tmp := target + ".tmp"
	if err := filesystem.API().WriteFile(tmp, encoded, 0o644); err != nil {
		return err
	}

	return filesystem.API().Rename(tmp, target)
}

// CollectGarbage removes expired entries and returns how many were removed.
func CollectGarbage() int {
	ttl := TTL()
	removed := 0

	_ = filesystem.API().Walk(where.Listings(), func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if ttl <= 0 || time.Since(info.ModTime()) > ttl {
			if filesystem.API().Remove(path) == nil {
				removed++
			}
		}
		return nil
	})

	if removed > 0 {
		log.Debugf("removed %d expired cache entries", removed)
	}
	return removed
}

// Clear removes every entry.
func Clear() error {
	return filesystem.API().RemoveAll(where.Listings())
}
