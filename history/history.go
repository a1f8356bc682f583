// Package history records the shows that were saved.
package history

import (
	"slices"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/source"
	"github.com/vod-cli/vod/where"
)

var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func load() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Get lists the records, most recent first.
func Get() ([]*Record, error) {
	saved, err := load()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	slices.SortFunc(records, func(a, b *Record) int {
		return b.SavedAt.Compare(a.SavedAt)
	})
	return records, nil
}

// Save records that show was saved to path. Saving the same show again
// replaces the previous record.
func Save(show *source.Show, path string) (*Record, error) {
	saved, err := load()
	if err != nil {
		return nil, err
	}

	var size int64
	if info, err := filesystem.API().Stat(path); err == nil {
		size = info.Size()
	}

	record := newRecord(show, path, size)
	saved[record.encode()] = record

	return record, cacher.Set(saved)
}

func Remove(record *Record) error {
	saved, err := load()
	if err != nil {
		return err
	}

	delete(saved, record.encode())
	return cacher.Set(saved)
}

// Clear removes every record.
func Clear() error {
	return cacher.Set(make(map[string]*Record))
}
