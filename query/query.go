// Package query remembers searched text and suggests it back, most used first.
package query

import (
	"slices"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/where"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	mu     sync.Mutex
	memo   = make(map[string][]string)
	cacher = gache.New[map[string]*record](
		&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		},
	)
)

func load() map[string]*record {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

// Remember adds weight to the rank of q. Blank queries are ignored.
func Remember(q string, weight int) error {
	q = normalize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if r, ok := records[q]; ok {
		r.Rank += weight
	} else {
		records[q] = &record{Rank: weight, Query: q}
	}

	clear(memo)
	return cacher.Set(records)
}

// Suggest is the best ranked remembered query matching q.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany lists remembered queries fuzzily matching q, by descending rank.
// It is empty when suggestions are disabled.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return nil
	}

	q = normalize(q)

	mu.Lock()
	defer mu.Unlock()

	if suggestions, ok := memo[q]; ok {
		return suggestions
	}

	matching := lo.Filter(lo.Values(load()), func(r *record, _ int) bool {
		return r.Query != q && fuzzy.Match(q, r.Query)
	})

	slices.SortFunc(matching, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})

	suggestions := lo.Map(matching, func(r *record, _ int) string { return r.Query })
	memo[q] = suggestions
	return suggestions
}

// Clear forgets every query.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	clear(memo)
	return cacher.Set(make(map[string]*record))
}

func normalize(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
