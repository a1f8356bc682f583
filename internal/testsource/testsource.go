// Package testsource is an in-memory catalog used by tests.
package testsource

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/source"
)

// Source serves a fixed set of shows and records every listing query.
type Source struct {
	CategoryList []string
	ChannelList  []string
	Shows        []*source.Show
	Streams      map[string]*source.Stream

	// Err, when set, is returned by every call.
	Err error

	mu      sync.Mutex
	queries []source.Query
	closed  bool
}

func (s *Source) Name() string { return "Test catalog" }
func (s *Source) ID() string   { return "test" }

func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Source) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Source) Categories() ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.CategoryList, nil
}

func (s *Source) Channels() ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.ChannelList, nil
}

// Queries returns the listing queries received so far.
func (s *Source) Queries() []source.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.queries)
}

// List matches the query against show titles; category and channel are
// matched against the "category" and "channel" metadata keys.
func (s *Source) List(q source.Query) ([]*source.Summary, error) {
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	matching := lo.Filter(s.Shows, func(show *source.Show, _ int) bool {
		if q.Query != "" && !strings.Contains(strings.ToLower(show.Title), strings.ToLower(q.Query)) {
			return false
		}
		if category, ok := q.Category.Get(); ok && !hasText(show, "category", category) {
			return false
		}
		if channel, ok := q.Channel.Get(); ok && !hasText(show, "channel", channel) {
			return false
		}
		return true
	})

	if q.Sort == source.SortAlpha {
		slices.SortStableFunc(matching, func(a, b *source.Show) int {
			return strings.Compare(a.Title, b.Title)
		})
	}

	start := min((q.Page-1)*q.Limit, len(matching))
	end := min(start+q.Limit, len(matching))

	return lo.Map(matching[start:end], func(show *source.Show, _ int) *source.Summary {
		return &source.Summary{ID: show.ID, Title: show.Title, ImageURL: show.ImageURL}
	}), nil
}

func (s *Source) Show(id string) (*source.Show, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	show, ok := lo.Find(s.Shows, func(show *source.Show) bool { return show.ID == id })
	if !ok {
		return nil, errs.Servicef(fmt.Errorf("show %s does not exist", id), "get show")
	}
	show.Source = s
	return show, nil
}

func (s *Source) Stream(show *source.Show) (*source.Stream, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stream, ok := s.Streams[show.ID]
	if !ok {
		return nil, errs.Servicef(fmt.Errorf("no stream for show %s", show.ID), "resolve stream")
	}
	return stream, nil
}

func hasText(show *source.Show, key, want string) bool {
	value, ok := show.Metadata.Get(key)
	if !ok {
		return false
	}
	text, _ := value.Text()
	return text == want
}
