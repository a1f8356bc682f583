// Package catalog turns a browse filter into calls against a catalog source.
package catalog

import (
	"strings"

	"github.com/samber/mo"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/source"
)

const (
	// All means no constraint on the category or channel.
	All = "all"

	// Help asks for the category and channel menu instead of a listing.
	Help = "help"
)

// Filter is the user's browse selection. Category and Channel may hold All.
type Filter struct {
	Category string
	Channel  string
	Query    string
	Sort     source.Sort
	Page     int
	Limit    int
}

// Validate checks the paging bounds and the sort.
func (f Filter) Validate() error {
	if f.Page < 1 {
		return errs.UserInput("page must be at least 1, got %d", f.Page)
	}
	if f.Limit < 1 {
		return errs.UserInput("limit must be at least 1, got %d", f.Limit)
	}
	if f.Sort != "" {
		if _, err := source.ParseSort(string(f.Sort)); err != nil {
			return errs.UserInput("%s", err)
		}
	}
	return nil
}

// Normalize builds the query sent to the source: All becomes an absent
// constraint and a non-empty query forces relevance ordering.
func (f Filter) Normalize() source.Query {
	q := source.Query{
		Category: constraint(f.Category),
		Channel:  constraint(f.Channel),
		Query:    strings.TrimSpace(f.Query),
		Sort:     f.Sort,
		Page:     f.Page,
		Limit:    f.Limit,
	}

	switch {
	case q.Query != "":
		q.Sort = source.SortRelevance
	case q.Sort == "":
		q.Sort = source.SortAlpha
	}

	return q
}

func constraint(value string) mo.Option[string] {
	value = strings.TrimSpace(value)
	if value == "" || value == All {
		return mo.None[string]()
	}
	return mo.Some(value)
}

func (f Filter) wantsHelp() bool {
	return f.Category == Help || f.Channel == Help
}

func (f Filter) unconstrained() bool {
	return strings.TrimSpace(f.Category) == "" && strings.TrimSpace(f.Channel) == ""
}
