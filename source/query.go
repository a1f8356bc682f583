package source

import (
	"fmt"

	"github.com/samber/mo"
)

// Sort is the listing order requested from the catalog.
type Sort string

const (
	SortAlpha     Sort = "alpha"
	SortRelevance Sort = "relevance"
)

// ParseSort accepts "alpha" and "relevance".
func ParseSort(s string) (Sort, error) {
	switch Sort(s) {
	case SortAlpha, SortRelevance:
		return Sort(s), nil
	default:
		return "", fmt.Errorf("unknown sort %q, expected alpha or relevance", s)
	}
}

// Query is a listing request as sent to a Source. Absent options mean no constraint.
type Query struct {
	Category mo.Option[string] `json:"category"`
	Channel  mo.Option[string] `json:"channel"`
	Query    string            `json:"query,omitempty"`
	Sort     Sort              `json:"sort"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}
