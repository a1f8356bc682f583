package catalog

import (
	"iter"

	"github.com/vod-cli/vod/log"
	"github.com/vod-cli/vod/source"
)

// Mode distinguishes browsing a directory from running a search.
type Mode int

const (
	Directory Mode = iota
	Search
)

// Menu is what a directory request without constraints turns into.
type Menu struct {
	Categories []string `json:"categories"`
	Channels   []string `json:"channels"`
}

// Listing is the outcome of Browse: either a Menu or a lazy sequence of shows.
type Listing struct {
	Menu  *Menu
	Query source.Query
	Shows iter.Seq2[*source.Summary, error]
}

// Browser forwards browse requests to a catalog source. It keeps no state of its own.
type Browser struct {
	src source.Source
}

func NewBrowser(src source.Source) *Browser {
	return &Browser{src: src}
}

func (b *Browser) Categories() ([]string, error) {
	return b.src.Categories()
}

func (b *Browser) Channels() ([]string, error) {
	return b.src.Channels()
}

// List returns the shows matching f. Nothing is requested until the sequence is
// ranged over, and every range issues the request again.
func (b *Browser) List(f Filter) iter.Seq2[*source.Summary, error] {
	q := f.Normalize()

	return func(yield func(*source.Summary, error) bool) {
		log.Debugf("listing shows from %s: %+v", b.src.ID(), q)

		shows, err := b.src.List(q)
		if err != nil {
			yield(nil, err)
			return
		}

		for _, show := range shows {
			if !yield(show, nil) {
				return
			}
		}
	}
}

// Browse validates f and either builds the category and channel menu or
// prepares the listing. The menu is returned for an explicit "help" value, and
// in Directory mode when neither a category nor a channel was given.
func (b *Browser) Browse(f Filter, mode Mode) (Listing, error) {
	if err := f.Validate(); err != nil {
		return Listing{}, err
	}

	if f.wantsHelp() || (mode == Directory && f.unconstrained()) {
		menu, err := b.Menu()
		if err != nil {
			return Listing{}, err
		}
		return Listing{Menu: menu}, nil
	}

	return Listing{Query: f.Normalize(), Shows: b.List(f)}, nil
}

// Menu fetches the categories and then the channels.
func (b *Browser) Menu() (*Menu, error) {
	categories, err := b.Categories()
	if err != nil {
		return nil, err
	}

	channels, err := b.Channels()
	if err != nil {
		return nil, err
	}

	return &Menu{Categories: categories, Channels: channels}, nil
}

// Collect drains a listing sequence, stopping at the first error.
func Collect(shows iter.Seq2[*source.Summary, error]) ([]*source.Summary, error) {
	var collected []*source.Summary
	for show, err := range shows {
		if err != nil {
			return nil, err
		}
		collected = append(collected, show)
	}
	return collected, nil
}
