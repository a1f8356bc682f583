package catalog

import (
	"regexp"
	"strings"

	"github.com/vod-cli/vod/source"
)

// Event is something the interactive client asks the catalog for.
type Event interface {
	event()
}

type (
	SelectShow     struct{ ID string }
	SelectCategory struct{ Name string }
	SelectChannel  struct{ Name string }
	GotoList       struct{}

	// SubmitSearch is the content of the search box.
	SubmitSearch struct{ Text string }
)

func (SelectShow) event()     {}
func (SelectCategory) event() {}
func (SelectChannel) event()  {}
func (GotoList) event()       {}
func (SubmitSearch) event()   {}

// Action is what the client must do after an event.
type Action int

const (
	ActionNone Action = iota
	ActionList
	ActionShow
)

// Command is the deterministic result of Dispatch.
type Command struct {
	Action Action
	Filter Filter
	Mode   Mode
	ShowID string
}

var numericID = regexp.MustCompile(`^\d+$`)

// StartFilter is the selection the interactive client opens with.
func StartFilter(limit int) Filter {
	return Filter{
		Category: All,
		Channel:  All,
		Sort:     source.SortAlpha,
		Page:     1,
		Limit:    limit,
	}
}

// Dispatch maps an event onto the next filter and the call to make with it.
// While a transfer runs, GotoList is ignored.
func Dispatch(current Filter, ev Event, transferring bool) Command {
	browse := func(f Filter, mode Mode) Command {
		f.Page = 1
		return Command{Action: ActionList, Filter: f, Mode: mode}
	}

	switch e := ev.(type) {
	case SelectShow:
		return Command{Action: ActionShow, Filter: current, ShowID: strings.TrimSpace(e.ID)}

	case SelectCategory:
		next := current
		next.Category, next.Query, next.Sort = e.Name, "", source.SortAlpha
		return browse(next, Directory)

	case SelectChannel:
		next := current
		next.Channel, next.Query, next.Sort = e.Name, "", source.SortAlpha
		return browse(next, Directory)

	case GotoList:
		if transferring {
			return Command{Action: ActionNone, Filter: current}
		}
		next := current
		next.Query, next.Sort = "", source.SortAlpha
		return browse(next, Directory)

	case SubmitSearch:
		text := strings.TrimSpace(e.Text)
		if strings.HasPrefix(text, "http://") || numericID.MatchString(text) {
			return Dispatch(current, SelectShow{ID: text}, transferring)
		}
		next := current
		next.Query, next.Sort = text, source.SortRelevance
		return browse(next, Search)
	}

	return Command{Action: ActionNone, Filter: current}
}
