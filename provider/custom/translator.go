package custom

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/vod-cli/vod/metadata"
	"github.com/vod-cli/vod/source"
	lua "github.com/yuin/gopher-lua"
)

func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	switch val.Type() {
	case lua.LTString, lua.LTNumber:
		return val.String()
	default:
		return ""
	}
}

// stringList reads the array part of table, skipping anything that is not a string.
func stringList(table *lua.LTable) []string {
	list := make([]string, 0, table.Len())
	for i := 1; i <= table.Len(); i++ {
		if v := table.RawGetInt(i); v.Type() == lua.LTString {
			list = append(list, v.String())
		}
	}
	return list
}

func tables(table *lua.LTable) []*lua.LTable {
	var list []*lua.LTable
	for i := 1; i <= table.Len(); i++ {
		if t, ok := table.RawGetInt(i).(*lua.LTable); ok {
			list = append(list, t)
		}
	}
	return list
}

func queryToTable(L *lua.LState, q source.Query) *lua.LTable {
	table := L.NewTable()
	if category, ok := q.Category.Get(); ok {
		table.RawSetString("category", lua.LString(category))
	}
	if channel, ok := q.Channel.Get(); ok {
		table.RawSetString("channel", lua.LString(channel))
	}
	table.RawSetString("query", lua.LString(q.Query))
	table.RawSetString("sort", lua.LString(q.Sort))
	table.RawSetString("page", lua.LNumber(q.Page))
	table.RawSetString("limit", lua.LNumber(q.Limit))
	return table
}

func summaryFromTable(table *lua.LTable) (*source.Summary, error) {
	summary := &source.Summary{
		ID:       getString(table, "id"),
		Title:    getString(table, "title"),
		ImageURL: getString(table, "image"),
	}

	if summary.ID == "" || summary.Title == "" {
		return nil, fmt.Errorf("show must have id and title")
	}

	return summary, nil
}

// summariesFromTable fails only when no entry at all could be read.
func summariesFromTable(table *lua.LTable) ([]*source.Summary, error) {
	var (
		shows    []*source.Summary
		failures []error
	)

	for _, entry := range tables(table) {
		summary, err := summaryFromTable(entry)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		shows = append(shows, summary)
	}

	if len(shows) == 0 && len(failures) > 0 {
		return nil, failures[0]
	}

	return shows, nil
}

func showFromTable(table *lua.LTable, requestedID string) (*source.Show, error) {
	show := &source.Show{
		ID:       lo.CoalesceOrEmpty(getString(table, "id"), requestedID),
		Title:    getString(table, "title"),
		ImageURL: getString(table, "image"),
	}

	if show.Title == "" {
		return nil, fmt.Errorf("show %s has no title", show.ID)
	}

	tree, err := treeFromLua(table.RawGetString("metadata"))
	if err != nil {
		return nil, fmt.Errorf("metadata of show %s: %w", show.ID, err)
	}
	show.Metadata = tree

	if entries, ok := table.RawGetString("summary").(*lua.LTable); ok {
		for _, entry := range tables(entries) {
			show.Summary = append(show.Summary, source.Entry{
				Key:   getString(entry, "key"),
				Value: getString(entry, "value"),
				Kind:  entryKind(getString(entry, "kind")),
			})
		}
	}

	if crew, ok := table.RawGetString("crew").(*lua.LTable); ok {
		for _, member := range tables(crew) {
			show.Crew = append(show.Crew, source.CrewMember{
				Role:       getString(member, "role"),
				PersonKind: getString(member, "kind"),
				Name:       getString(member, "name"),
			})
		}
	}

	show.Synopsis = synopsis(table.RawGetString("synopsis"))

	return show, nil
}

func entryKind(kind string) source.EntryKind {
	switch source.EntryKind(kind) {
	case source.EntryLink, source.EntryImage:
		return source.EntryKind(kind)
	default:
		return source.EntryPlain
	}
}

// treeFromLua accepts either an array of {key = ..., value = ...} pairs, which
// keeps the script's order, or a plain table, whose keys are sorted.
func treeFromLua(val lua.LValue) (*metadata.Tree, error) {
	tree := metadata.NewTree()

	table, ok := val.(*lua.LTable)
	if !ok {
		if val == lua.LNil {
			return tree, nil
		}
		return nil, fmt.Errorf("expected a table, got %s", val.Type())
	}

	if table.Len() > 0 {
		for i, pair := range tables(table) {
			k := getString(pair, "key")
			if k == "" {
				return nil, fmt.Errorf("entry %d has no key", i+1)
			}
			value, err := valueFromLua(pair.RawGetString("value"))
			if err != nil {
				return nil, fmt.Errorf("key %s: %w", k, err)
			}
			tree.Set(k, value)
		}
		return tree, nil
	}

	var keys []string
	table.ForEach(func(k, _ lua.LValue) {
		if k.Type() == lua.LTString {
			keys = append(keys, k.String())
		}
	})
	slices.Sort(keys)

	for _, k := range keys {
		value, err := valueFromLua(table.RawGetString(k))
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", k, err)
		}
		tree.Set(k, value)
	}

	return tree, nil
}

func valueFromLua(val lua.LValue) (metadata.Value, error) {
	switch v := val.(type) {
	case lua.LString:
		s := string(v)
		if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
			return metadata.Link(s), nil
		}
		return metadata.Text(s), nil

	case lua.LNumber:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
			return metadata.Scalar(int64(f)), nil
		}
		return metadata.Scalar(f), nil

	case lua.LBool:
		return metadata.Scalar(bool(v)), nil

	case *lua.LTable:
		if kind, value := getString(v, "kind"), v.RawGetString("value"); kind != "" && value.Type() == lua.LTString {
			switch kind {
			case "text":
				return metadata.Text(value.String()), nil
			case "link":
				return metadata.Link(value.String()), nil
			case "image":
				return metadata.Image(value.String()), nil
			}
		}

		tree, err := treeFromLua(v)
		if err != nil {
			return metadata.Value{}, err
		}
		return metadata.Nested(tree), nil

	default:
		if val == lua.LNil {
			return metadata.Scalar(nil), nil
		}
		return metadata.Value{}, fmt.Errorf("unsupported value of type %s", val.Type())
	}
}

// synopsis turns a list of paragraphs, an HTML fragment or plain text into paragraphs.
func synopsis(val lua.LValue) []string {
	switch v := val.(type) {
	case *lua.LTable:
		return lo.Compact(lo.Map(stringList(v), func(p string, _ int) string {
			return strings.TrimSpace(p)
		}))
	case lua.LString:
		return paragraphs(string(v))
	default:
		return nil
	}
}

func paragraphs(text string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return splitBlankLines(text)
	}

	var found []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if t := strings.Join(strings.Fields(p.Text()), " "); t != "" {
			found = append(found, t)
		}
	})

	if len(found) > 0 {
		return found
	}

	return splitBlankLines(doc.Text())
}

func splitBlankLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return lo.FilterMap(strings.Split(text, "\n\n"), func(p string, _ int) (string, bool) {
		p = strings.Join(strings.Fields(p), " ")
		return p, p != ""
	})
}

func streamFromTable(table *lua.LTable) (*source.Stream, error) {
	stream := &source.Stream{
		URL:     getString(table, "url"),
		Headers: make(map[string]string),
	}

	if stream.URL == "" {
		return nil, fmt.Errorf("stream must have url")
	}

	if headers, ok := table.RawGetString("headers").(*lua.LTable); ok {
		headers.ForEach(func(k, v lua.LValue) {
			stream.Headers[k.String()] = v.String()
		})
	}

	return stream, nil
}
