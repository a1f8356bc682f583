// Package inline writes command results as plain text or JSON.
package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/vod-cli/vod/catalog"
	"github.com/vod-cli/vod/inspect"
	"github.com/vod-cli/vod/source"
)

// Options controls how results are written.
type Options struct {
	Out io.Writer

	// Json switches to JSON output.
	Json bool

	// Image adds image URLs to listings.
	Image bool
}

func writeJson(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteMenu prints the category and channel lists, right aligned.
func WriteMenu(opts Options, src source.Source, menu *catalog.Menu) error {
	if opts.Json {
		return writeJson(opts.Out, MenuOutput{Source: src.ID(), Menu: menu})
	}

	fmt.Fprintln(opts.Out, "Categories:")
	for _, category := range menu.Categories {
		fmt.Fprintf(opts.Out, "%20s\n", category)
	}

	fmt.Fprintln(opts.Out)
	fmt.Fprintln(opts.Out, "Channels:")
	for _, channel := range menu.Channels {
		fmt.Fprintf(opts.Out, "%20s\n", channel)
	}

	return nil
}

// WriteListing prints shows as they arrive, or collects them into one JSON document.
func WriteListing(opts Options, src source.Source, q source.Query, shows iter.Seq2[*source.Summary, error]) error {
	if opts.Json {
		collected, err := catalog.Collect(shows)
		if err != nil {
			return err
		}
		if collected == nil {
			collected = []*source.Summary{}
		}
		return writeJson(opts.Out, ListOutput{Source: src.ID(), Query: q, Result: collected})
	}

	for show, err := range shows {
		if err != nil {
			return err
		}

		line := fmt.Sprintf("%12s -- %-40s", show.ID, show.Title)
		if opts.Image {
			line += " " + show.ImageURL
		}
		fmt.Fprintln(opts.Out, strings.TrimRight(line, " "))
	}

	return nil
}

// WriteShow prints the title, the summary entries, the crew and the synopsis.
func WriteShow(opts Options, show *source.Show) error {
	if opts.Json {
		var id string
		if show.Source != nil {
			id = show.Source.ID()
		}
		return writeJson(opts.Out, ShowOutput{Source: id, Show: show})
	}

	fmt.Fprintf(opts.Out, "%s (%s)\n", show.Title, show.ID)
	if show.ImageURL != "" {
		fmt.Fprintf(opts.Out, "  %s\n", show.ImageURL)
	}

	if len(show.Summary) > 0 {
		fmt.Fprintln(opts.Out)
		for _, entry := range show.Summary {
			switch entry.Kind {
			case source.EntryLink:
				fmt.Fprintf(opts.Out, "  %s: <%s>\n", entry.Key, entry.Value)
			case source.EntryImage:
				fmt.Fprintf(opts.Out, "  %s: [image] %s\n", entry.Key, entry.Value)
			default:
				fmt.Fprintf(opts.Out, "  %s: %s\n", entry.Key, entry.Value)
			}
		}
	}

	if len(show.Crew) > 0 {
		fmt.Fprintln(opts.Out)
		fmt.Fprintln(opts.Out, "Crew:")
		for _, member := range show.Crew {
			fmt.Fprintf(opts.Out, "  %s (%s): %s\n", member.Role, member.PersonKind, member.Name)
		}
	}

	if len(show.Synopsis) > 0 {
		fmt.Fprintln(opts.Out)
		fmt.Fprintln(opts.Out, "Synopsis:")
		for i, paragraph := range show.Synopsis {
			if i > 0 {
				fmt.Fprintln(opts.Out)
			}
			for _, line := range inspect.Wrap(paragraph, inspect.WrapWidth) {
				fmt.Fprintf(opts.Out, "  %s\n", line)
			}
		}
	}

	return nil
}

// WriteResolved prints the outcome of get.
func WriteResolved(opts Options, show *source.Show, resolved inspect.Resolved) error {
	if opts.Json {
		output := KeyOutput{Show: show.Title, Path: resolved.Path, Kind: resolved.Kind.String(), Keys: resolved.Keys}
		if resolved.Kind == inspect.LongText || resolved.Kind == inspect.Literal {
			output.Value = &resolved.Value
		}
		if output.Path == nil {
			output.Path = []string{}
		}
		return writeJson(opts.Out, output)
	}

	if resolved.Kind == inspect.KeyListing {
		fmt.Fprintf(opts.Out, "List of all keys for the show: '%s'\n", show.Title)
		for _, k := range resolved.Keys {
			fmt.Fprintf(opts.Out, "  %s\n", k)
		}
		return nil
	}

	fmt.Fprintf(opts.Out, "Showing %s:\n", strings.Join(resolved.Path, " » "))

	if resolved.Kind == inspect.SubkeyListing {
		fmt.Fprintf(opts.Out, "List of all subkeys for key '%s', show: '%s'\n", resolved.Path[len(resolved.Path)-1], show.Title)
	}

	for _, line := range resolved.Lines() {
		fmt.Fprintf(opts.Out, "  %s\n", line)
	}

	return nil
}
