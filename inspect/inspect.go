// Package inspect resolves key paths inside a show's metadata tree and decides
// how the result is rendered.
package inspect

import (
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/metadata"
	"github.com/vod-cli/vod/source"
)

// LongTextThreshold is the number of characters above which a non-link string is wrapped.
const LongTextThreshold = 70

// WrapWidth is the column long text is wrapped at.
const WrapWidth = 70

// Kind is the rendering policy of a resolved value.
type Kind int

const (
	// KeyListing lists the top-level keys of the show.
	KeyListing Kind = iota

	// SubkeyListing lists the keys of a nested value.
	SubkeyListing

	// LongText is wrapped before printing.
	LongText

	// Literal is printed with its plain string conversion.
	Literal
)

func (k Kind) String() string {
	switch k {
	case KeyListing:
		return "keys"
	case SubkeyListing:
		return "subkeys"
	case LongText:
		return "long text"
	default:
		return "literal"
	}
}

// Resolved is the outcome of a lookup.
type Resolved struct {
	Kind  Kind
	Path  []string
	Value metadata.Value

	// Keys is set for KeyListing and SubkeyListing.
	Keys []string
}

// Text is the string form of a LongText or Literal value.
func (r Resolved) Text() string {
	return r.Value.String()
}

// Lines renders a LongText value as wrapped lines, or a Literal value as one line.
func (r Resolved) Lines() []string {
	switch r.Kind {
	case LongText:
		return Wrap(r.Text(), WrapWidth)
	case Literal:
		return []string{r.Text()}
	default:
		return r.Keys
	}
}

// Resolve walks path inside tree. An empty path lists the top-level keys.
// When any key is missing, or an intermediate value is not nested, the error
// names the last element of path, whichever key actually failed.
func Resolve(tree *metadata.Tree, path []string) (Resolved, error) {
	if len(path) == 0 {
		return Resolved{Kind: KeyListing, Keys: tree.Keys()}, nil
	}

	notFound := errs.NotFound(path[len(path)-1])

	current := tree
	var value metadata.Value
	for i, key := range path {
		if current == nil {
			return Resolved{}, notFound
		}

		v, ok := current.Get(key)
		if !ok {
			return Resolved{}, notFound
		}
		value = v

		if i == len(path)-1 {
			break
		}

		sub, nested := v.Tree()
		if !nested {
			return Resolved{}, notFound
		}
		current = sub
	}

	return Classify(value, path), nil
}

// Classify decides the rendering of a resolved value.
func Classify(value metadata.Value, path []string) Resolved {
	resolved := Resolved{Path: path, Value: value}

	switch value.Kind() {
	case metadata.KindNested:
		tree, _ := value.Tree()
		resolved.Kind = SubkeyListing
		resolved.Keys = tree.Keys()
	case metadata.KindText:
		text, _ := value.Text()
		resolved.Kind = ClassifyString(text)
	default:
		resolved.Kind = Literal
	}

	return resolved
}

// ClassifyString applies the long text rule to a raw string.
func ClassifyString(s string) Kind {
	if utf8.RuneCountInString(s) > LongTextThreshold && !strings.HasPrefix(s, "http:") {
		return LongText
	}
	return Literal
}

// Render resolves path against show. A path whose first key is not a top-level
// key of the show renders the full key listing instead.
func Render(show *source.Show, path []string) (Resolved, error) {
	if len(path) == 0 || !show.Metadata.Has(path[0]) {
		return Resolve(show.Metadata, nil)
	}
	return Resolve(show.Metadata, path)
}

// Wrap breaks s into lines of at most width columns on word boundaries.
func Wrap(s string, width int) []string {
	wrapped := wordwrap.String(strings.Join(strings.Fields(s), " "), width)
	return strings.Split(wrapped, "\n")
}
