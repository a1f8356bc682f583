package metadata

import (
	"iter"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Tree is an insertion-ordered mapping from key to Value.
// Overwriting a key keeps its original position.
type Tree struct {
	entries *orderedmap.OrderedMap[string, Value]
}

func NewTree() *Tree {
	return &Tree{entries: orderedmap.New[string, Value]()}
}

// Set stores value under key and returns the tree for chaining.
func (t *Tree) Set(key string, value Value) *Tree {
	t.entries.Set(key, value)
	return t
}

func (t *Tree) Get(key string) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	return t.entries.Get(key)
}

func (t *Tree) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.entries.Len()
}

// Keys lists the keys in insertion order.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, t.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over the entries in insertion order.
func (t *Tree) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if t == nil {
			return
		}
		for pair := t.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the tree as an object whose members keep insertion order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("{}"), nil
	}
	return t.entries.MarshalJSON()
}

func (*Tree) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "show metadata, members in catalog order",
	}
}
