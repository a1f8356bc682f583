// Package metadata models a show's description as an ordered tree of tagged values.
package metadata

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindText Kind = iota
	KindLink
	KindImage
	KindNested
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindLink:
		return "link"
	case KindImage:
		return "image"
	case KindNested:
		return "nested"
	case KindScalar:
		return "scalar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one metadata entry. Build it with Text, Link, Image, Nested or Scalar.
type Value struct {
	kind   Kind
	text   string
	tree   *Tree
	scalar any
}

func Text(s string) Value { return Value{kind: KindText, text: s} }

func Link(url string) Value { return Value{kind: KindLink, text: url} }

func Image(url string) Value { return Value{kind: KindImage, text: url} }

// Nested wraps a sub-tree. A nil tree is treated as empty.
func Nested(t *Tree) Value {
	if t == nil {
		t = NewTree()
	}
	return Value{kind: KindNested, tree: t}
}

// Scalar holds an opaque value such as a number or a boolean.
func Scalar(v any) Value { return Value{kind: KindScalar, scalar: v} }

func (v Value) Kind() Kind { return v.kind }

// Tree returns the sub-tree of a nested value.
func (v Value) Tree() (*Tree, bool) {
	if v.kind != KindNested {
		return nil, false
	}
	return v.tree, true
}

// Text returns the string of a text, link or image value.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindText, KindLink, KindImage:
		return v.text, true
	default:
		return "", false
	}
}

// String is the plain conversion used for literal rendering.
func (v Value) String() string {
	switch v.kind {
	case KindNested:
		return fmt.Sprintf("%v", v.tree.Keys())
	case KindScalar:
		if v.scalar == nil {
			return ""
		}
		return fmt.Sprint(v.scalar)
	default:
		return v.text
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNested:
		return v.tree.MarshalJSON()
	case KindScalar:
		return json.Marshal(v.scalar)
	default:
		return json.Marshal(v.text)
	}
}

// JSONSchema describes the encoded form: a string, a nested object or a scalar.
func (Value) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "object"},
			{Type: "number"},
			{Type: "boolean"},
		},
	}
}
