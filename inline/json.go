package inline

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/vod-cli/vod/catalog"
	"github.com/vod-cli/vod/history"
	"github.com/vod-cli/vod/metadata"
	"github.com/vod-cli/vod/source"
)

// ListOutput is the JSON form of list and search.
type ListOutput struct {
	Source string            `json:"source" jsonschema:"description=Identifier of the catalog that answered."`
	Query  source.Query      `json:"query" jsonschema:"description=Normalized query sent to the catalog."`
	Result []*source.Summary `json:"result"`
}

// MenuOutput is the JSON form of the category and channel menu.
type MenuOutput struct {
	Source string `json:"source"`
	*catalog.Menu
}

// ShowOutput is the JSON form of show.
type ShowOutput struct {
	Source string       `json:"source"`
	Show   *source.Show `json:"show"`
}

// KeyOutput is the JSON form of get.
type KeyOutput struct {
	Show  string          `json:"show" jsonschema:"description=Title of the show."`
	Path  []string        `json:"path"`
	Kind  string          `json:"kind" jsonschema:"enum=keys,enum=subkeys,enum=long text,enum=literal"`
	Keys  []string        `json:"keys,omitempty"`
	Value *metadata.Value `json:"value,omitempty"`
}

// Schemas maps each output name to the value its schema is reflected from.
var Schemas = map[string]any{
	"list":    &ListOutput{},
	"menu":    &MenuOutput{},
	"show":    &ShowOutput{},
	"get":     &KeyOutput{},
	"history": []*history.Record{},
}

// SchemaNames lists the known outputs in order.
func SchemaNames() []string {
	names := lo.Keys(Schemas)
	slices.Sort(names)
	return names
}

// Schema returns the JSON schema of the named output.
func Schema(name string) (*jsonschema.Schema, error) {
	value, ok := Schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown output %q, expected one of %s", name, strings.Join(SchemaNames(), ", "))
	}

	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		switch name := t.Name(); strings.ToLower(name) {
		case "summary", "show", "query", "record", "menu":
			return t.PkgPath()[strings.LastIndex(t.PkgPath(), "/")+1:] + "." + name
		default:
			return name
		}
	}

	return reflector.Reflect(value), nil
}
