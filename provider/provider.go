// Package provider finds the installed catalog scripts and opens them.
package provider

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/provider/custom"
	"github.com/vod-cli/vod/source"
	"github.com/vod-cli/vod/util"
	"github.com/vod-cli/vod/where"
)

// CustomProviderExtension is the extension of catalog scripts.
const CustomProviderExtension = ".lua"

// Provider is an installed catalog script.
type Provider struct {
	ID           string
	Name         string
	Path         string
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Customs lists the installed catalog scripts by name.
func Customs() []*Provider {
	providers, err := CustomProviders()
	if err != nil {
		return nil
	}
	return providers
}

// Get finds a provider by name or by script file name.
func Get(name string) (*Provider, bool) {
	name = strings.TrimSuffix(name, CustomProviderExtension)
	return lo.Find(Customs(), func(p *Provider) bool {
		return p.Name == name
	})
}

func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != CustomProviderExtension {
			continue
		}

		path := filepath.Join(where.Sources(), f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:   custom.IDfromName(name),
			Name: name,
			Path: path,
			CreateSource: func() (source.Source, error) {
				return custom.LoadSource(path)
			},
		})
	}

	slices.SortFunc(providers, func(a, b *Provider) int {
		return strings.Compare(a.Name, b.Name)
	})

	return providers, nil
}

// Default is the provider named by catalog.source, or the only one installed.
func Default() (*Provider, error) {
	if name := viper.GetString(key.CatalogSource); name != "" {
		p, ok := Get(name)
		if !ok {
			return nil, errs.UserInput("catalog %q is not installed, see 'vod sources list'", name)
		}
		return p, nil
	}

	installed := Customs()
	switch len(installed) {
	case 0:
		return nil, errs.UserInput("no catalog installed in %s, see 'vod sources gen'", where.Sources())
	case 1:
		return installed[0], nil
	default:
		names := lo.Map(installed, func(p *Provider, _ int) string { return p.Name })
		return nil, errs.UserInput("several catalogs are installed (%s), choose one with --source", strings.Join(names, ", "))
	}
}

// Open loads the default catalog.
func Open() (source.Source, error) {
	p, err := Default()
	if err != nil {
		return nil, err
	}
	return p.CreateSource()
}
