// Package config registers the application settings and wires them into viper.
package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/constant"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/where"
)

// EnvKeyReplacer maps configuration keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, environment overrides and the vod.toml file, in increasing precedence.
func Setup() error {
	viper.SetConfigName(constant.Vod)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Vod)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return Validate()
}

// Validate rejects values that the listing and transfer code cannot work with.
func Validate() error {
	if sort := viper.GetString(key.CatalogSort); !lo.Contains([]string{"alpha", "relevance"}, sort) {
		return fmt.Errorf("%s: unknown sort %q, expected alpha or relevance", key.CatalogSort, sort)
	}

	for _, k := range []string{key.CatalogLimit, key.GUILimit} {
		if viper.GetInt(k) < 1 {
			return fmt.Errorf("%s must be at least 1", k)
		}
	}

	if viper.GetInt(key.CatalogCacheHours) < 0 {
		return fmt.Errorf("%s must not be negative", key.CatalogCacheHours)
	}

	return nil
}
