package config

import (
	"fmt"
	"path/filepath"
	"strconv"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/constant"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/where"
)

// File is the path of the configuration file.
func File() string {
	return filepath.Join(where.Config(), constant.Vod+".toml")
}

// Closest is the registered key nearest to name by edit distance.
func Closest(name string) string {
	return lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		da, db := levenshtein.Distance(name, a), levenshtein.Distance(name, b)
		if da == db {
			return a < b
		}
		return da < db
	})
}

// Lookup returns the registered field for name, or a user error suggesting the closest key.
func Lookup(name string) (Field, error) {
	field, ok := Default[name]
	if !ok {
		return Field{}, errs.UserInput("unknown key %s, did you mean %s?", name, Closest(name))
	}
	return field, nil
}

// Parse converts raw command line values to the type of the field default.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, errs.UserInput("missing value for %s", f.Key)
	}

	switch f.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		v, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, errs.UserInput("%s expects an integer, got %q", f.Key, raw[0])
		}
		return v, nil
	case bool:
		v, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, errs.UserInput("%s expects a boolean, got %q", f.Key, raw[0])
		}
		return v, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported type %T for %s", f.Value, f.Key)
	}
}

// Set assigns value to name, validates the whole configuration and writes it to File.
// An invalid value is rolled back.
func Set(name string, value any) error {
	previous := viper.Get(name)
	viper.Set(name, value)

	if err := Validate(); err != nil {
		viper.Set(name, previous)
		return errs.UserInput("%s", err)
	}

	return Write()
}

// Write saves the current configuration, creating the file when needed.
func Write() error {
	err := viper.WriteConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return viper.SafeWriteConfig()
	}
	return err
}
