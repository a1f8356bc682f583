package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have every default registered", func() {
			So(Setup(), ShouldBeNil)
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("transfer.keep_intermediate"), ShouldEqual, "transfer_keep_intermediate")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("It is valid", func() {
			So(Validate(), ShouldBeNil)
		})

		Convey("An unknown sort is rejected", func() {
			viper.Set(key.CatalogSort, "date")
			defer viper.Set(key.CatalogSort, "alpha")
			So(Validate(), ShouldNotBeNil)
		})

		Convey("A zero limit is rejected", func() {
			viper.Set(key.CatalogLimit, 0)
			defer viper.Set(key.CatalogLimit, 20)
			So(Validate(), ShouldNotBeNil)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.TransferTarget]

		Convey("Its environment variable carries the application prefix", func() {
			So(field.Env(), ShouldEqual, "VOD_TRANSFER_TARGET")
		})

		Convey("Its pretty form names the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.TransferTarget)
		})
	})
}

func TestLookup(t *testing.T) {
	Convey("Given the registered keys", t, func() {
		Convey("A known key is found", func() {
			field, err := Lookup(key.CatalogLimit)
			So(err, ShouldBeNil)
			So(field.Value, ShouldEqual, 20)
		})

		Convey("A typo suggests the closest key", func() {
			_, err := Lookup("catalog.limt")
			So(err, ShouldNotBeNil)
			So(errs.IsUserInput(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, key.CatalogLimit)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse follows the type of the default", t, func() {
		limit := Default[key.CatalogLimit]
		v, err := limit.Parse([]string{"42"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 42)

		_, err = limit.Parse([]string{"many"})
		So(errs.IsUserInput(err), ShouldBeTrue)

		keep := Default[key.TransferKeepIntermediate]
		v, err = keep.Parse([]string{"true"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		target := Default[key.TransferTarget]
		v, err = target.Parse([]string{"/videos"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "/videos")

		_, err = target.Parse(nil)
		So(err, ShouldNotBeNil)
	})
}

func TestSet(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("A valid value is written to the config file", func() {
			So(Set(key.CatalogLimit, 50), ShouldBeNil)
			defer viper.Set(key.CatalogLimit, 20)

			exists, err := filesystem.API().Exists(File())
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("An invalid value is rolled back", func() {
			err := Set(key.CatalogSort, "date")
			So(errs.IsUserInput(err), ShouldBeTrue)
			So(viper.GetString(key.CatalogSort), ShouldEqual, "alpha")
		})
	})
}
