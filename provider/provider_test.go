package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/key"
	"github.com/vod-cli/vod/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func install(name string) string {
	path := filepath.Join(where.Sources(), name)
	lo.Must0(filesystem.API().WriteFile(path, []byte("-- "+name), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	Convey("Given the sources directory", t, func() {
		Reset(func() {
			lo.Must0(filesystem.API().RemoveAll(where.Sources()))
			viper.Set(key.CatalogSource, "")
		})

		Convey("An unknown provider is not found", func() {
			_, ok := Get("kek")
			So(ok, ShouldBeFalse)
		})

		Convey("Without any catalog Default is a user input error", func() {
			_, err := Default()
			So(errs.IsUserInput(err), ShouldBeTrue)
		})

		Convey("The only catalog is the default", func() {
			install("tv.lua")
			install("notes.txt")

			p, err := Default()
			So(err, ShouldBeNil)
			So(p.Name, ShouldEqual, "tv")
			So(p.ID, ShouldEqual, "tv custom")
		})

		Convey("Several catalogs need a choice", func() {
			install("tv.lua")
			install("radio.lua")

			_, err := Default()
			So(errs.IsUserInput(err), ShouldBeTrue)

			viper.Set(key.CatalogSource, "radio.lua")
			p, err := Default()
			So(err, ShouldBeNil)
			So(p.Name, ShouldEqual, "radio")

			So(lo.Map(Customs(), func(p *Provider, _ int) string { return p.Name }), ShouldResemble, []string{"radio", "tv"})
		})

		Convey("A configured catalog must exist", func() {
			viper.Set(key.CatalogSource, "missing")
			_, err := Default()
			So(errs.IsUserInput(err), ShouldBeTrue)
		})
	})
}

func TestUpdate(t *testing.T) {
	Convey("Given a script server", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/tv.lua" {
				http.NotFound(w, r)
				return
			}
			_, _ = fmt.Fprint(w, "-- tv v2")
		}))
		defer server.Close()

		install("tv.lua")
		install("radio.lua")
		Reset(func() { lo.Must0(filesystem.API().RemoveAll(where.Sources())) })

		updated, err := Update(context.Background(), server.Client(), server.URL, Customs())

		So(updated, ShouldResemble, []string{"tv"})
		So(errs.IsService(err), ShouldBeTrue)
		So(string(lo.Must(filesystem.API().ReadFile(filepath.Join(where.Sources(), "tv.lua")))), ShouldEqual, "-- tv v2")
	})
}
