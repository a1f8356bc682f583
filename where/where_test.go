package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Directory resolvers create what they return", t, func() {
		for name, resolve := range map[string]func() string{
			"Config":   Config,
			"Cache":    Cache,
			"Listings": Listings,
			"Logs":     Logs,
			"Sources":  Sources,
			"Temp":     Temp,
		} {
			Convey(name+"()", func() {
				path := resolve()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}
	})

	Convey("File resolvers live under their parent directory", t, func() {
		So(filepath.Dir(History()), ShouldEqual, Config())
		So(filepath.Dir(Queries()), ShouldEqual, Cache())
	})

	Convey("VOD_CONFIG_PATH overrides the config directory", t, func() {
		custom := filepath.Join(os.TempDir(), "vod-custom-config")
		So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
		defer os.Unsetenv(EnvConfigPath)

		So(Config(), ShouldEqual, custom)
		So(Sources(), ShouldEqual, filepath.Join(custom, "sources"))
	})
}
