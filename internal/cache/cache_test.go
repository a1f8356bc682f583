package cache

import (
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vod-cli/vod/filesystem"
	"github.com/vod-cli/vod/key"
)

func init() {
	filesystem.SetMemMapFs()
}

type entry struct {
	Titles []string `json:"titles"`
}

func TestCache(t *testing.T) {
	Convey("Given a cache living six hours", t, func() {
		viper.Set(key.CatalogCacheHours, 6)
		Reset(func() { lo.Must0(Clear()) })

		k := GenerateKey("france2", "Le Journal")

		Convey("Keys ignore case and spaces", func() {
			So(GenerateKey("France2", "le journal"), ShouldEqual, GenerateKey("france2", "lejournal"))
			So(GenerateKey("a", "b"), ShouldNotEqual, GenerateKey("b", "a"))
		})

		Convey("A written entry can be read back", func() {
			So(Write(k, entry{Titles: []string{"a", "b"}}), ShouldBeNil)

			var got entry
			So(Read(k, &got), ShouldBeTrue)
			So(got.Titles, ShouldResemble, []string{"a", "b"})
		})

		Convey("A missing entry is a miss", func() {
			var got entry
			So(Read(GenerateKey("nothing"), &got), ShouldBeFalse)
		})

		Convey("Expired entries are misses and are collected", func() {
			So(Write(k, entry{}), ShouldBeNil)
			old := time.Now().Add(-7 * time.Hour)
			So(filesystem.API().Chtimes(path(k), old, old), ShouldBeNil)

			var got entry
			So(Read(k, &got), ShouldBeFalse)
			So(CollectGarbage(), ShouldEqual, 1)
		})

		Convey("A zero lifetime disables the cache", func() {
			viper.Set(key.CatalogCacheHours, 0)
			So(Write(k, entry{Titles: []string{"a"}}), ShouldBeNil)

			var got entry
			So(Read(k, &got), ShouldBeFalse)
		})
	})
}
