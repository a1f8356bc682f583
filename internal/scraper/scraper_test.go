package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vod-cli/vod/filesystem"
	lua "github.com/yuin/gopher-lua"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPreCompileAndLoad(t *testing.T) {
	Convey("Given a script", t, func() {
		path := "/sources/answer.lua"
		lo.Must0(filesystem.API().WriteFile(path, []byte(`answer = 42`), 0o644))
		Reset(func() { Forget(path) })

		L := lua.NewState()
		defer L.Close()

		Convey("It runs in the state", func() {
			So(PreCompileAndLoad(L, path), ShouldBeNil)
			So(L.GetGlobal("answer").String(), ShouldEqual, "42")
		})

		Convey("The compiled prototype is reused until forgotten", func() {
			So(PreCompileAndLoad(L, path), ShouldBeNil)
			lo.Must0(filesystem.API().WriteFile(path, []byte(`answer = 7`), 0o644))

			So(PreCompileAndLoad(L, path), ShouldBeNil)
			So(L.GetGlobal("answer").String(), ShouldEqual, "42")

			Forget(path)
			So(PreCompileAndLoad(L, path), ShouldBeNil)
			So(L.GetGlobal("answer").String(), ShouldEqual, "7")
		})

		Convey("Syntax errors are reported", func() {
			lo.Must0(filesystem.API().WriteFile("/sources/broken.lua", []byte(`function (`), 0o644))
			So(PreCompileAndLoad(L, "/sources/broken.lua"), ShouldNotBeNil)
		})
	})
}

func TestSync(t *testing.T) {
	Convey("Given a remote script", t, func() {
		body := "answer = 1"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, body)
		}))
		defer server.Close()

		path := "/sources/remote.lua"
		_ = filesystem.API().Remove(path)

		Convey("A missing local file is created", func() {
			changed, err := Sync(context.Background(), server.Client(), server.URL, path)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			So(string(lo.Must(filesystem.API().ReadFile(path))), ShouldEqual, body)

			Convey("and left alone when nothing changed", func() {
				changed, err := Sync(context.Background(), server.Client(), server.URL, path)
				So(err, ShouldBeNil)
				So(changed, ShouldBeFalse)
			})
		})
	})
}
