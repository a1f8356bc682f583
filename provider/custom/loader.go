// Package custom runs catalog scripts written in Lua.
package custom

import (
	"fmt"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/vod-cli/vod/constant"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/internal/scraper"
	"github.com/vod-cli/vod/source"
	"github.com/vod-cli/vod/util"
	lua "github.com/yuin/gopher-lua"
)

// RequiredFunctions are the globals every catalog script defines.
var RequiredFunctions = []string{
	constant.CategoriesFn,
	constant.ChannelsFn,
	constant.ListShowsFn,
	constant.GetShowFn,
	constant.ShowStreamFn,
}

// IDfromName is the catalog identifier of the script basename name.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadSource runs the script at path and checks that it defines every
// required function. The returned source owns a Lua state and must be closed.
func LoadSource(path string) (source.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	name := util.FileStem(path)

	if err := scraper.PreCompileAndLoad(state, path); err != nil {
		state.Close()
		return nil, errs.Servicef(err, "load catalog %s", name)
	}

	for _, fn := range RequiredFunctions {
		if state.GetGlobal(fn).Type() != lua.LTFunction {
			state.Close()
			return nil, errs.Servicef(fmt.Errorf("function %s is required but not defined", fn), "load catalog %s", name)
		}
	}

	return newLuaSource(name, state), nil
}
