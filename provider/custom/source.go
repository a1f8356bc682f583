package custom

import (
	"fmt"
	"sync"

	"github.com/vod-cli/vod/errs"
	lua "github.com/yuin/gopher-lua"
)

// luaSource is a catalog backed by a Lua state. A Lua state is single
// threaded, so every call holds mu.
type luaSource struct {
	name string

	mu    sync.Mutex
	state *lua.LState
}

func newLuaSource(name string, state *lua.LState) *luaSource {
	return &luaSource{name: name, state: state}
}

func (s *luaSource) Name() string {
	return s.name
}

func (s *luaSource) ID() string {
	return IDfromName(s.name)
}

func (s *luaSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != nil {
		s.state.Close()
		s.state = nil
	}
	return nil
}

// call runs the global function fn and checks the type of its single result.
// The caller holds mu.
func (s *luaSource) call(fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	if s.state == nil {
		return nil, errs.Servicef(fmt.Errorf("catalog %s is closed", s.name), "%s", fn)
	}

	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, errs.Servicef(fmt.Errorf("function %s is not defined", fn), "%s", fn)
	}

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, errs.Servicef(err, "%s", fn)
	}

	retval := s.state.Get(-1)
	s.state.Pop(1)

	if retval.Type() != retType {
		return nil, errs.Servicef(fmt.Errorf("returned %s, expected %s", retval.Type(), retType), "%s", fn)
	}

	return retval, nil
}
