// Package scraper compiles catalog scripts and keeps them up to date.
package scraper

import (
	"bytes"
	"sync"

	"github.com/vod-cli/vod/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// PreCompileAndLoad runs the script at scriptPath in L. The compiled prototype
// is kept for the lifetime of the process, so loading the same script again
// skips parsing.
func PreCompileAndLoad(L *lua.LState, scriptPath string) error {
	proto, err := compile(scriptPath)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

func compile(scriptPath string) (*lua.FunctionProto, error) {
	if cached, ok := bytecodeCache.Load(scriptPath); ok {
		return cached.(*lua.FunctionProto), nil
	}

	contents, err := filesystem.API().ReadFile(scriptPath)
	if err != nil {
		return nil, err
	}

	chunk, err := parse.Parse(bytes.NewReader(contents), scriptPath)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, scriptPath)
	if err != nil {
		return nil, err
	}

	bytecodeCache.Store(scriptPath, proto)
	return proto, nil
}

// Forget drops the compiled prototype of scriptPath, after it was replaced or removed.
func Forget(scriptPath string) {
	bytecodeCache.Delete(scriptPath)
}
