package custom

import (
	"encoding/json"

	"github.com/vod-cli/vod/constant"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/internal/cache"
	"github.com/vod-cli/vod/log"
	"github.com/vod-cli/vod/source"
	lua "github.com/yuin/gopher-lua"
)

func (s *luaSource) Categories() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, err := s.call(constant.CategoriesFn, lua.LTTable)
	if err != nil {
		return nil, err
	}
	return stringList(val.(*lua.LTable)), nil
}

func (s *luaSource) Channels() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, err := s.call(constant.ChannelsFn, lua.LTTable)
	if err != nil {
		return nil, err
	}
	return stringList(val.(*lua.LTable)), nil
}

func (s *luaSource) List(q source.Query) ([]*source.Summary, error) {
	encoded, _ := json.Marshal(q)
	cacheKey := cache.GenerateKey(s.ID(), string(encoded))

	var cached []*source.Summary
	if cache.Read(cacheKey, &cached) {
		log.Debugf("listing served from cache for %s", s.ID())
		return cached, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	val, err := s.call(constant.ListShowsFn, lua.LTTable, queryToTable(s.state, q))
	if err != nil {
		return nil, err
	}

	shows, err := summariesFromTable(val.(*lua.LTable))
	if err != nil {
		return nil, errs.Servicef(err, "%s", constant.ListShowsFn)
	}

	if len(shows) > 0 {
		if err := cache.Write(cacheKey, shows); err != nil {
			log.Warnf("caching listing of %s: %v", s.ID(), err)
		}
	}

	return shows, nil
}

func (s *luaSource) Show(id string) (*source.Show, error) {
	if id == "" {
		return nil, errs.UserInput("missing show id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	val, err := s.call(constant.GetShowFn, lua.LTTable, lua.LString(id))
	if err != nil {
		return nil, err
	}

	show, err := showFromTable(val.(*lua.LTable), id)
	if err != nil {
		return nil, errs.Servicef(err, "%s", constant.GetShowFn)
	}

	show.Source = s
	return show, nil
}

func (s *luaSource) Stream(show *source.Show) (*source.Stream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, err := s.call(constant.ShowStreamFn, lua.LTTable, lua.LString(show.ID))
	if err != nil {
		return nil, err
	}

	stream, err := streamFromTable(val.(*lua.LTable))
	if err != nil {
		return nil, errs.Servicef(err, "%s", constant.ShowStreamFn)
	}
	return stream, nil
}
