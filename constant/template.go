package constant

// Global functions a catalog script must define.
const (
	CategoriesFn = "Categories"
	ChannelsFn   = "Channels"
	ListShowsFn  = "ListShows"
	GetShowFn    = "GetShow"
	ShowStreamFn = "ShowStream"
)

// SourceTemplate is a text/template used by "sources gen" to scaffold a catalog script.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias show_summary { id: string, title: string, image: string|nil }
---@alias pair { key: string, value: string|number|boolean|pair[] }
---@alias entry { key: string, value: string, kind: "plain"|"link"|"image" }
---@alias crew { role: string, kind: string, name: string }
---@alias show { id: string, title: string, image: string|nil, metadata: pair[], summary: entry[], crew: crew[], synopsis: string|string[] }
---@alias stream { url: string, headers: table<string, string>|nil }


----- IMPORTS -----
--- END IMPORTS ---



----- VARIABLES -----
local base = "{{ .URL }}"
--- END VARIABLES ---



----- MAIN -----

--- Lists the catalog categories.
-- @return string[]
function {{ .CategoriesFn }}()
	return {}
end


--- Lists the catalog channels.
-- @return string[]
function {{ .ChannelsFn }}()
	return {}
end


--- Lists shows matching the given filter.
-- @param filter { category: string|nil, channel: string|nil, query: string, sort: "alpha"|"relevance", page: number, limit: number }
-- @return show_summary[]
function {{ .ListShowsFn }}(filter)
	return {}
end


--- Gets the full description of a show.
-- @param id string
-- @return show
function {{ .GetShowFn }}(id)
	return { id = id, title = id, metadata = {}, summary = {}, crew = {}, synopsis = {} }
end


--- Resolves the media stream of a show (HLS playlist or direct mp4).
-- @param id string
-- @return stream
function {{ .ShowStreamFn }}(id)
	return { url = base }
end

--- END MAIN ---




----- HELPERS -----
--- END HELPERS ---

-- ex: ts=4 sw=4 et filetype=lua
`
