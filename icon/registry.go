package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Lua Icon = iota
	Fail
	Success
	Progress
	Search
	Link
	Image
	Download
	Mark
	Folder
)

var icons = map[Icon]*iconDef{
	Lua: {
		emoji:   "🌙",
		nerd:    "",
		plain:   "Lua",
		kaomoji: "(=^･ω･^=)",
		squares: "🟦",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "...",
		kaomoji: "┐(￣ヘ￣;)┌",
		squares: "🟨",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "⌐■-■",
		squares: "🟪",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "─=≡Σ((( つ•̀ω•́)つ",
		squares: "🟦",
	},
	Image: {
		emoji:   "🖼",
		nerd:    "",
		plain:   "[img]",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟫",
	},
	Download: {
		emoji:   "📥",
		nerd:    "",
		plain:   "v",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "🟧",
	},
	Mark: {
		emoji:   "✅",
		nerd:    "",
		plain:   "*",
		kaomoji: "(* ^ ω ^)",
		squares: "🟩",
	},
	Folder: {
		emoji:   "📁",
		nerd:    "",
		plain:   "Dir",
		kaomoji: "ʕ•ᴥ•ʔ",
		squares: "🟫",
	},
}
