// Package key defines the canonical set of configuration identifiers.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 17

// Transfer - destination and conversion of downloaded shows.
const (
	TransferTarget           = "transfer.target"
	TransferConverter        = "transfer.converter"
	TransferKeepIntermediate = "transfer.keep_intermediate"
	TransferSaveHistory      = "transfer.save_history"
)

// Catalog - selection of the catalog script and listing defaults.
const (
	CatalogSource     = "catalog.source"
	CatalogLimit      = "catalog.limit"
	CatalogSort       = "catalog.sort"
	CatalogCacheHours = "catalog.cache_hours"
)

// Interactive client.
const (
	GUILimit = "gui.limit"
)

// Search history.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI execution environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliVerbose      = "cli.verbose"
)
