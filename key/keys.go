// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Search Behavior - these keys govern query construction and result retrieval.
const (
	SearchDefaultQuery = "search.default_query"
	SearchLimit        = "search.limit"
	SearchQuality      = "search.quality"
	SearchSaveQueries  = "search.save_queries"
)

// API Access - these keys manage Tenor API authentication.
const (
	APIKey = "api.key"
)

// Download Behavior - these keys configure the file delivery sink.
const (
	DownloadsDir = "downloads.dir"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the result browser's styling and logic.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURLs    = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern general command-line behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
