// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Gifgrab is the canonical application identifier used for filesystem paths and CLI branding.
	Gifgrab = "gifgrab"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used for requests to the Tenor API and media CDN.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// SearchEndpoint is the Tenor v1 search API endpoint.
	SearchEndpoint = "https://g.tenor.com/v1/search"

	// DefaultQuery is the search term used when no query tokens are supplied on the command line.
	DefaultQuery = "trending"

	// MaxSearchLimit is the upper bound the Tenor API accepts for the limit parameter.
	MaxSearchLimit = 50
)

// Build metadata, overridden at link time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
