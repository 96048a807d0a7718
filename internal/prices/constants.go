package prices

import "time"

// Client defaults
const (
	DefaultBaseURL   = "https://prices.runescape.wiki/api/v1/osrs"
	DefaultUserAgent = "herbrun (github.com/osse101/HerbRun_Go)"
	DefaultTTL       = 5 * time.Minute
	DefaultTimeout   = 10 * time.Second

	// MaxSearchResults caps the items returned by Search.
	MaxSearchResults = 10
)

// API endpoints, relative to the base URL
const (
	EndpointLatest  = "/latest"
	EndpointMapping = "/mapping"
)

const (
	cacheKeyLatest  = "latest"
	cacheKeyMapping = "mapping"
)
