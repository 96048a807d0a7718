package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Lookup metric names
const (
	MetricNamePriceFetches     = "herbrun_price_fetches_total"
	MetricNamePriceCacheHits   = "herbrun_price_cache_hits_total"
	MetricNamePriceCacheMisses = "herbrun_price_cache_misses_total"
	MetricNameHiscoreLookups   = "herbrun_hiscore_lookups_total"
)

// Business metric names
const (
	MetricNameHerbCalculations = "herbrun_herb_calculations_total"
	MetricNameDiscordCommands  = "herbrun_discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Lookup metric help text
const (
	HelpTextPriceFetches     = "Total number of price API fetches by endpoint and result"
	HelpTextPriceCacheHits   = "Total number of price lookups served from cache"
	HelpTextPriceCacheMisses = "Total number of price lookups that missed the cache"
	HelpTextHiscoreLookups   = "Total number of hiscore lookups by result"
)

// Business metric help text
const (
	HelpTextHerbCalculations = "Total number of herb table calculations by result"
	HelpTextDiscordCommands  = "Total number of Discord commands handled by name and result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelEndpoint = "endpoint"
	LabelResult   = "result"
	LabelCommand  = "command"
)

// Result label values
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultNotFound = "not_found"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
