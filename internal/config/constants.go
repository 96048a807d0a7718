package config

import "time"

// Environment defaults
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "herbrun-api"
	DefaultVersion     = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultPricesBaseURL   = "https://prices.runescape.wiki/api/v1/osrs"
	DefaultHiscoreURL      = "https://secure.runescape.com/m=hiscore_oldschool/index_lite.ws"
	DefaultUserAgent       = "herbrun (github.com/osse101/HerbRun_Go)"
	DefaultPriceCacheTTL   = 5 * time.Minute
	DefaultHiscoreCacheTTL = 10 * time.Minute
	DefaultHTTPTimeout     = 10 * time.Second

	DefaultRateLimitRPS   = 10
	DefaultRateLimitBurst = 20
	DefaultMaxBodyBytes   = 64 << 10

	DefaultAPIURL = "http://localhost:8080"
)

// User config file
const (
	// EnvUserConfigPath overrides the location of the user config file.
	EnvUserConfigPath = "HERBRUN_CONFIG"

	UserConfigDirName  = "herbrun"
	UserConfigFileName = "herbrun.json"
)
