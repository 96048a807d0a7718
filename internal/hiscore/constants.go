package hiscore

import "time"

// Client defaults
const (
	DefaultURL       = "https://secure.runescape.com/m=hiscore_oldschool/index_lite.ws"
	DefaultUserAgent = "herbrun (github.com/osse101/HerbRun_Go)"
	DefaultTTL       = 10 * time.Minute
	DefaultTimeout   = 10 * time.Second
	DefaultCacheSize = 128

	// MaxNameLength is the longest display name the game allows.
	MaxNameLength = 12
)
