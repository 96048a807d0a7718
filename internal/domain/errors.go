package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgConfig             = "invalid configuration"
	ErrMsgInvalidConfig      = "invalid config file"
	ErrMsgNoPatches          = "no herb patches configured"
	ErrMsgMagicLevelRequired = "magic level required for resurrect crops"
	ErrMsgSpellLevelTooLow   = "magic level too low for spell"
	ErrMsgInvalidLevel       = "level must be between 1 and 99"
	ErrMsgNoPlayer           = "no player given and no default player configured"
	ErrMsgUnknownHerb        = "unknown herb"
	ErrMsgUnknownPatch       = "unknown herb patch"
	ErrMsgUnknownSkill       = "unknown skill"
	ErrMsgUnknownConfigKey   = "unknown config key"
	ErrMsgProfileNotFound    = "profile not found"
	ErrMsgInvalidProfileName = "invalid profile name"
	ErrMsgInvalidProbability = "invalid probability"
	ErrMsgInvalidTargetRange = "invalid target range"
	ErrMsgInvalidRolls       = "rolls per attempt must be a non-negative number"

	// External data errors
	ErrMsgPriceLookup    = "price lookup failed"
	ErrMsgHiscoreLookup  = "hiscore lookup failed"
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgItemNotFound   = "item not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// ErrConfig is the parent of every configuration error. Configuration errors
// are reported verbatim to the caller and never degraded into defaults.
var ErrConfig = errors.New(ErrMsgConfig)

// Configuration errors
var (
	ErrInvalidConfig      = configError(ErrMsgInvalidConfig)
	ErrNoPatches          = configError(ErrMsgNoPatches)
	ErrMagicLevelRequired = configError(ErrMsgMagicLevelRequired)
	ErrSpellLevelTooLow   = configError(ErrMsgSpellLevelTooLow)
	ErrInvalidLevel       = configError(ErrMsgInvalidLevel)
	ErrNoPlayer           = configError(ErrMsgNoPlayer)
	ErrUnknownHerb        = configError(ErrMsgUnknownHerb)
	ErrUnknownPatch       = configError(ErrMsgUnknownPatch)
	ErrUnknownSkill       = configError(ErrMsgUnknownSkill)
	ErrUnknownConfigKey   = configError(ErrMsgUnknownConfigKey)
	ErrInvalidProfileName = configError(ErrMsgInvalidProfileName)
	ErrInvalidProbability = configError(ErrMsgInvalidProbability)
	ErrInvalidTargetRange = configError(ErrMsgInvalidTargetRange)
	ErrInvalidRolls       = configError(ErrMsgInvalidRolls)
)

// External data errors
var (
	ErrPriceLookup    = errors.New(ErrMsgPriceLookup)
	ErrHiscoreLookup  = errors.New(ErrMsgHiscoreLookup)
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
)

// Storage errors
var (
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)
	ErrDatabaseError   = errors.New(ErrMsgDatabaseError)
)

// IsConfigError reports whether err is, or wraps, a configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}

type configErr struct {
	msg string
}

func configError(msg string) error {
	return &configErr{msg: msg}
}

func (e *configErr) Error() string { return e.msg }

func (e *configErr) Unwrap() error { return ErrConfig }
