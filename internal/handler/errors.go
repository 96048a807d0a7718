package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Parameter validation error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidItemID     = "Invalid item ID"
	ErrMsgInvalidPlayerName = "Invalid player name"
	ErrMsgConfigOrProfile   = "Exactly one of config or profile is required"

	// Profile error messages
	ErrMsgProfilesDisabled = "Profiles are disabled: no database is configured"
)

// Success messages for API responses
const (
	MsgProfileDeleted = "Profile deleted"
)
