package bootstrap

import "time"

// =============================================================================
// Logger Configuration
// =============================================================================

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingHerbRun     = "Starting HerbRun"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// =============================================================================
// Service Wiring
// =============================================================================

const (
	// MigrationTimeout bounds how long startup waits for schema migrations
	MigrationTimeout = 2 * time.Minute
)

// Log messages for service wiring
const (
	LogMsgProfilesDisabled = "No database configured, saved profiles are disabled"
	LogMsgServicesReady    = "Services initialized"
)

// Error messages for service wiring
const (
	ErrMsgConnectDatabase = "failed to connect to database"
	ErrMsgRunMigrations   = "failed to run migrations"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 30 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
