package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/HerbRun_Go/internal/config"
	"github.com/osse101/HerbRun_Go/internal/logger"
)

// SetupLogger installs the default logger described by cfg and logs the
// startup banner. Output goes to w.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	// Source locations only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	l := logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), w)

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingHerbRun,
		"environment", cfg.Environment,
		"version", cfg.Version)

	// Never log credentials, only where they point
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"db_enabled", cfg.DatabaseEnabled(),
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"prices_url", cfg.PricesBaseURL,
		"hiscore_url", cfg.HiscoreURL)

	return l
}
