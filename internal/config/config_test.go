package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "herbrun-api", cfg.ServiceName)
		assert.Equal(t, "postgres", cfg.DBUser)
		assert.Empty(t, cfg.DBHost)
		assert.False(t, cfg.DatabaseEnabled(), "No DB_HOST means no database")
		assert.Equal(t, DefaultPricesBaseURL, cfg.PricesBaseURL)
		assert.Equal(t, DefaultHiscoreURL, cfg.HiscoreURL)
		assert.Equal(t, 5*time.Minute, cfg.PriceCacheTTL)
		assert.Equal(t, 10*time.Minute, cfg.HiscoreCacheTTL)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
		assert.Empty(t, cfg.TrustedProxies)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("DB_USER", "customuser")
		t.Setenv("DB_PASSWORD", "custompass")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "customdb")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,,")
		t.Setenv("PRICE_CACHE_TTL", "1m")
		t.Setenv("USER_AGENT", "herbrun-test")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "customuser", cfg.DBUser)
		assert.Equal(t, "custompass", cfg.DBPassword)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "customdb", cfg.DBName)
		assert.True(t, cfg.DatabaseEnabled())
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, time.Minute, cfg.PriceCacheTTL)
		assert.Equal(t, "herbrun-test", cfg.UserAgent)
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", false},
			{"max valid port", "65535", false},
			{"above max port", "65536", false}, // Loads but fails ValidateServer
			{"float port", "8080.5", true},
			{"empty string", "", true},
			{"not a number", "not-a-number", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv("PORT", tc.portValue)

				cfg, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
					assert.Nil(t, cfg)
					assert.Contains(t, err.Error(), "invalid PORT")
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

// TestLoad_DatabasePoolConfig tests that database pool configuration is loaded correctly
func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("loads default database pool configuration", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns, "Should use default max connections")
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime, "Should use default idle time")
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime, "Should use default lifetime")
	})

	t.Run("loads custom database pool configuration", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 1*time.Hour, cfg.DBMaxConnLifetime)
	})

	t.Run("uses defaults for invalid pool config values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("DB_MAX_CONNS", "not-a-number")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")
		t.Setenv("DB_MAX_CONN_LIFETIME", "100")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns, "Should fallback to default for invalid max conns")
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime, "Should fallback to default for invalid idle time")
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime, "Numbers without a unit are not durations")
	})
}

// TestGetDBConnString verifies database connection string generation
func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "testuser",
		DBPassword: "p@ss:word",
		DBHost:     "db.example.com",
		DBPort:     "5433",
		DBName:     "testdb",
	}

	connStr := cfg.GetDBConnString()

	assert.Equal(t, "postgres://testuser:p@ss:word@db.example.com:5433/testdb?sslmode=disable", connStr)
}

func TestConfig_ValidateServer(t *testing.T) {
	valid := func() *Config {
		return &Config{Port: 8080, APIKey: "key", RateLimitRPS: 10, RateLimitBurst: 20, MaxBodyBytes: 1024}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing API key", mutate: func(c *Config) { c.APIKey = "" }, wantErr: "API_KEY"},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, wantErr: "PORT"},
		{name: "port too high", mutate: func(c *Config) { c.Port = 65536 }, wantErr: "PORT"},
		{name: "no rate limit", mutate: func(c *Config) { c.RateLimitRPS = 0 }, wantErr: "RATE_LIMIT"},
		{name: "no body limit", mutate: func(c *Config) { c.MaxBodyBytes = 0 }, wantErr: "MAX_BODY_BYTES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.ValidateServer()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// clearEnvVars unsets every variable Load reads, restoring them afterwards.
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"TRUSTED_PROXIES",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME",
		"PRICES_BASE_URL", "HISCORE_URL", "USER_AGENT", "PRICE_CACHE_TTL", "HISCORE_CACHE_TTL", "HTTP_TIMEOUT",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "MAX_BODY_BYTES",
		"DISCORD_TOKEN", "DISCORD_APP_ID", "API_URL",
	}

	for _, key := range envVars {
		// Setenv registers the restore; Unsetenv then clears it for the test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
