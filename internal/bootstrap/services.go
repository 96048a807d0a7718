package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HerbRun_Go/internal/config"
	"github.com/osse101/HerbRun_Go/internal/database"
	"github.com/osse101/HerbRun_Go/internal/database/postgres"
	"github.com/osse101/HerbRun_Go/internal/farming"
	"github.com/osse101/HerbRun_Go/internal/hiscore"
	"github.com/osse101/HerbRun_Go/internal/prices"
	"github.com/osse101/HerbRun_Go/internal/profile"
	"github.com/osse101/HerbRun_Go/internal/server"
)

// Clients holds the upstream API clients shared by every surface.
type Clients struct {
	Prices  *prices.Client
	Hiscore *hiscore.Client
}

// NewClients builds the price and hiscore clients from cfg.
func NewClients(cfg *config.Config) *Clients {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	return &Clients{
		Prices: prices.NewClient(
			prices.WithBaseURL(cfg.PricesBaseURL),
			prices.WithHTTPClient(httpClient),
			prices.WithTTL(cfg.PriceCacheTTL),
			prices.WithUserAgent(cfg.UserAgent),
		),
		Hiscore: hiscore.NewClient(
			hiscore.WithURL(cfg.HiscoreURL),
			hiscore.WithHTTPClient(httpClient),
			hiscore.WithTTL(cfg.HiscoreCacheTTL),
			hiscore.WithUserAgent(cfg.UserAgent),
		),
	}
}

// Services is everything the API server needs, plus the pool to close on
// shutdown. Pool is nil when no database is configured.
type Services struct {
	Server server.Services
	Pool   *pgxpool.Pool
}

// InitializeServices wires clients, the farming service and, when a database
// is configured, the profile store with its migrations applied.
func InitializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	clients := NewClients(cfg)

	out := &Services{
		Server: server.Services{
			Farm:    farming.NewService(clients.Prices, clients.Hiscore),
			Prices:  clients.Prices,
			Hiscore: clients.Hiscore,
		},
	}

	if !cfg.DatabaseEnabled() {
		slog.Warn(LogMsgProfilesDisabled)
		return out, nil
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, MigrationTimeout)
	defer cancel()
	if err := database.RunMigrations(migrateCtx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgRunMigrations, err)
	}

	out.Pool = pool
	out.Server.DB = pool
	out.Server.Profiles = profile.NewService(postgres.NewProfileRepository(pool))

	slog.Info(LogMsgServicesReady, "profiles", true)
	return out, nil
}
