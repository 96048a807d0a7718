package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HerbRun_Go/internal/domain"
)

// ProfileRepository implements repository.Profile
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get retrieves a profile by name
func (r *ProfileRepository) Get(ctx context.Context, name string) (*domain.HerbProfile, error) {
	query := `
		SELECT name, default_player, config, created_at, updated_at
		FROM herb_profiles
		WHERE name = $1
	`
	p, err := scanProfile(r.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get profile: %w", domain.ErrDatabaseError, err)
	}
	return p, nil
}

// List returns every profile ordered by name
func (r *ProfileRepository) List(ctx context.Context) ([]domain.HerbProfile, error) {
	query := `
		SELECT name, default_player, config, created_at, updated_at
		FROM herb_profiles
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list profiles: %w", domain.ErrDatabaseError, err)
	}
	defer rows.Close()

	profiles := []domain.HerbProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan profile: %w", domain.ErrDatabaseError, err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to list profiles: %w", domain.ErrDatabaseError, err)
	}
	return profiles, nil
}

// Upsert creates a profile or replaces its player and config. CreatedAt is
// kept on update.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.HerbProfile) error {
	cfg, err := json.Marshal(profile.Config)
	if err != nil {
		return fmt.Errorf("failed to encode profile config: %w", err)
	}

	query := `
		INSERT INTO herb_profiles (name, default_player, config)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET default_player = EXCLUDED.default_player,
		    config = EXCLUDED.config,
		    updated_at = NOW()
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query, profile.Name, profile.DefaultPlayer, cfg).
		Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to save profile: %w", domain.ErrDatabaseError, err)
	}
	return nil
}

// Delete removes a profile
func (r *ProfileRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM herb_profiles WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("%w: failed to delete profile: %w", domain.ErrDatabaseError, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, name)
	}
	return nil
}

func scanProfile(row pgx.Row) (*domain.HerbProfile, error) {
	var (
		p   domain.HerbProfile
		cfg []byte
	)
	if err := row.Scan(&p.Name, &p.DefaultPlayer, &cfg, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(cfg, &p.Config); err != nil {
		return nil, fmt.Errorf("failed to decode profile config: %w", err)
	}
	return &p, nil
}
