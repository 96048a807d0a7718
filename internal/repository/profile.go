package repository

import (
	"context"

	"github.com/osse101/HerbRun_Go/internal/domain"
)

// Profile defines data access for saved herb profiles
type Profile interface {
	Get(ctx context.Context, name string) (*domain.HerbProfile, error)
	List(ctx context.Context) ([]domain.HerbProfile, error)
	// Upsert creates or replaces a profile and fills in its timestamps.
	Upsert(ctx context.Context, profile *domain.HerbProfile) error
	Delete(ctx context.Context, name string) error
}
