// Package profile manages named herb configurations saved through the API.
package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/logger"
	"github.com/osse101/HerbRun_Go/internal/repository"
	"github.com/osse101/HerbRun_Go/internal/validation"
)

// Service defines the profile service interface
type Service interface {
	Get(ctx context.Context, name string) (*domain.HerbProfile, error)
	List(ctx context.Context) ([]domain.HerbProfile, error)
	// Save validates and stores a profile, replacing any profile of the same
	// name.
	Save(ctx context.Context, profile *domain.HerbProfile) error
	Delete(ctx context.Context, name string) error
}

type service struct {
	repo repository.Profile
}

// NewService creates a new profile service
func NewService(repo repository.Profile) Service {
	return &service{repo: repo}
}

// NormalizeName lowercases and trims a profile name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func validateName(name string) error {
	if err := validation.Get().ValidateVar(name, "required,profilename"); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidProfileName, name)
	}
	return nil
}

func (s *service) Get(ctx context.Context, name string) (*domain.HerbProfile, error) {
	name = NormalizeName(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, name)
}

func (s *service) List(ctx context.Context) ([]domain.HerbProfile, error) {
	return s.repo.List(ctx)
}

func (s *service) Save(ctx context.Context, profile *domain.HerbProfile) error {
	log := logger.FromContext(ctx)

	profile.Name = NormalizeName(profile.Name)
	profile.DefaultPlayer = strings.TrimSpace(profile.DefaultPlayer)
	if err := validateName(profile.Name); err != nil {
		return err
	}
	if err := validation.Error(validation.Get().ValidateStruct(profile)); err != nil {
		return err
	}
	if err := profile.Config.Validate(); err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		log.Error("Failed to save profile", "profile", profile.Name, "error", err)
		return err
	}
	log.Info("Profile saved", "profile", profile.Name, "patches", len(profile.Config.Patches))
	return nil
}

func (s *service) Delete(ctx context.Context, name string) error {
	name = NormalizeName(name)
	if err := validateName(name); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Profile deleted", "profile", name)
	return nil
}
