package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
)

type ProfileService struct {
	repo   ports.ProfileRepository
	cache  ports.ContentCache
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, cache ports.ContentCache, logger zerolog.Logger) *ProfileService {
	if cache == nil {
		cache = NopCache{}
	}
	return &ProfileService{repo: repo, cache: cache, logger: logger}
}

// Get returns the stored profile, or the default one if nothing has been saved yet.
func (s *ProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	return cachedRead(ctx, s.cache, s.logger, CacheKeyProfile, func(ctx context.Context) (*domain.Profile, error) {
		p, err := s.repo.Get(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			def := domain.DefaultProfile()
			return &def, nil
		}
		return p, err
	})
}

func (s *ProfileService) Update(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	if update.Name != nil && *update.Name == "" {
		return nil, domain.NewValidationError("Name cannot be empty")
	}
	p, err := s.repo.Upsert(ctx, update)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to update profile")
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, CacheKeyProfile)
	s.logger.Info().Msg("profile updated")
	return p, nil
}

// EnsureDefault seeds the default profile when the store is empty.
func (s *ProfileService) EnsureDefault(ctx context.Context) error {
	created, err := s.repo.EnsureDefault(ctx)
	if err != nil {
		return err
	}
	if created {
		s.logger.Info().Msg("default profile created")
	}
	return nil
}
