package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
)

var (
	validSkillCategories = map[string]struct{}{
		domain.SkillCategoryFrontend: {},
		domain.SkillCategoryBackend:  {},
		domain.SkillCategoryTools:    {},
		domain.SkillCategoryOther:    {},
	}
	validSkillLevels = map[string]struct{}{
		domain.SkillLevelBeginner:     {},
		domain.SkillLevelIntermediate: {},
		domain.SkillLevelAdvanced:     {},
	}
)

type SkillService struct {
	repo   ports.SkillRepository
	cache  ports.ContentCache
	logger zerolog.Logger
	now    func() time.Time
}

func NewSkillService(repo ports.SkillRepository, cache ports.ContentCache, logger zerolog.Logger) *SkillService {
	if cache == nil {
		cache = NopCache{}
	}
	return &SkillService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// List returns skills ordered by category, then name.
func (s *SkillService) List(ctx context.Context) ([]domain.Skill, error) {
	return cachedRead(ctx, s.cache, s.logger, CacheKeySkills, s.repo.List)
}

func (s *SkillService) Create(ctx context.Context, in ports.CreateSkillInput) (*domain.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}

	category := in.Category
	if category == "" {
		category = domain.SkillCategoryOther
	}
	if _, ok := validSkillCategories[category]; !ok {
		return nil, domain.NewValidationError("category must be one of: frontend backend tools other")
	}

	level := in.Level
	if level == "" {
		level = domain.SkillLevelIntermediate
	}
	if _, ok := validSkillLevels[level]; !ok {
		return nil, domain.NewValidationError("level must be one of: beginner intermediate advanced")
	}

	now := s.now().UTC()
	skill := &domain.Skill{
		Name:      name,
		Category:  category,
		Level:     level,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, skill); err != nil {
		s.logger.Error().Err(err).Msg("failed to create skill")
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, CacheKeySkills)
	return skill, nil
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, CacheKeySkills)
	return nil
}
