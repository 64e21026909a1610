package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
)

type ProjectService struct {
	repo   ports.ProjectRepository
	cache  ports.ContentCache
	logger zerolog.Logger
	now    func() time.Time
}

func NewProjectService(repo ports.ProjectRepository, cache ports.ContentCache, logger zerolog.Logger) *ProjectService {
	if cache == nil {
		cache = NopCache{}
	}
	return &ProjectService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// List returns projects newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return cachedRead(ctx, s.cache, s.logger, CacheKeyProjects, s.repo.List)
}

func (s *ProjectService) Create(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
	if err := validateProject(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	project := projectFromInput(in)
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, CacheKeyProjects)

	s.logger.Info().Str("project_id", project.ID).Msg("project created")
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, in ports.ProjectInput) (*domain.Project, error) {
	if err := validateProject(in); err != nil {
		return nil, err
	}

	project := projectFromInput(in)
	project.ID = id
	project.UpdatedAt = s.now().UTC()

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, CacheKeyProjects)
	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, CacheKeyProjects)
	return nil
}

func validateProject(in ports.ProjectInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.NewValidationError("name is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return domain.NewValidationError("description is required")
	}
	return nil
}

func projectFromInput(in ports.ProjectInput) *domain.Project {
	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return &domain.Project{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Technologies: technologies,
		LiveLink:     in.LiveLink,
		GitHubLink:   in.GitHubLink,
		Image:        in.Image,
		Featured:     in.Featured,
	}
}
