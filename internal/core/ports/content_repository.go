package ports

import (
	"context"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
)

// ProfileRepository stores the single site profile.
type ProfileRepository interface {
	// Get returns the profile or domain.ErrNotFound when none exists.
	Get(ctx context.Context) (*domain.Profile, error)
	// Upsert applies the non-nil fields of update, creating the profile if needed.
	Upsert(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error)
	// EnsureDefault inserts the default profile if the collection is empty.
	EnsureDefault(ctx context.Context) (bool, error)
}

type PostRepository interface {
	List(ctx context.Context) ([]domain.Post, error)
	Create(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
}

type SkillRepository interface {
	List(ctx context.Context) ([]domain.Skill, error)
	Create(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	// Update replaces the mutable fields of the project with the given ID.
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// ContentCache is a best-effort cache for public read responses.
type ContentCache interface {
	// Load decodes the cached value for key into dst. The bool is false on a miss.
	Load(ctx context.Context, key string, dst any) (bool, error)
	Store(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}
