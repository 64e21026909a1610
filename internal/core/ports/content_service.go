package ports

import (
	"context"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
)

type CreatePostInput struct {
	Type             string
	Title            string
	Description      string
	File             string
	OriginalFilename string
}

type CreateSkillInput struct {
	Name     string
	Category string
	Level    string
}

type ProjectInput struct {
	Name         string
	Description  string
	Technologies []string
	LiveLink     string
	GitHubLink   string
	Image        string
	Featured     bool
}

type ProfileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Update(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error)
}

type PostService interface {
	List(ctx context.Context) ([]domain.Post, error)
	Create(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}

type SkillService interface {
	List(ctx context.Context) ([]domain.Skill, error)
	Create(ctx context.Context, in CreateSkillInput) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, in ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, in ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
