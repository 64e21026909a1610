package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
)

type PostService struct {
	repo   ports.PostRepository
	cache  ports.ContentCache
	logger zerolog.Logger
	now    func() time.Time
}

func NewPostService(repo ports.PostRepository, cache ports.ContentCache, logger zerolog.Logger) *PostService {
	if cache == nil {
		cache = NopCache{}
	}
	return &PostService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return cachedRead(ctx, s.cache, s.logger, CacheKeyPosts, s.repo.List)
}

func (s *PostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	if in.Type != domain.PostTypeImage && in.Type != domain.PostTypeDocument {
		return nil, domain.NewValidationError("type must be one of: image document")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.NewValidationError("title is required")
	}
	if in.File == "" {
		return nil, domain.NewValidationError("file is required")
	}

	post := &domain.Post{
		Type:             in.Type,
		Title:            strings.TrimSpace(in.Title),
		Description:      in.Description,
		File:             in.File,
		OriginalFilename: in.OriginalFilename,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, CacheKeyPosts)

	s.logger.Info().Str("post_id", post.ID).Str("type", post.Type).Msg("post created")
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.logger, CacheKeyPosts)
	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}
