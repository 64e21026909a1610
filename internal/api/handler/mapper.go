package handler

import (
	"github.com/personal-blog/portfolio-api/internal/core/domain"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
)

// --- Request → Service input ---

func toProfileUpdate(r profileRequest) domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Name:       r.Name,
		About:      r.About,
		Bio:        r.Bio,
		Status:     r.Status,
		Image:      r.Image.Value,
		GitHub:     r.GitHub,
		LinkedIn:   r.LinkedIn,
		Twitter:    r.Twitter,
		Email:      r.Email,
		ClearImage: r.Image.Present && r.Image.Value == nil,
	}
}

func toCreatePostInput(r postRequest) ports.CreatePostInput {
	return ports.CreatePostInput{
		Type:             r.Type,
		Title:            r.Title,
		Description:      r.Description,
		File:             r.File,
		OriginalFilename: r.OriginalFilename,
	}
}

func toCreateSkillInput(r skillRequest) ports.CreateSkillInput {
	return ports.CreateSkillInput{
		Name:     r.Name,
		Category: r.Category,
		Level:    r.Level,
	}
}

func toProjectInput(r projectRequest) ports.ProjectInput {
	return ports.ProjectInput{
		Name:         r.Name,
		Description:  r.Description,
		Technologies: r.Technologies,
		LiveLink:     r.LiveLink,
		GitHubLink:   r.GitHubLink,
		Image:        r.Image,
		Featured:     r.Featured,
	}
}
