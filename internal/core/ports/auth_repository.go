package ports

import (
	"context"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
)

// AuthRepository is the credential store.
type AuthRepository interface {
	// FindByUsernameOrEmail matches identifier against both the username and the email field.
	// The returned user carries PasswordHash. Returns domain.ErrUserNotFound when absent.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	// FindByID returns the user without PasswordHash. Returns domain.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create persists a new user and returns it with its assigned ID.
	// Returns domain.ErrUserExists if the username or email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
