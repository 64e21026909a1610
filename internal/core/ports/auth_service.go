package ports

import (
	"context"
	"time"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	AccessKey string
}

// AuthResult is returned by a successful register or login.
type AuthResult struct {
	Token string
	User  domain.PublicUser
}

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	UserID    string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context) error
}

// PasswordHasher is a one-way salted hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. Malformed digests yield false.
	Verify(plaintext, digest string) bool
}

type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}

// TokenVerifier validates a bearer token. Any failure is domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// AccessGate decides whether a registration code is accepted.
type AccessGate interface {
	Check(code string) bool
}
