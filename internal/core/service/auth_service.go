package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
)

// AuthService implements registration, login and token verification.
type AuthService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	tokens TokenManager
	gate   ports.AccessGate
	logger zerolog.Logger
	now    func() time.Time
}

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	ports.TokenIssuer
	ports.TokenVerifier
}

func NewAuthService(
	repo ports.AuthRepository,
	hasher ports.PasswordHasher,
	tokens TokenManager,
	gate ports.AccessGate,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		gate:   gate,
		logger: logger,
		now:    time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" || email == "" || in.Password == "" {
		return nil, domain.NewValidationError("Username, email, and password are required")
	}
	if len(in.Password) > MaxPasswordBytes {
		return nil, domain.NewValidationError(fmt.Sprintf("Password must be at most %d bytes", MaxPasswordBytes))
	}

	if !s.gate.Check(in.AccessKey) {
		s.logger.Warn().Str("username", username).Msg("registration rejected: invalid access key")
		return nil, domain.ErrInvalidAccessKey
	}

	// Fast path only; the unique indexes decide under concurrent registration.
	for _, identifier := range []string{username, email} {
		_, err := s.repo.FindByUsernameOrEmail(ctx, identifier)
		switch {
		case err == nil:
			return nil, domain.ErrUserExists
		case !errors.Is(err, domain.ErrUserNotFound):
			return nil, fmt.Errorf("register: lookup existing user: %w", err)
		}
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("register: create user: %w", err)
	}

	token, err := s.tokens.Issue(created.ID, created.Username)
	if err != nil {
		return nil, fmt.Errorf("register: issue token: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")

	return &ports.AuthResult{Token: token, User: created.Public()}, nil
}

// Login authenticates by username or email. Unknown identifiers and wrong passwords
// both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.AuthResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, domain.NewValidationError("Username and password are required")
	}

	user, err := s.repo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Msg("login failed")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Info().Msg("login failed")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login successful")

	return &ports.AuthResult{Token: token, User: user.Public()}, nil
}

// VerifyToken checks the token and re-reads its subject from the credential store.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("verify token: find user: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

// Logout is an acknowledgement only. Tokens stay valid until they expire.
func (s *AuthService) Logout(_ context.Context) error {
	return nil
}
