package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
)

type stubAuthRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
	err    error
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubAuthRepo) FindByUsernameOrEmail(_ context.Context, identifier string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := cloneUser(u)
	out.PasswordHash = ""
	return out, nil
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

type fixture struct {
	repo   *stubAuthRepo
	tokens *JWTManager
	svc    *AuthService
	now    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo: newStubAuthRepo(),
		now:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.tokens = NewJWTManager("test-secret").WithClock(func() time.Time { return f.now })
	f.svc = NewAuthService(f.repo, NewBcryptHasher(bcrypt.MinCost), f.tokens, NewStaticAccessGate("102258"), zerolog.Nop())
	return f
}

func aliceInput() ports.RegisterInput {
	return ports.RegisterInput{Username: "alice", Email: "alice@x.com", Password: "secret1", AccessKey: "102258"}
}

func TestAuthService_Register_Success(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Register(context.Background(), aliceInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("expected token")
	}
	if res.User.ID == "" || res.User.Username != "alice" || res.User.Email != "alice@x.com" {
		t.Fatalf("unexpected user: %+v", res.User)
	}

	stored := f.repo.users[res.User.ID]
	if stored.PasswordHash == "secret1" || stored.PasswordHash == "" {
		t.Fatalf("expected password to be hashed, got %q", stored.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims, err := f.tokens.Verify(res.Token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.UserID != res.User.ID || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != TokenValidity {
		t.Fatalf("expected validity %v, got %v", TokenValidity, got)
	}
}

func TestAuthService_Register_TrimsIdentity(t *testing.T) {
	f := newFixture(t)

	in := aliceInput()
	in.Username = "  alice "
	in.Email = " alice@x.com"
	res, err := f.svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if res.User.Username != "alice" || res.User.Email != "alice@x.com" {
		t.Fatalf("expected trimmed identity, got %+v", res.User)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	cases := map[string]func(*ports.RegisterInput){
		"missing username":  func(in *ports.RegisterInput) { in.Username = "" },
		"blank username":    func(in *ports.RegisterInput) { in.Username = "   " },
		"missing email":     func(in *ports.RegisterInput) { in.Email = "" },
		"missing password":  func(in *ports.RegisterInput) { in.Password = "" },
		"password too long": func(in *ports.RegisterInput) { in.Password = strings.Repeat("a", MaxPasswordBytes+1) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			in := aliceInput()
			mutate(&in)

			_, err := f.svc.Register(context.Background(), in)
			if !domain.IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(f.repo.users) != 0 {
				t.Fatalf("expected no user to be stored")
			}
		})
	}
}

func TestAuthService_Register_AcceptsAnyNonEmptyEmail(t *testing.T) {
	for _, email := range []string{"alice", "not-an-email", "alice@localhost"} {
		f := newFixture(t)
		in := aliceInput()
		in.Email = email

		res, err := f.svc.Register(context.Background(), in)
		if err != nil {
			t.Fatalf("email %q: Register returned error: %v", email, err)
		}
		if res.User.Email != email {
			t.Fatalf("email %q: stored as %q", email, res.User.Email)
		}
	}
}

func TestAuthService_Register_ValidationBeforeAccessKey(t *testing.T) {
	f := newFixture(t)

	in := aliceInput()
	in.Password = ""
	in.AccessKey = "wrong"
	if _, err := f.svc.Register(context.Background(), in); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthService_Register_WrongAccessKey(t *testing.T) {
	for _, key := range []string{"", "wrong", "1022580", "10225"} {
		f := newFixture(t)
		in := aliceInput()
		in.AccessKey = key

		_, err := f.svc.Register(context.Background(), in)
		if !errors.Is(err, domain.ErrInvalidAccessKey) {
			t.Fatalf("key %q: expected ErrInvalidAccessKey, got %v", key, err)
		}
		if len(f.repo.users) != 0 {
			t.Fatalf("key %q: expected no user to be stored", key)
		}
	}
}

func TestAuthService_Register_Conflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, aliceInput()); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	sameUsername := aliceInput()
	sameUsername.Email = "other@x.com"
	if _, err := f.svc.Register(ctx, sameUsername); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("same username: expected ErrUserExists, got %v", err)
	}

	sameEmail := aliceInput()
	sameEmail.Username = "bob"
	if _, err := f.svc.Register(ctx, sameEmail); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("same email: expected ErrUserExists, got %v", err)
	}

	if len(f.repo.users) != 1 {
		t.Fatalf("expected exactly one stored user, got %d", len(f.repo.users))
	}
}

func TestAuthService_Register_ConcurrentDuplicates(t *testing.T) {
	f := newFixture(t)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Register(context.Background(), aliceInput())
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			if !errors.Is(err, domain.ErrUserExists) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", successes)
	}
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("connection reset")
	f.repo.err = boom

	_, err := f.svc.Register(context.Background(), aliceInput())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.svc.Register(ctx, aliceInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	for _, identifier := range []string{"alice", "alice@x.com", " alice "} {
		res, err := f.svc.Login(ctx, identifier, "secret1")
		if err != nil {
			t.Fatalf("Login(%q) returned error: %v", identifier, err)
		}
		if res.User != reg.User {
			t.Fatalf("Login(%q) returned %+v, want %+v", identifier, res.User, reg.User)
		}
		if _, err := f.tokens.Verify(res.Token); err != nil {
			t.Fatalf("Login(%q) token did not verify: %v", identifier, err)
		}
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, aliceInput()); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, wrongPassword := f.svc.Login(ctx, "alice", "wrong")
	_, unknownUser := f.svc.Login(ctx, "mallory", "secret1")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("expected identical errors, got %q and %q", wrongPassword, unknownUser)
	}

	if _, err := f.svc.Login(ctx, "", "secret1"); !domain.IsValidation(err) {
		t.Fatalf("empty identifier: expected ValidationError, got %v", err)
	}
	if _, err := f.svc.Login(ctx, "alice", ""); !domain.IsValidation(err) {
		t.Fatalf("empty password: expected ValidationError, got %v", err)
	}
}

func TestAuthService_VerifyToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.svc.Register(ctx, aliceInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, err := f.svc.VerifyToken(ctx, reg.Token)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if user.ID != reg.User.ID || user.Username != "alice" || user.Email != "alice@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatalf("expected password hash to be stripped")
	}

	if _, err := f.svc.VerifyToken(ctx, reg.Token+"x"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("tampered token: expected ErrInvalidToken, got %v", err)
	}
	if _, err := f.svc.VerifyToken(ctx, ""); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("empty token: expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_VerifyToken_Expiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.svc.Register(ctx, aliceInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	f.now = f.now.Add(TokenValidity - time.Second)
	if _, err := f.svc.VerifyToken(ctx, reg.Token); err != nil {
		t.Fatalf("expected token valid just before expiry, got %v", err)
	}

	f.now = f.now.Add(time.Second)
	if _, err := f.svc.VerifyToken(ctx, reg.Token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken at expiry, got %v", err)
	}
}

func TestAuthService_VerifyToken_UserGone(t *testing.T) {
	f := newFixture(t)

	token, err := f.tokens.Issue("ghost", "ghost")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := f.svc.VerifyToken(context.Background(), token); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reg, err := f.svc.Register(ctx, aliceInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := f.svc.Logout(ctx); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := f.svc.VerifyToken(ctx, reg.Token); err != nil {
		t.Fatalf("expected token to remain valid after logout, got %v", err)
	}
}
