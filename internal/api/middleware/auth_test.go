package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/personal-blog/portfolio-api/internal/core/service"
)

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewJWTManager("secret")
	signed, err := tokens.Issue("64b000000000000000000001", "alice")
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(ContextUserID) != "64b000000000000000000001" {
			t.Fatalf("user_id not set")
		}
		if c.Get(ContextUsername) != "alice" {
			t.Fatalf("username not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tokens := service.NewJWTManager("secret")
	other, _ := service.NewJWTManager("other-secret").Issue("u1", "mallory")
	expired, _ := service.NewJWTManager("secret").
		WithClock(func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }).
		Issue("u1", "alice")

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"empty bearer":   "Bearer ",
		"garbage token":  "Bearer not-a-token",
		"foreign secret": "Bearer " + other,
		"expired token":  "Bearer " + expired,
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := Auth(tokens)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	if tok, ok := BearerToken("bearer abc.def"); !ok || tok != "abc.def" {
		t.Fatalf("lowercase scheme should be accepted, got %q %v", tok, ok)
	}
	if _, ok := BearerToken("Basic dXNlcg=="); ok {
		t.Fatalf("basic auth should be rejected")
	}
}
