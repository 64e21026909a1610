package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
)

var tokenEpoch = time.Date(2026, 1, 10, 8, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func signRaw(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTManager_IssueAndVerify(t *testing.T) {
	m := NewJWTManager("secret").WithClock(fixedClock(tokenEpoch))

	token, err := m.Issue("64b7f0c2a1e4d3b2c1a09f8e", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1e4d3b2c1a09f8e", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IssuedAt.Equal(tokenEpoch))
	assert.True(t, claims.ExpiresAt.Equal(tokenEpoch.Add(7*24*time.Hour)))
}

func TestJWTManager_Expiry(t *testing.T) {
	now := tokenEpoch
	m := NewJWTManager("secret").WithClock(func() time.Time { return now })

	token, err := m.Issue("u1", "alice")
	require.NoError(t, err)

	now = tokenEpoch.Add(TokenValidity - time.Second)
	_, err = m.Verify(token)
	assert.NoError(t, err)

	now = tokenEpoch.Add(TokenValidity)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	now = tokenEpoch.Add(30 * 24 * time.Hour)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret").WithClock(fixedClock(tokenEpoch))
	verifier := NewJWTManager("other-secret").WithClock(fixedClock(tokenEpoch))

	token, err := issuer.Issue("u1", "alice")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTManager_RejectsMalformed(t *testing.T) {
	m := NewJWTManager("secret").WithClock(fixedClock(tokenEpoch))

	for _, token := range []string{"", "abc", "a.b.c", "not.a.jwt.at.all"} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "token %q", token)
	}
}

func TestJWTManager_RejectsOtherAlgorithms(t *testing.T) {
	m := NewJWTManager("secret").WithClock(fixedClock(tokenEpoch))
	claims := Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(tokenEpoch),
			ExpiresAt: jwt.NewNumericDate(tokenEpoch.Add(time.Hour)),
		},
	}

	hs384 := signRaw(t, jwt.SigningMethodHS384, []byte("secret"), claims)
	_, err := m.Verify(hs384)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	none := signRaw(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, claims)
	_, err = m.Verify(none)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTManager_RequiresExpiryAndSubject(t *testing.T) {
	m := NewJWTManager("secret").WithClock(fixedClock(tokenEpoch))

	noExp := signRaw(t, jwt.SigningMethodHS256, []byte("secret"), Claims{
		Username:         "alice",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1", IssuedAt: jwt.NewNumericDate(tokenEpoch)},
	})
	_, err := m.Verify(noExp)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	noSubject := signRaw(t, jwt.SigningMethodHS256, []byte("secret"), Claims{
		Username:         "alice",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(tokenEpoch.Add(time.Hour))},
	})
	_, err = m.Verify(noSubject)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestJWTManager_EmptySecret(t *testing.T) {
	m := NewJWTManager("")

	_, err := m.Issue("u1", "alice")
	assert.Error(t, err)

	token, err := NewJWTManager("secret").Issue("u1", "alice")
	require.NoError(t, err)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
