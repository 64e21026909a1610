package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/personal-blog/portfolio-api/internal/api/apierror"
	"github.com/personal-blog/portfolio-api/internal/api/metrics"
	"github.com/personal-blog/portfolio-api/internal/api/middleware"
	"github.com/personal-blog/portfolio-api/internal/core/domain"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account gated by the shared access key.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  apierror.Response
// @Failure      403   {object}  apierror.Response
// @Failure      500   {object}  apierror.Response
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		AccessKey: req.AccessKey,
	})
	metrics.AuthAttemptsTotal.WithLabelValues("register", apierror.Reason(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Message: "User registered successfully",
		Token:   result.Token,
		User:    result.User,
	})
}

// Login authenticates by username or email and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  apierror.Response
// @Failure      401   {object}  apierror.Response
// @Failure      500   {object}  apierror.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	metrics.AuthAttemptsTotal.WithLabelValues("login", apierror.Reason(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// Verify resolves the bearer token to its user.
//
// @Summary      Verify token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  apierror.Response
// @Failure      404  {object}  apierror.Response
// @Failure      500  {object}  apierror.Response
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		metrics.AuthAttemptsTotal.WithLabelValues("verify", "unauthorized").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
	}

	user, err := h.authService.VerifyToken(c.Request().Context(), token)
	metrics.AuthAttemptsTotal.WithLabelValues("verify", apierror.Reason(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, verifyResponse{User: user})
}

// Logout acknowledges a logout. The token itself stays valid until it expires;
// clients discard it.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
