package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/personal-blog/portfolio-api/internal/api/middleware"
)

// ctxUserID returns the subject injected by the Auth middleware. Its absence
// means the route was registered without the middleware.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
	}
	return id, nil
}
