package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/personal-blog/portfolio-api/docs"
	"github.com/personal-blog/portfolio-api/internal/api/apierror"
	"github.com/personal-blog/portfolio-api/internal/api/handler"
	"github.com/personal-blog/portfolio-api/internal/api/metrics"
	"github.com/personal-blog/portfolio-api/internal/api/middleware"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
	"github.com/personal-blog/portfolio-api/internal/infrastructure/http/handlers"
)

const defaultBodyLimit = "50M"

// Dependencies is everything the router needs, constructed once in main.
type Dependencies struct {
	Logger zerolog.Logger

	Auth     ports.AuthService
	Tokens   ports.TokenVerifier
	Profile  ports.ProfileService
	Posts    ports.PostService
	Skills   ports.SkillService
	Projects ports.ProjectService

	// Health probes. A nil Redis pinger means the cache is not configured.
	Mongo handlers.Pinger
	Redis handlers.Pinger

	// StaticDir, when set, serves the browser bundle with SPA fallback to index.html.
	StaticDir string
	BodyLimit string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = apierror.NewHTTPErrorHandler(deps.Logger)

	bodyLimit := deps.BodyLimit
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(bodyLimit))

	auth := middleware.Auth(deps.Tokens)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/verify", authHandler.Verify)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- Content routes (reads public, writes protected) ---
	profileHandler := handler.NewProfileHandler(deps.Profile)
	e.GET("/api/profile", profileHandler.Get)
	e.PUT("/api/profile", profileHandler.Update, auth)

	postHandler := handler.NewPostHandler(deps.Posts)
	e.GET("/api/posts", postHandler.List)
	e.POST("/api/posts", postHandler.Create, auth)
	e.DELETE("/api/posts/:id", postHandler.Delete, auth)

	skillHandler := handler.NewSkillHandler(deps.Skills)
	e.GET("/api/skills", skillHandler.List)
	e.POST("/api/skills", skillHandler.Create, auth)
	e.DELETE("/api/skills/:id", skillHandler.Delete, auth)

	projectHandler := handler.NewProjectHandler(deps.Projects)
	e.GET("/api/projects", projectHandler.List)
	e.POST("/api/projects", projectHandler.Create, auth)
	e.PUT("/api/projects/:id", projectHandler.Update, auth)
	e.DELETE("/api/projects/:id", projectHandler.Delete, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/api/health", healthDepsHandler.API)

	// --- Ops ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if deps.StaticDir != "" {
		e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root:  deps.StaticDir,
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				return isAPIPath(c.Request().URL.Path)
			},
		}))
	}

	return e
}

func isAPIPath(p string) bool {
	for _, prefix := range []string{"/api/", "/health", "/metrics", "/swagger/"} {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}
