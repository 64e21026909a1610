// Command server runs the portfolio API.
//
//	@title						Portfolio API
//	@version					1.0
//	@description				Profile, posts, skills and projects for a personal portfolio, with access-key gated registration.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/personal-blog/portfolio-api/internal/api"
	"github.com/personal-blog/portfolio-api/internal/api/metrics"
	"github.com/personal-blog/portfolio-api/internal/core/ports"
	"github.com/personal-blog/portfolio-api/internal/core/service"
	mongodb "github.com/personal-blog/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/personal-blog/portfolio-api/internal/infrastructure/db/redis"
	"github.com/personal-blog/portfolio-api/internal/infrastructure/http/handlers"
	"github.com/personal-blog/portfolio-api/internal/pkg/config"
	"github.com/personal-blog/portfolio-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, warnings, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "portfolio-api",
	})
	for _, w := range warnings {
		log.Warn().Msg(w)
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongodb.Disconnect(mongoClient); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	users := mongodb.NewAuthRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.EnsureContentIndexes(ctx, db); err != nil {
		return err
	}

	var (
		cache       ports.ContentCache = service.NopCache{}
		redisPinger handlers.Pinger
	)
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		cache = redisdb.NewContentCache(rdb, cfg.Redis.CacheTTL).OnLookup(metrics.RecordCacheLookup)
		redisPinger = handlers.RedisPinger(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.CacheTTL).Msg("content cache enabled")
	} else {
		log.Info().Msg("REDIS_ADDR not set, content cache disabled")
	}

	tokens := service.NewJWTManager(cfg.JWTSecret)
	authService := service.NewAuthService(
		users,
		service.NewBcryptHasher(cfg.BcryptCost),
		tokens,
		service.NewStaticAccessGate(cfg.AccessKey),
		log.With().Str("component", "auth").Logger(),
	)

	contentLog := log.With().Str("component", "content").Logger()
	profileService := service.NewProfileService(mongodb.NewProfileRepository(db), cache, contentLog)
	if err := profileService.EnsureDefault(ctx); err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Logger:    log,
		Auth:      authService,
		Tokens:    tokens,
		Profile:   profileService,
		Posts:     service.NewPostService(mongodb.NewPostRepository(db), cache, contentLog),
		Skills:    service.NewSkillService(mongodb.NewSkillRepository(db), cache, contentLog),
		Projects:  service.NewProjectService(mongodb.NewProjectRepository(db), cache, contentLog),
		Mongo:     handlers.MongoPinger(db),
		Redis:     redisPinger,
		StaticDir: cfg.StaticDir,
		BodyLimit: cfg.BodyLimit,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return shutdown(srv, log)
}

func shutdown(srv *http.Server, log zerolog.Logger) error {
	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info().Msg("http server stopped")
	return nil
}
