package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Development defaults, applied only with ALLOW_INSECURE_DEFAULTS=true outside production.
const (
	devJWTSecret = "dev-only-jwt-secret-change-me"
	devAccessKey = "102258"
	devMongoURI  = "mongodb://localhost:27017"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	JWTSecret  string `env:"JWT_SECRET"`
	AccessKey  string `env:"ACCESS_KEY"`
	BcryptCost int    `env:"BCRYPT_COST, default=10"`

	// AllowInsecureDefaults fills missing secrets with well-known development values.
	AllowInsecureDefaults bool `env:"ALLOW_INSECURE_DEFAULTS, default=false"`

	StaticDir string `env:"STATIC_DIR"`
	BodyLimit string `env:"BODY_LIMIT, default=50M"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=portfolio"`
}

// RedisConfig is optional; an empty Addr disables the content cache.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,  default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL, default=5m"`
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production") || strings.EqualFold(c.Env, "prod")
}

// Load reads configuration from environment variables using go-envconfig and
// resolves missing secrets. The returned warnings name every insecure default
// that was applied; callers must log them.
func Load(ctx context.Context) (*Config, []string, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith is Load with an explicit lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, []string, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	warnings, err := cfg.resolveSecrets()
	if err != nil {
		return nil, nil, err
	}
	return &cfg, warnings, nil
}

func (c *Config) resolveSecrets() ([]string, error) {
	required := []struct {
		name  string
		value *string
		dev   string
	}{
		{"JWT_SECRET", &c.JWTSecret, devJWTSecret},
		{"ACCESS_KEY", &c.AccessKey, devAccessKey},
		{"MONGO_URI", &c.Mongo.URI, devMongoURI},
	}

	var missing []string
	for _, r := range required {
		if *r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}

	if !c.AllowInsecureDefaults {
		return nil, fmt.Errorf("config: required variables not set: %s", strings.Join(missing, ", "))
	}
	if c.IsProduction() {
		return nil, errors.New("config: ALLOW_INSECURE_DEFAULTS is not permitted in production")
	}

	warnings := make([]string, 0, len(missing))
	for _, r := range required {
		if *r.value == "" {
			*r.value = r.dev
			warnings = append(warnings, fmt.Sprintf("%s not set, using insecure development default", r.name))
		}
	}
	return warnings, nil
}
