package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"
	StoreMemory   = "memory"

	AuthModeClaim = "claim"
	AuthModeToken = "token"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	StoreDriver    string `env:"STORE_DRIVER,     default=postgres"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START, default=true"`
	SeedCatalog    bool   `env:"SEED_CATALOG,     default=true"`

	AuthMode  string        `env:"AUTH_MODE,  default=claim"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST,      default=localhost"`
	Port     int    `env:"DB_PORT,      default=5432"`
	Name     string `env:"DB_NAME,      default=dch_learning"`
	User     string `env:"DB_USER,      default=postgres"`
	Password string `env:"DB_PASSWORD"`
	SSLMode  string `env:"DB_SSLMODE,   default=disable"`
	MaxConns int32  `env:"DB_MAX_CONNS, default=10"`
	MinConns int32  `env:"DB_MIN_CONNS, default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dch_learning"`
}

type RedisConfig struct {
	// Addr left empty disables the idempotency cache.
	Addr           string        `env:"REDIS_ADDR"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,        default=0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case StorePostgres, StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	c.AuthMode = strings.ToLower(strings.TrimSpace(c.AuthMode))
	switch c.AuthMode {
	case AuthModeClaim:
	case AuthModeToken:
		if c.JWTSecret == "" {
			return fmt.Errorf("config: JWT_SECRET is required when AUTH_MODE=%s", AuthModeToken)
		}
	default:
		return fmt.Errorf("config: unknown AUTH_MODE %q", c.AuthMode)
	}
	return nil
}

// IsDevelopment reports whether human-friendly logs should be emitted.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// TokenAuth reports whether admin routes expect a signed bearer token.
func (c *Config) TokenAuth() bool {
	return c.AuthMode == AuthModeToken
}
