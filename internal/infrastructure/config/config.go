package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret has no default on purpose: the signing key must always be
	// injected, never baked into the binary.
	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=30m"`
	BcryptCost int           `env:"BCRYPT_COST, default=12"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:3000\\,http://localhost:5173"`

	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type StoreConfig struct {
	// Backend selects the user store implementation: "memory" or "mongo".
	Backend string `env:"STORE_BACKEND,   default=memory"`
	// SeedDemo loads the demo admin/manager/analyst accounts into the
	// memory store at startup. Ignored for the mongo backend.
	SeedDemo bool `env:"SEED_DEMO_USERS, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pulseboard"`
}

type RedisConfig struct {
	// Addr left empty disables the dashboard cache entirely.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Store.Backend != "memory" && cfg.Store.Backend != "mongo" {
		return nil, fmt.Errorf("config: unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
	return &cfg, nil
}
