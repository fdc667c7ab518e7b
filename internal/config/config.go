package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Store backends.
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Identity modes.
const (
	IdentityHeader = "header"
	IdentityToken  = "token"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"fact-frenzy"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Store     Store
	Redis     Redis
	Game      Game
	Questions Questions
	Identity  Identity
}

// Store selects the key-value backend.
type Store struct {
	Backend string `env:"STORE_BACKEND" envDefault:"redis"`
}

// Redis holds key-value store connection settings.
type Redis struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD" envDefault:""`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"20"`
	KeyTTL   time.Duration `env:"REDIS_KEY_TTL" envDefault:"0s"`
}

// Game groups gameplay defaults.
type Game struct {
	TotalRounds    int           `env:"GAME_TOTAL_ROUNDS" envDefault:"5"`
	RoundDuration  time.Duration `env:"GAME_ROUND_SECONDS" envDefault:"20s"`
	LeaderboardTop int           `env:"LEADERBOARD_TOP" envDefault:"10"`
}

// Questions controls where the bank comes from and whether it is checked at boot.
type Questions struct {
	BankPath          string `env:"QUESTION_BANK_PATH" envDefault:""`
	ValidateOnStartup bool   `env:"QUESTION_VALIDATE_ON_STARTUP" envDefault:"true"`
}

// Identity selects how callers are resolved.
type Identity struct {
	Mode        string `env:"IDENTITY_MODE" envDefault:"header"`
	TokenSecret string `env:"IDENTITY_TOKEN_SECRET" envDefault:""`
	TokenIssuer string `env:"IDENTITY_TOKEN_ISSUER" envDefault:""`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints the struct tags cannot express.
func (c *App) Validate() error {
	switch c.Store.Backend {
	case BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendRedis, BackendMemory, c.Store.Backend)
	}
	switch c.Identity.Mode {
	case IdentityHeader:
	case IdentityToken:
		if c.Identity.TokenSecret == "" {
			return fmt.Errorf("IDENTITY_TOKEN_SECRET must be configured when IDENTITY_MODE=%s", IdentityToken)
		}
	default:
		return fmt.Errorf("IDENTITY_MODE must be %q or %q, got %q", IdentityHeader, IdentityToken, c.Identity.Mode)
	}
	if c.Game.TotalRounds <= 0 {
		return fmt.Errorf("GAME_TOTAL_ROUNDS must be positive")
	}
	if c.Game.LeaderboardTop <= 0 {
		return fmt.Errorf("LEADERBOARD_TOP must be positive")
	}
	return nil
}
