package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/fact-frenzy/internal/api"
	"github.com/gokatarajesh/fact-frenzy/internal/config"
	"github.com/gokatarajesh/fact-frenzy/internal/game"
	"github.com/gokatarajesh/fact-frenzy/internal/identity"
	"github.com/gokatarajesh/fact-frenzy/internal/kv"
	"github.com/gokatarajesh/fact-frenzy/internal/leaderboard"
	"github.com/gokatarajesh/fact-frenzy/internal/logging"
	"github.com/gokatarajesh/fact-frenzy/internal/metrics"
	"github.com/gokatarajesh/fact-frenzy/internal/question"
	"github.com/gokatarajesh/fact-frenzy/internal/scoring"
	"github.com/gokatarajesh/fact-frenzy/internal/server"
)

// Application aggregates shared infrastructure (key-value store, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	redis *redis.Client
	http  *http.Server
}

// New bootstraps logger, store, question bank, services and HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(logging.Options{App: cfg.Name, Env: cfg.Env, Level: cfg.LogLevel})
	logger.Info().Msg("starting application bootstrap")

	bank, err := loadBank(cfg, logger)
	if err != nil {
		return nil, err
	}

	store, redisClient, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("backend", cfg.Store.Backend).Msg("key-value store ready")

	provider, err := buildIdentity(cfg)
	if err != nil {
		return nil, err
	}

	boards := leaderboard.NewService(store, logger, leaderboard.ServiceOptions{
		TopN: cfg.Game.LeaderboardTop,
	})
	games := game.NewService(game.NewSessionStore(store), bank, boards, logger, game.ServiceOptions{
		TotalRounds: cfg.Game.TotalRounds,
		Scoring:     scoring.NewEngine(scoringConfig(cfg)),
	})

	handlers := api.NewHandlers(
		games,
		boards,
		provider,
		metrics.NewGame(prometheus.DefaultRegisterer),
		logger,
		api.Options{GameReady: bank.Len() >= cfg.Game.TotalRounds},
	)

	return &Application{
		cfg:    cfg,
		logger: logger,
		redis:  redisClient,
		http:   server.NewHTTPServer(cfg, logger, store, handlers),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

// loadBank reads the configured bank and, when enabled, refuses a bank that
// fails validation or cannot fill a game.
func loadBank(cfg *config.App, logger zerolog.Logger) (*question.Bank, error) {
	questions, err := question.Load(cfg.Questions.BankPath)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	if cfg.Questions.ValidateOnStartup {
		result := question.ValidateDatabase(questions)
		if !result.Valid {
			logger.Error().
				Int("invalid", result.InvalidCount).
				Strs("duplicate_ids", result.DuplicateIDs).
				Msg("question bank failed validation")
			return nil, fmt.Errorf("question bank failed validation: %d invalid, %d duplicate ids", result.InvalidCount, len(result.DuplicateIDs))
		}
		if len(questions) < cfg.Game.TotalRounds {
			return nil, fmt.Errorf("%w: %d questions for %d rounds", question.ErrEmptyBank, len(questions), cfg.Game.TotalRounds)
		}
	}

	source := "embedded"
	if cfg.Questions.BankPath != "" {
		source = cfg.Questions.BankPath
	}
	logger.Info().Str("source", source).Int("questions", len(questions)).Msg("question bank loaded")
	return question.NewBank(questions, nil), nil
}

func buildStore(ctx context.Context, cfg *config.App) (kv.Store, *redis.Client, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return kv.NewMemoryStore(), nil, nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		store := kv.NewRedisStore(client, cfg.Redis.KeyTTL)
		if err := store.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return store, client, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func buildIdentity(cfg *config.App) (identity.Provider, error) {
	switch cfg.Identity.Mode {
	case config.IdentityHeader:
		return identity.HeaderProvider{}, nil
	case config.IdentityToken:
		if cfg.Identity.TokenSecret == "" {
			return nil, errors.New("IDENTITY_TOKEN_SECRET must be configured")
		}
		issuer := cfg.Identity.TokenIssuer
		if issuer == "" {
			issuer = cfg.Name
		}
		return identity.NewTokenProvider([]byte(cfg.Identity.TokenSecret), issuer), nil
	default:
		return nil, fmt.Errorf("unknown identity mode %q", cfg.Identity.Mode)
	}
}

func scoringConfig(cfg *config.App) scoring.Config {
	sc := scoring.DefaultConfig()
	if window := cfg.Game.RoundDuration.Seconds(); window > 0 {
		sc.SlowWindowSeconds = window
		sc.FastWindowSeconds = window / 2
	}
	return sc
}
