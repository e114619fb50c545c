package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/aoc"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/config"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/input"
	inputredis "github.com/povarna/generative-ai-with-go/aoc-runner/internal/input/redis"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/runner"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/solver"
	"github.com/rs/zerolog"
)

const redisConnectRetries = 3

type Dependencies struct {
	Registry *solver.Registry
	Provider *input.Provider
	Runner   *runner.Runner
	Logger   *zerolog.Logger

	closers []func() error
}

// Close releases connections opened by Wire.
func (d *Dependencies) Close() error {
	var errs []error
	for _, c := range d.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

func LoadConfig() (*config.Config, error) {
	return config.Load()
}

func Wire(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: logger}

	store, err := createStore(ctx, cfg, logger, deps)
	if err != nil {
		return nil, fmt.Errorf("failed to create input store: %w", err)
	}

	fetcher := input.NewHTTPFetcher(cfg.Remote.BaseURL, cfg.Remote.UserAgent, cfg.Remote.Timeout, nil)
	deps.Provider = input.NewProvider(store, fetcher, logger)

	deps.Registry = aoc.Default()
	deps.Runner = runner.NewRunner(deps.Registry, deps.Provider, logger)

	return deps, nil
}

func createStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, deps *Dependencies) (input.Store, error) {
	switch cfg.Cache.Backend {
	case config.BackendRedis:
		client, err := inputredis.Connect(ctx, inputredis.Config{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		}, redisConnectRetries, logger)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, client.Close)
		logger.Info().Str("addr", cfg.Cache.Redis.Addr).Str("prefix", cfg.Cache.Redis.KeyPrefix).Msg("using redis input cache")
		return inputredis.NewStore(client, cfg.Cache.Redis.KeyPrefix), nil
	case config.BackendFile:
		logger.Debug().Str("path", cfg.Cache.CacheRootPath).Msg("using file input cache")
		return input.NewFileStore(cfg.Cache.CacheRootPath), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// ResolveCredential picks the session credential: the explicit value, then
// AOC_SESSION, then the contents of sessionFile. The result is trimmed.
func ResolveCredential(explicit string, sessionFile string) (string, error) {
	if c := strings.TrimSpace(explicit); c != "" {
		return c, nil
	}
	if c := strings.TrimSpace(os.Getenv("AOC_SESSION")); c != "" {
		return c, nil
	}

	data, err := os.ReadFile(sessionFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("no session credential: pass --id, set AOC_SESSION or create %s: %w", sessionFile, input.ErrMissingCredential)
		}
		return "", fmt.Errorf("failed to read session file %s: %w", sessionFile, err)
	}

	c := strings.TrimSpace(string(data))
	if c == "" {
		return "", fmt.Errorf("session file %s is empty: %w", sessionFile, input.ErrMissingCredential)
	}
	return c, nil
}
