// Package input resolves puzzle inputs, reading them from a local cache when
// present and downloading and caching them otherwise.
package input

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
	"github.com/rs/zerolog"
)

const DefaultCacheRoot = "downloaded_inputs"

type ProviderConfig struct {
	CacheRootPath string
}

// Provider returns puzzle inputs. A cached entry is trusted indefinitely: once
// a key is cached the remote is never contacted again for it. There is no
// internal locking; two callers racing on the same uncached key both fetch.
type Provider struct {
	store   Store
	fetcher Fetcher
	logger  *zerolog.Logger
}

func NewProvider(store Store, fetcher Fetcher, logger *zerolog.Logger) *Provider {
	return &Provider{
		store:   store,
		fetcher: fetcher,
		logger:  logger,
	}
}

// NewFileProvider builds a Provider over a FileStore rooted at cfg.CacheRootPath.
func NewFileProvider(cfg ProviderConfig, fetcher Fetcher, logger *zerolog.Logger) *Provider {
	root := cfg.CacheRootPath
	if root == "" {
		root = DefaultCacheRoot
	}
	return NewProvider(NewFileStore(root), fetcher, logger)
}

// Fetch returns the input text for key. On a cache miss it performs exactly one
// remote request and persists the body before returning it. A failed cache
// write fails the call with a StorageError even though the text was fetched.
func (p *Provider) Fetch(ctx context.Context, credential string, key puzzle.Key) (string, error) {
	text, found, err := p.store.Load(ctx, key)
	if err != nil {
		return "", err
	}
	if found {
		p.logger.Debug().Int("year", key.Year).Int("day", key.Day).Str("source", "cache").Msg("input resolved")
		return text, nil
	}

	start := time.Now()
	body, err := p.fetcher.Fetch(ctx, credential, key)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(body) {
		return "", &DecodeError{Key: key, Err: errors.New("response body is not valid UTF-8")}
	}
	text = string(body)

	if err := p.store.Save(ctx, key, text); err != nil {
		p.logger.Error().Err(err).Int("year", key.Year).Int("day", key.Day).Msg("failed to cache fetched input")
		return "", err
	}

	p.logger.Info().
		Int("year", key.Year).
		Int("day", key.Day).
		Str("source", "remote").
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("input downloaded and cached")

	return text, nil
}

// Clear removes every cached input.
func (p *Provider) Clear(ctx context.Context) error {
	if err := p.store.Clear(ctx); err != nil {
		return err
	}
	p.logger.Info().Msg("input cache cleared")
	return nil
}
