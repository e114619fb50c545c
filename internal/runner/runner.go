package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/solver"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_provider.go -package=mocks

var ErrNotImplemented = errors.New("puzzle not implemented")

// InputProvider resolves the input text of a puzzle.
type InputProvider interface {
	Fetch(ctx context.Context, credential string, key puzzle.Key) (string, error)
	Clear(ctx context.Context) error
}

type Result struct {
	Key      puzzle.Key    `json:"-"`
	Year     int           `json:"year"`
	Day      int           `json:"day"`
	Name     string        `json:"name"`
	Part     int           `json:"part"`
	Answer   string        `json:"answer"`
	Duration time.Duration `json:"duration_ns"`
}

type Runner struct {
	registry *solver.Registry
	provider InputProvider
	logger   *zerolog.Logger
}

func NewRunner(registry *solver.Registry, provider InputProvider, logger *zerolog.Logger) *Runner {
	return &Runner{
		registry: registry,
		provider: provider,
		logger:   logger,
	}
}

// Solve fetches the input for key and runs part 1, or part 2 when second is set.
// An unregistered key returns ErrNotImplemented without touching the provider.
func (r *Runner) Solve(ctx context.Context, key puzzle.Key, credential string, second bool) (Result, error) {
	entry, ok := r.registry.Lookup(key)
	if !ok {
		return Result{}, fmt.Errorf("%s: %w", key, ErrNotImplemented)
	}

	text, err := r.provider.Fetch(ctx, credential, key)
	if err != nil {
		return Result{}, fmt.Errorf("failed to get input for %s: %w", key, err)
	}

	part := 1
	run := entry.Solver.Run
	if second {
		part = 2
		run = entry.Solver.Run2
	}

	start := time.Now()
	answer, err := run(text)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("%s part %d: %w", entry.Name, part, err)
	}

	r.logger.Info().
		Int("year", key.Year).
		Int("day", key.Day).
		Int("part", part).
		Dur("duration", elapsed).
		Msg("puzzle solved")

	return Result{
		Key:      key,
		Year:     key.Year,
		Day:      key.Day,
		Name:     entry.Name,
		Part:     part,
		Answer:   answer,
		Duration: elapsed,
	}, nil
}

func (r *Runner) Implemented(key puzzle.Key) bool {
	_, ok := r.registry.Lookup(key)
	return ok
}

func (r *Runner) List() []solver.Entry {
	return r.registry.Entries()
}

func (r *Runner) Clear(ctx context.Context) error {
	return r.provider.Clear(ctx)
}
