package api

import (
	"context"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/runner"
	"golang.org/x/sync/singleflight"
)

// SharedProvider collapses concurrent fetches of the same puzzle for the same
// credential into a single call to the wrapped provider. The shared call does
// not inherit the cancellation of the caller that started it; each caller
// stops waiting when its own context is done.
type SharedProvider struct {
	provider runner.InputProvider
	group    singleflight.Group
}

func NewSharedProvider(provider runner.InputProvider) *SharedProvider {
	return &SharedProvider{provider: provider}
}

func (s *SharedProvider) Fetch(ctx context.Context, credential string, key puzzle.Key) (string, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key.String()+"|"+credential, func() (any, error) {
		return s.provider.Fetch(shared, credential, key)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *SharedProvider) Clear(ctx context.Context) error {
	return s.provider.Clear(ctx)
}
