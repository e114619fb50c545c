// Package redis stores cached puzzle inputs in Redis, one string key per
// puzzle, without expiry.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/input"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
	"github.com/redis/go-redis/v9"
)

const DefaultKeyPrefix = "aoc:input:"

var _ input.Store = (*Store)(nil)

type Store struct {
	client redis.UniversalClient
	prefix string
}

func NewStore(client redis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{
		client: client,
		prefix: prefix,
	}
}

func (s *Store) Key(key puzzle.Key) string {
	return fmt.Sprintf("%s%d_%d", s.prefix, key.Year, key.Day)
}

func (s *Store) Load(ctx context.Context, key puzzle.Key) (string, bool, error) {
	k := s.Key(key)

	text, err := s.client.Get(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, &input.StorageError{Op: "read", Path: k, Err: err}
	}

	return text, true, nil
}

func (s *Store) Save(ctx context.Context, key puzzle.Key, text string) error {
	k := s.Key(key)
	if err := s.client.Set(ctx, k, text, 0).Err(); err != nil {
		return &input.StorageError{Op: "write", Path: k, Err: err}
	}
	return nil
}

// Clear deletes every key under the store prefix.
func (s *Store) Clear(ctx context.Context) error {
	pattern := s.prefix + "*"

	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return &input.StorageError{Op: "scan", Path: pattern, Err: err}
	}

	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return &input.StorageError{Op: "remove", Path: pattern, Err: err}
	}

	return nil
}
