package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
	"github.com/rs/zerolog"
)

// newTestStore connects to REDIS_ADDR and skips the test when it is not set.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping Redis store tests")
	}

	logger := zerolog.Nop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := Connect(ctx, Config{Addr: addr, Password: os.Getenv("REDIS_PASSWORD")}, 1, &logger)
	if err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	store := NewStore(client, fmt.Sprintf("aoc:test:%d:", time.Now().UnixNano()))
	t.Cleanup(func() { _ = store.Clear(context.Background()) })
	return store
}

func TestStore_Key(t *testing.T) {
	store := NewStore(nil, "")
	if got := store.Key(puzzle.Key{Year: 2022, Day: 5}); got != "aoc:input:2022_5" {
		t.Errorf("Key() = %q", got)
	}
}

func TestStore_LoadSaveClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := puzzle.Key{Year: 2022, Day: 1}

	_, found, err := store.Load(ctx, key)
	if err != nil || found {
		t.Fatalf("Load() on empty store = found %v, err %v", found, err)
	}

	if err := store.Save(ctx, key, "1000\n2000\n"); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	text, found, err := store.Load(ctx, key)
	if err != nil || !found || text != "1000\n2000\n" {
		t.Fatalf("Load() = %q, %v, %v", text, found, err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	_, found, err = store.Load(ctx, key)
	if err != nil || found {
		t.Errorf("Load() after Clear() = found %v, err %v", found, err)
	}
}
