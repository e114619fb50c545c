package input

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/puzzle"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Store persists cache entries, one per puzzle key.
type Store interface {
	// Load returns the cached text and true, or false on a miss.
	Load(ctx context.Context, key puzzle.Key) (string, bool, error)
	// Save writes the whole text for key.
	Save(ctx context.Context, key puzzle.Key, text string) error
	// Clear removes every entry.
	Clear(ctx context.Context) error
}

const keepFile = ".keep"

// FileStore keeps one {year}_{day}.txt file per key under Root.
type FileStore struct {
	Root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root}
}

func (s *FileStore) Path(key puzzle.Key) string {
	return filepath.Join(s.Root, key.CacheName())
}

func (s *FileStore) Load(_ context.Context, key puzzle.Key) (string, bool, error) {
	path := s.Path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return "", false, nil
		}
		return "", false, &StorageError{Op: "read", Path: path, Err: err}
	}

	return string(data), true, nil
}

func (s *FileStore) Save(_ context.Context, key puzzle.Key, text string) error {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return &StorageError{Op: "mkdir", Path: s.Root, Err: err}
	}

	path := s.Path(key)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}

	return nil
}

// Clear deletes the cache root and recreates it with an empty .keep marker.
func (s *FileStore) Clear(_ context.Context) error {
	if err := os.RemoveAll(s.Root); err != nil {
		return &StorageError{Op: "remove", Path: s.Root, Err: err}
	}
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return &StorageError{Op: "mkdir", Path: s.Root, Err: err}
	}

	keep := filepath.Join(s.Root, keepFile)
	if err := os.WriteFile(keep, nil, 0o644); err != nil {
		return &StorageError{Op: "write", Path: keep, Err: err}
	}

	return nil
}
