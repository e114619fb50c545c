package setup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/config"
	"github.com/povarna/generative-ai-with-go/aoc-runner/internal/input"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestWire_FileBackend(t *testing.T) {
	cfg := &config.Config{
		Cache:  config.CacheConfig{Backend: config.BackendFile, CacheRootPath: t.TempDir()},
		Remote: config.RemoteConfig{BaseURL: "http://127.0.0.1:1", UserAgent: "test"},
	}

	deps, err := Wire(context.Background(), cfg, newTestLogger())
	if err != nil {
		t.Fatalf("Wire() failed: %v", err)
	}
	defer deps.Close()

	if deps.Runner == nil || deps.Provider == nil || deps.Registry == nil {
		t.Fatalf("Wire() returned incomplete dependencies: %+v", deps)
	}
	if len(deps.Runner.List()) == 0 {
		t.Error("expected registered puzzles")
	}
}

func TestWire_UnknownBackend(t *testing.T) {
	cfg := &config.Config{Cache: config.CacheConfig{Backend: "s3"}}

	if _, err := Wire(context.Background(), cfg, newTestLogger()); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestResolveCredential(t *testing.T) {
	dir := t.TempDir()
	sessionFile := filepath.Join(dir, "session_id")
	if err := os.WriteFile(sessionFile, []byte("from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}
	emptyFile := filepath.Join(dir, "empty")
	if err := os.WriteFile(emptyFile, []byte("  \n"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		explicit string
		env      string
		file     string
		want     string
		wantErr  error
	}{
		{"explicit wins", " from-flag ", "from-env", sessionFile, "from-flag", nil},
		{"env before file", "", "from-env", sessionFile, "from-env", nil},
		{"file last", "", "", sessionFile, "from-file", nil},
		{"missing file", "", "", filepath.Join(dir, "nope"), "", input.ErrMissingCredential},
		{"empty file", "", "", emptyFile, "", input.ErrMissingCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AOC_SESSION", tt.env)

			got, err := ResolveCredential(tt.explicit, tt.file)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveCredential() = %q, want %q", got, tt.want)
			}
		})
	}
}
