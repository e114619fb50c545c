package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `cache:
  backend: redis
  cache_root_path: /tmp/inputs
  redis:
    addr: redis:6379
    db: 2
remote:
  base_url: http://localhost:9999
  timeout: 5s
session:
  file: .session
log:
  level: debug
api:
  port: "9000"
`)
	t.Setenv("AOC_CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Cache.Backend != BackendRedis {
		t.Errorf("Expected backend redis, got %s", cfg.Cache.Backend)
	}
	if cfg.Cache.CacheRootPath != "/tmp/inputs" {
		t.Errorf("Expected cache root /tmp/inputs, got %s", cfg.Cache.CacheRootPath)
	}
	if cfg.Cache.Redis.Addr != "redis:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("Unexpected redis config: %+v", cfg.Cache.Redis)
	}
	if cfg.Cache.Redis.KeyPrefix != "aoc:input:" {
		t.Errorf("Expected default key prefix, got %s", cfg.Cache.Redis.KeyPrefix)
	}
	if cfg.Remote.Timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %s", cfg.Remote.Timeout)
	}
	if cfg.Remote.UserAgent != "aoc-runner" {
		t.Errorf("Expected default user agent, got %s", cfg.Remote.UserAgent)
	}
	if cfg.Session.File != ".session" || cfg.Log.Level != "debug" || cfg.API.Port != "9000" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AOC_CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Expected backend file, got %s", cfg.Cache.Backend)
	}
	if cfg.Cache.CacheRootPath != "downloaded_inputs" {
		t.Errorf("Expected cache root downloaded_inputs, got %s", cfg.Cache.CacheRootPath)
	}
	if cfg.Remote.BaseURL != "https://adventofcode.com" {
		t.Errorf("Expected default base url, got %s", cfg.Remote.BaseURL)
	}
	if cfg.Session.File != "session_id" {
		t.Errorf("Expected session file session_id, got %s", cfg.Session.File)
	}
	if cfg.API.Port != "18082" {
		t.Errorf("Expected port 18082, got %s", cfg.API.Port)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("AOC_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for a missing explicit config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Setenv("AOC_CONFIG_PATH", writeConfig(t, "cache: [unclosed"))

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Fatalf("Expected parse error, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AOC_CONFIG_PATH", writeConfig(t, "cache:\n  cache_root_path: from-file\n"))
	t.Setenv("AOC_CACHE_DIR", "from-env")
	t.Setenv("AOC_BASE_URL", "http://override")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("AOC_API_PORT", "8081")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Cache.CacheRootPath != "from-env" {
		t.Errorf("Expected env cache dir, got %s", cfg.Cache.CacheRootPath)
	}
	if cfg.Remote.BaseURL != "http://override" {
		t.Errorf("Expected env base url, got %s", cfg.Remote.BaseURL)
	}
	if cfg.Log.Level != "warn" || cfg.API.Port != "8081" {
		t.Errorf("Unexpected overrides: %+v", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		var cfg Config
		applyDefaults(&cfg)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"redis backend", func(c *Config) { c.Cache.Backend = BackendRedis }, false},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "s3" }, true},
		{"negative db", func(c *Config) { c.Cache.Redis.DB = -1 }, true},
		{"negative timeout", func(c *Config) { c.Remote.Timeout = -time.Second }, true},
		{"bad port", func(c *Config) { c.API.Port = "http" }, true},
		{"port out of range", func(c *Config) { c.API.Port = "70000" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ShippedConfigKeepsClientDefaults(t *testing.T) {
	t.Setenv("AOC_CONFIG_PATH", filepath.Join("..", "..", "configs", "aoc.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Remote.Timeout != 0 {
		t.Errorf("Expected no remote timeout, got %s", cfg.Remote.Timeout)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Expected backend file, got %s", cfg.Cache.Backend)
	}
}
