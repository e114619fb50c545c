package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"go.yaml.in/yaml/v3"
)

const defaultPath = "configs/aoc.yaml"

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	Cache   CacheConfig   `yaml:"cache"`
	Remote  RemoteConfig  `yaml:"remote"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
	API     APIConfig     `yaml:"api"`
}

type CacheConfig struct {
	Backend       string      `yaml:"backend"`
	CacheRootPath string      `yaml:"cache_root_path"`
	Redis         RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

type RemoteConfig struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

type SessionConfig struct {
	File string `yaml:"file"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type APIConfig struct {
	Port string `yaml:"port"`
}

// Load reads the YAML file named by AOC_CONFIG_PATH, or configs/aoc.yaml.
// A missing default file yields the defaults; a missing explicit file is an error.
func Load() (*Config, error) {
	path := os.Getenv("AOC_CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = BackendFile
	}
	if cfg.Cache.CacheRootPath == "" {
		cfg.Cache.CacheRootPath = "downloaded_inputs"
	}
	if cfg.Cache.Redis.Addr == "" {
		cfg.Cache.Redis.Addr = "localhost:6379"
	}
	if cfg.Cache.Redis.KeyPrefix == "" {
		cfg.Cache.Redis.KeyPrefix = "aoc:input:"
	}
	if cfg.Remote.BaseURL == "" {
		cfg.Remote.BaseURL = "https://adventofcode.com"
	}
	if cfg.Remote.UserAgent == "" {
		cfg.Remote.UserAgent = "aoc-runner"
	}
	if cfg.Session.File == "" {
		cfg.Session.File = "session_id"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.API.Port == "" {
		cfg.API.Port = "18082"
	}
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.Cache.Backend, "AOC_CACHE_BACKEND")
	setFromEnv(&cfg.Cache.CacheRootPath, "AOC_CACHE_DIR")
	setFromEnv(&cfg.Cache.Redis.Addr, "REDIS_ADDR")
	setFromEnv(&cfg.Cache.Redis.Password, "REDIS_PASSWORD")
	setFromEnv(&cfg.Remote.BaseURL, "AOC_BASE_URL")
	setFromEnv(&cfg.Session.File, "AOC_SESSION_FILE")
	setFromEnv(&cfg.Log.Level, "LOG_LEVEL")
	setFromEnv(&cfg.API.Port, "AOC_API_PORT")
}

func setFromEnv(field *string, key string) {
	if value := os.Getenv(key); value != "" {
		*field = value
	}
}

func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis:
	default:
		return fmt.Errorf("unknown cache backend %q, expected %s or %s", c.Cache.Backend, BackendFile, BackendRedis)
	}
	if c.Cache.Redis.DB < 0 {
		return fmt.Errorf("redis db must not be negative, got %d", c.Cache.Redis.DB)
	}
	if c.Remote.Timeout < 0 {
		return fmt.Errorf("remote timeout must not be negative, got %s", c.Remote.Timeout)
	}
	if port, err := strconv.Atoi(c.API.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid api port %q", c.API.Port)
	}

	return nil
}
