package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is centralized process configuration.
// File defaults (CONFIG_FILE, optional) are merged with environment
// overrides so local and deployed runs share one loader.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string
	RedisURL    string

	ViewSyncInterval  time.Duration
	ViewSyncBatchSize int
	ViewSyncDisabled  bool
}

// configFile mirrors the YAML schema used by configs/default.yaml.
type configFile struct {
	Service struct {
		Name     string `yaml:"name"`
		HTTPPort string `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresDSN string `yaml:"postgres_dsn"`
		RedisURL    string `yaml:"redis_url"`
	} `yaml:"dependencies"`
	ViewSync struct {
		Interval  string `yaml:"interval"`
		BatchSize int    `yaml:"batch_size"`
		Disabled  bool   `yaml:"disabled"`
	} `yaml:"view_sync"`
}

func Load() (Config, error) {
	cfg := Config{
		ServiceName:       "creatorpay",
		HTTPPort:          "8080",
		ViewSyncInterval:  6 * time.Hour,
		ViewSyncBatchSize: 100,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		var file configFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
		applyFile(&cfg, file)
	}

	if v := strings.TrimSpace(os.Getenv("SERVICE_NAME")); v != "" {
		cfg.ServiceName = v
	}
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		cfg.HTTPPort = v
	}
	if v := strings.TrimSpace(os.Getenv("POSTGRES_DSN")); v != "" {
		cfg.PostgresDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_URL")); v != "" {
		cfg.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv("VIEW_SYNC_INTERVAL")); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse VIEW_SYNC_INTERVAL: %w", err)
		}
		cfg.ViewSyncInterval = interval
	}
	if v := strings.TrimSpace(os.Getenv("VIEW_SYNC_BATCH_SIZE")); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse VIEW_SYNC_BATCH_SIZE: %w", err)
		}
		cfg.ViewSyncBatchSize = size
	}
	if v := strings.TrimSpace(os.Getenv("VIEW_SYNC_DISABLED")); v != "" {
		disabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse VIEW_SYNC_DISABLED: %w", err)
		}
		cfg.ViewSyncDisabled = disabled
	}

	if cfg.ViewSyncInterval <= 0 {
		cfg.ViewSyncInterval = 6 * time.Hour
	}
	if cfg.ViewSyncBatchSize <= 0 {
		cfg.ViewSyncBatchSize = 100
	}
	return cfg, nil
}

func applyFile(cfg *Config, file configFile) {
	if v := strings.TrimSpace(file.Service.Name); v != "" {
		cfg.ServiceName = v
	}
	if v := strings.TrimSpace(file.Service.HTTPPort); v != "" {
		cfg.HTTPPort = v
	}
	if v := strings.TrimSpace(file.Dependencies.PostgresDSN); v != "" {
		cfg.PostgresDSN = v
	}
	if v := strings.TrimSpace(file.Dependencies.RedisURL); v != "" {
		cfg.RedisURL = v
	}
	if v := strings.TrimSpace(file.ViewSync.Interval); v != "" {
		if interval, err := time.ParseDuration(v); err == nil {
			cfg.ViewSyncInterval = interval
		}
	}
	if file.ViewSync.BatchSize > 0 {
		cfg.ViewSyncBatchSize = file.ViewSync.BatchSize
	}
	if file.ViewSync.Disabled {
		cfg.ViewSyncDisabled = true
	}
}
