package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxUploadMB = 10
	DefaultLogLevel    = "info"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	StaticDir   string `yaml:"static_dir"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// DatasetConfig selects a dataset to load at startup. Path wins over Demo.
type DatasetConfig struct {
	Path string `yaml:"path"`
	Demo bool   `yaml:"demo"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// MaxUploadBytes returns the upload limit in bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return int64(s.MaxUploadMB) << 20
}

// SlogLevel maps the configured level name to a slog level.
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix LIFTLOG_ and underscore-separated paths:
//
//	LIFTLOG_SERVER_HOST, LIFTLOG_SERVER_PORT, LIFTLOG_SERVER_STATIC_DIR,
//	LIFTLOG_SERVER_MAX_UPLOAD_MB,
//	LIFTLOG_TAILSCALE_ENABLED, LIFTLOG_TAILSCALE_HOSTNAME, LIFTLOG_TAILSCALE_STATE_DIR,
//	LIFTLOG_DATASET_PATH, LIFTLOG_DATASET_DEMO,
//	LIFTLOG_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTLOG_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTLOG_SERVER_STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("LIFTLOG_SERVER_MAX_UPLOAD_MB"); v != "" {
		if mb, err := strconv.Atoi(v); err == nil {
			cfg.Server.MaxUploadMB = mb
		}
	}
	if v := os.Getenv("LIFTLOG_TAILSCALE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("LIFTLOG_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("LIFTLOG_TAILSCALE_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("LIFTLOG_DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv("LIFTLOG_DATASET_DEMO"); v != "" {
		if demo, err := strconv.ParseBool(v); err == nil {
			cfg.Dataset.Demo = demo
		}
	}
	if v := os.Getenv("LIFTLOG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.MaxUploadMB == 0 {
		cfg.Server.MaxUploadMB = DefaultMaxUploadMB
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Server.MaxUploadMB < 0 {
		return fmt.Errorf("server.max_upload_mb must not be negative")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
