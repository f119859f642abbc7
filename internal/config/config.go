// Package config loads the bot configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	// Token is the chat platform bot token.
	Token string `mapstructure:"token"`

	// Mode selects how updates arrive: "poll" (long polling) or "webhook".
	Mode string `mapstructure:"mode"`

	// Listen is the HTTP listen address for webhook mode and metrics.
	Listen string `mapstructure:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// OutputDir is where the chat REPL writes result files.
	OutputDir string `mapstructure:"output_dir"`

	Store StoreConfig `mapstructure:"store"`
}

// StoreConfig selects and configures the session store backend.
type StoreConfig struct {
	// Backend is one of memory, redis, file.
	Backend string `mapstructure:"backend"`

	// Path is the session directory for the file backend.
	Path string `mapstructure:"path"`

	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`

	// Lock enables the distributed per-session lock for multi-replica runs.
	Lock bool `mapstructure:"lock"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mode:      "poll",
		Listen:    ":8080",
		LogLevel:  "info",
		OutputDir: "output",
		Store: StoreConfig{
			Backend: "memory",
			Redis: RedisConfig{
				Addr: "localhost:6379",
				TTL:  24 * time.Hour,
			},
		},
	}
}

// Load reads the YAML file at path (when it exists) over the defaults and
// then applies JSONBOT_* environment overrides. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			// YAML into a generic map first, then a strict-ish decode into
			// the typed config. Unknown keys are tolerated so configs can
			// carry deployment extras.
			var raw map[string]any
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				Result:           cfg,
				WeaklyTypedInput: true,
				DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			})
			if err != nil {
				return nil, fmt.Errorf("failed to build config decoder: %w", err)
			}
			if err := dec.Decode(raw); err != nil {
				return nil, fmt.Errorf("failed to decode config: %w", err)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("JSONBOT_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("JSONBOT_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := os.Getenv("JSONBOT_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("JSONBOT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("JSONBOT_STORE_BACKEND"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("JSONBOT_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("JSONBOT_REDIS_ADDR"); v != "" {
		cfg.Store.Redis.Addr = v
	}
	if v := os.Getenv("JSONBOT_REDIS_PASSWORD"); v != "" {
		cfg.Store.Redis.Password = v
	}
	if v := os.Getenv("JSONBOT_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Store.Redis.DB = db
		}
	}
}

func (c *Config) validate() error {
	switch c.Mode {
	case "poll", "webhook":
	default:
		return fmt.Errorf("invalid mode %q (want poll or webhook)", c.Mode)
	}
	switch c.Store.Backend {
	case "memory", "redis", "file":
	default:
		return fmt.Errorf("invalid store backend %q (want memory, redis or file)", c.Store.Backend)
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
