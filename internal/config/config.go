package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStorageKey         = "memento-storage"
	DefaultTranscriptionDelay = 2 * time.Second
	DefaultReplyDelay         = 1500 * time.Millisecond
	DefaultSessionTTL         = 24 * time.Hour
)

type Config struct {
	App struct {
		Env       string `yaml:"env"`
		LogLevel  string `yaml:"log_level"`
		LogFormat string `yaml:"log_format"`
	} `yaml:"app"`
	HTTP struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"http"`
	Storage struct {
		Driver    string `yaml:"driver"`
		Key       string `yaml:"key"`
		Dir       string `yaml:"dir"`
		DSN       string `yaml:"dsn"`
		RedisAddr string `yaml:"redis_addr"`
	} `yaml:"storage"`
	Auth struct {
		JWTSecret  string        `yaml:"jwt_secret"`
		SessionTTL time.Duration `yaml:"session_ttl"`
	} `yaml:"auth"`
	Content struct {
		TranscriptionDelay time.Duration `yaml:"transcription_delay"`
		ReplyDelay         time.Duration `yaml:"reply_delay"`
	} `yaml:"content"`
}

func (c *Config) IsProduction() bool {
	return isProduction(c.App.Env)
}

func isProduction(env string) bool {
	return strings.EqualFold(env, "production") || strings.EqualFold(env, "prod")
}

// Load reads the YAML file at path (a missing file is not an error), then applies
// MEMENTO_* environment overrides and defaults. A .env file in the working
// directory is loaded unless MEMENTO_ENV, or app.env when it is unset, names
// production.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	env := cfg.App.Env
	setString(&env, "MEMENTO_ENV")
	if !isProduction(env) {
		_ = godotenv.Load()
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.App.Env, "MEMENTO_ENV")
	setString(&c.App.LogLevel, "MEMENTO_LOG_LEVEL")
	setString(&c.App.LogFormat, "MEMENTO_LOG_FORMAT")
	setString(&c.HTTP.Addr, "MEMENTO_HTTP_ADDR")
	if v := strings.TrimSpace(os.Getenv("MEMENTO_ALLOWED_ORIGINS")); v != "" {
		c.HTTP.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.HTTP.AllowedOrigins = append(c.HTTP.AllowedOrigins, origin)
			}
		}
	}
	setString(&c.Storage.Driver, "MEMENTO_STORAGE_DRIVER")
	setString(&c.Storage.Key, "MEMENTO_STORAGE_KEY")
	setString(&c.Storage.Dir, "MEMENTO_STORAGE_DIR")
	setString(&c.Storage.DSN, "MEMENTO_DATABASE_DSN")
	setString(&c.Storage.RedisAddr, "MEMENTO_REDIS_ADDR")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")

	for name, dst := range map[string]*time.Duration{
		"MEMENTO_SESSION_TTL":         &c.Auth.SessionTTL,
		"MEMENTO_TRANSCRIPTION_DELAY": &c.Content.TranscriptionDelay,
		"MEMENTO_REPLY_DELAY":         &c.Content.ReplyDelay,
	} {
		v := strings.TrimSpace(os.Getenv(name))
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = d
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.LogFormat == "" {
		if c.IsProduction() {
			c.App.LogFormat = "json"
		} else {
			c.App.LogFormat = "text"
		}
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if len(c.HTTP.AllowedOrigins) == 0 {
		c.HTTP.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "file"
	}
	if c.Storage.Key == "" {
		c.Storage.Key = DefaultStorageKey
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = defaultDataDir()
	}
	if c.Auth.SessionTTL <= 0 {
		c.Auth.SessionTTL = DefaultSessionTTL
	}
	if c.Content.TranscriptionDelay <= 0 {
		c.Content.TranscriptionDelay = DefaultTranscriptionDelay
	}
	if c.Content.ReplyDelay <= 0 {
		c.Content.ReplyDelay = DefaultReplyDelay
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".memento"
	}
	return filepath.Join(home, ".memento")
}

func setString(dst *string, env string) {
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		*dst = v
	}
}
