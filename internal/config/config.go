package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override. A double underscore
// separates nested keys: PORTFOLIO_SMTP__HOST sets smtp.host.
const EnvPrefix = "PORTFOLIO_"

// DefaultConfig returns a Config suitable for local development.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		Mode:           ModeDebug,
		LogLevel:       "info",
		ContentFile:    "content.yml",
		DatabasePath:   "data/portfolio.db",
		AssetsDir:      "./assets",
		ImagesDir:      "./images",
		SessionMaxIdle: 30 * time.Minute,
		Admin: AdminConfig{
			Username: "admin",
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		Tracking: TrackingConfig{
			Enabled:       true,
			RetentionDays: 365,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// PORTFOLIO_* environment variables and finally the platform PORT variable.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", p, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validModes = map[Mode]bool{
	ModeDebug:   true,
	ModeRelease: true,
	ModeTest:    true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.SessionMaxIdle <= 0 {
		return fmt.Errorf("session_max_idle must be positive")
	}
	if c.Tracking.RetentionDays < 0 {
		return fmt.Errorf("tracking.retention_days must be non-negative")
	}
	if c.Mode == ModeRelease && c.Admin.Password == "" {
		return fmt.Errorf("admin.password is required in release mode")
	}
	if (c.SMTP.User == "") != (c.SMTP.Pass == "") {
		return fmt.Errorf("smtp.user and smtp.pass must be set together")
	}
	return nil
}

// Retention is how long visitor data is kept; zero disables cleanup.
func (c *Config) Retention() time.Duration {
	return time.Duration(c.Tracking.RetentionDays) * 24 * time.Hour
}
