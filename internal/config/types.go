package config

import "time"

// Mode mirrors gin's run modes.
type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
	ModeTest    Mode = "test"
)

// Config is the top-level portfolio configuration, corresponding to portfolio.yml.
type Config struct {
	Port           int           `yaml:"port" koanf:"port"`
	Mode           Mode          `yaml:"mode" koanf:"mode"`
	LogLevel       string        `yaml:"log_level" koanf:"log_level"`
	ContentFile    string        `yaml:"content_file" koanf:"content_file"`
	WatchContent   bool          `yaml:"watch_content" koanf:"watch_content"`
	DatabasePath   string        `yaml:"database_path" koanf:"database_path"`
	AssetsDir      string        `yaml:"assets_dir" koanf:"assets_dir"`
	ImagesDir      string        `yaml:"images_dir" koanf:"images_dir"`
	SessionMaxIdle time.Duration `yaml:"session_max_idle" koanf:"session_max_idle"`

	Admin    AdminConfig    `yaml:"admin" koanf:"admin"`
	SMTP     SMTPConfig     `yaml:"smtp" koanf:"smtp"`
	Tracking TrackingConfig `yaml:"tracking" koanf:"tracking"`
}

// AdminConfig holds the dashboard credentials.
type AdminConfig struct {
	Username string `yaml:"username" koanf:"username"`
	Password string `yaml:"password" koanf:"password"`
}

// SMTPConfig holds the settings used to forward contact messages.
type SMTPConfig struct {
	Host string `yaml:"host" koanf:"host"`
	Port string `yaml:"port" koanf:"port"`
	User string `yaml:"user" koanf:"user"`
	Pass string `yaml:"pass" koanf:"pass"`
	To   string `yaml:"to" koanf:"to"`
}

// TrackingConfig controls visitor analytics.
type TrackingConfig struct {
	Enabled       bool `yaml:"enabled" koanf:"enabled"`
	RetentionDays int  `yaml:"retention_days" koanf:"retention_days"`
}
