// Package config loads the service configuration from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default values used when neither the environment nor the config file set a key.
const (
	DefaultPort             = 8080
	DefaultAppName          = "Dashboard Candidatures"
	DefaultAppVersion       = "1.0.0"
	DefaultMaxFileSize      = 10 * 1024 * 1024
	DefaultSessionTimeout   = 24 * time.Hour
	DefaultMaxRetryAttempts = 3
	DefaultDigestSchedule   = "0 0 8 * * *"
	DefaultDigestTimezone   = "UTC"
)

// DefaultAllowedFileTypes are the MIME types accepted for uploaded documents.
var DefaultAllowedFileTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"image/jpeg",
	"image/png",
}

// Config is the start-up configuration of the service.
type Config struct {
	DatabaseURL string
	Port        int

	AppName    string
	AppVersion string

	// Uploads
	MaxFileSize      int64
	AllowedFileTypes []string

	// Feature flags
	EnableAnalytics      bool
	EnableErrorReporting bool

	SessionTimeout   time.Duration
	MaxRetryAttempts int

	// Daily digest (cron expression with seconds field)
	DigestSchedule string
	DigestTimezone string

	JWT      JWTConfig
	Password PasswordConfig
}

// Load reads the configuration. Environment variables always win over the
// config file. When path is empty, a jobtrack.{yaml,json,toml} file in the
// working directory is used if present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("jobtrack")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("app_name", DefaultAppName)
	v.SetDefault("app_version", DefaultAppVersion)
	v.SetDefault("max_file_size", DefaultMaxFileSize)
	v.SetDefault("allowed_file_types", strings.Join(DefaultAllowedFileTypes, ","))
	v.SetDefault("enable_analytics", false)
	v.SetDefault("enable_error_reporting", false)
	v.SetDefault("session_timeout", DefaultSessionTimeout.String())
	v.SetDefault("max_retry_attempts", DefaultMaxRetryAttempts)
	v.SetDefault("digest_schedule", DefaultDigestSchedule)
	v.SetDefault("digest_timezone", DefaultDigestTimezone)
	v.SetDefault("bcrypt_cost", DefaultBcryptCost)
	v.SetDefault("password_min_length", DefaultPasswordMinLength)

	// AutomaticEnv only resolves keys viper already knows about
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("password_pepper", "")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:          v.GetString("database_url"),
		Port:                 v.GetInt("port"),
		AppName:              v.GetString("app_name"),
		AppVersion:           v.GetString("app_version"),
		MaxFileSize:          v.GetInt64("max_file_size"),
		AllowedFileTypes:     splitList(v.Get("allowed_file_types")),
		EnableAnalytics:      v.GetBool("enable_analytics"),
		EnableErrorReporting: v.GetBool("enable_error_reporting"),
		SessionTimeout:       v.GetDuration("session_timeout"),
		MaxRetryAttempts:     v.GetInt("max_retry_attempts"),
		DigestSchedule:       v.GetString("digest_schedule"),
		DigestTimezone:       v.GetString("digest_timezone"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("jwt_secret"),
		Expiration: cfg.SessionTimeout,
	}
	cfg.Password = PasswordConfig{
		BcryptCost: v.GetInt("bcrypt_cost"),
		Pepper:     v.GetString("password_pepper"),
		MinLength:  v.GetInt("password_min_length"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. DatabaseURL and the JWT secret are checked by
// the commands that need them.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT out of range: %d", c.Port)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("config error: MAX_FILE_SIZE must be positive")
	}
	if len(c.AllowedFileTypes) == 0 {
		return fmt.Errorf("config error: ALLOWED_FILE_TYPES cannot be empty")
	}
	if c.SessionTimeout < time.Minute {
		return fmt.Errorf("config error: SESSION_TIMEOUT must be at least 1m, got: %s", c.SessionTimeout)
	}
	if c.MaxRetryAttempts < 1 {
		return fmt.Errorf("config error: MAX_RETRY_ATTEMPTS must be at least 1")
	}
	if _, err := time.LoadLocation(c.DigestTimezone); err != nil {
		return fmt.Errorf("config error: invalid DIGEST_TIMEZONE: %w", err)
	}
	return c.Password.normalize()
}

// splitList accepts either a list (config file) or a comma separated string (environment).
func splitList(raw any) []string {
	var parts []string
	switch val := raw.(type) {
	case []string:
		parts = val
	case []any:
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
	case string:
		parts = strings.Split(val, ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
