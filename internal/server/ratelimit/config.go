package ratelimit

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EndpointConfig is the limit applied to one route or route prefix.
type EndpointConfig struct {
	Path   string        // Route path, or prefix when it ends with "/"
	Method string        // HTTP method
	Limit  int           // Requests per Window
	Window time.Duration // Refill period
	Burst  int           // Bucket capacity, Limit when 0
}

func (e *EndpointConfig) key() string {
	return e.Method + " " + e.Path
}

// LoadConfig reads RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("RATE_LIMIT")
	v.AutomaticEnv()
	v.SetDefault("enabled", true)
	v.SetDefault("default_limit", 600)
	v.SetDefault("default_window", time.Minute)
	v.SetDefault("cleanup_interval", 5*time.Minute)
	v.SetDefault("idle_timeout", time.Hour)
	v.SetDefault("whitelist", "")
	v.SetDefault("blacklist", "")

	if !v.GetBool("enabled") {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    v.GetInt("default_limit"),
		DefaultWindow:   v.GetDuration("default_window"),
		CleanupInterval: v.GetDuration("cleanup_interval"),
		IdleTimeout:     v.GetDuration("idle_timeout"),
		Whitelist:       parseIPList(v.GetString("whitelist")),
		Blacklist:       parseIPList(v.GetString("blacklist")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route limits. Reads fall back to the default limit.
func DefaultEndpointConfigs() []EndpointConfig {
	write := func(method string) EndpointConfig {
		return EndpointConfig{Path: "/v1/", Method: method, Limit: 120, Window: time.Minute, Burst: 20}
	}
	return []EndpointConfig{
		// Credentials
		{Path: "/v1/auth/login", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		{Path: "/v1/auth/register", Method: "POST", Limit: 5, Window: time.Hour, Burst: 3},
		{Path: "/v1/auth/password", Method: "PUT", Limit: 5, Window: time.Hour, Burst: 3},

		// Uploads
		{Path: "/v1/documents", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},

		// Every other write
		write("POST"),
		write("PUT"),
		write("PATCH"),
		write("DELETE"),
	}
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
