package config

import (
	"fmt"
	"time"
)

// JWTConfig holds configuration for session token generation and validation.
// Tokens live as long as a session.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// RequireSecret returns an error when no signing secret is configured.
// Commands that serve the API call it before starting.
func (c *JWTConfig) RequireSecret() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required but not set")
	}
	if len(c.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters, got: %d", len(c.Secret))
	}
	if c.Expiration < time.Minute {
		return fmt.Errorf("session timeout must be at least 1 minute, got: %s", c.Expiration)
	}
	return nil
}
