package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultBcryptCost        = 12
	DefaultPasswordMinLength = 8

	// bcrypt ignores everything past 72 bytes
	maxPasswordBytes = 72
)

// ErrWeakPassword is returned when a password is shorter than the configured minimum.
var ErrWeakPassword = errors.New("weak password: too short")

// ErrPasswordTooLong is returned when password plus pepper exceeds what bcrypt hashes.
var ErrPasswordTooLong = errors.New("password is too long")

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
	MinLength  int
}

func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("config error: BCRYPT_COST out of range: %d (must be 10-14)", c.BcryptCost)
	}
	if c.MinLength < 6 {
		return fmt.Errorf("config error: PASSWORD_MIN_LENGTH must be at least 6, got: %d", c.MinLength)
	}
	if len(c.Pepper) > 32 {
		return fmt.Errorf("config error: PASSWORD_PEPPER must be at most 32 bytes")
	}
	return nil
}

// CheckStrength rejects passwords shorter than MinLength characters or too long to hash.
func (c *PasswordConfig) CheckStrength(pw string) error {
	if utf8.RuneCountInString(pw) < c.MinLength {
		return ErrWeakPassword
	}
	if len(pw)+len(c.Pepper) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	if err := c.CheckStrength(pw); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pw+c.Pepper), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash (with optional pepper).
// An empty stored hash never matches.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw+c.Pepper)) == nil
}
