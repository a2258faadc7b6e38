package config

import (
	"fmt"
	"strings"
	"time"
)

// JWTConfig holds what the API needs to verify bearer tokens issued by the
// external auth service.
type JWTConfig struct {
	Secret string
	Leeway time.Duration
}

// JWT returns the token verification settings, or nil when no secret is
// configured and bearer checks are disabled.
func (c *Config) JWT() (*JWTConfig, error) {
	secret := strings.TrimSpace(c.Auth.JWTSecret)
	if secret == "" {
		return nil, nil
	}
	cfg := &JWTConfig{Secret: secret, Leeway: c.Auth.Leeway}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if len(c.Secret) < 16 {
		return fmt.Errorf("auth.jwt_secret must be at least 16 characters, got: %d", len(c.Secret))
	}
	if c.Leeway < 0 {
		return fmt.Errorf("auth.leeway cannot be negative, got: %s", c.Leeway)
	}
	return nil
}
