package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth.refresh_token_ttl must be > 0 (got %v)", c.Auth.RefreshTokenTTL)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31 (got %d)", c.Auth.BcryptCost)
	}

	if err := c.Scan.validate(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return fmt.Errorf("rate_limit.rps must be > 0 (got %v)", c.RateLimit.RPS)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
		}
	}

	return nil
}

func (s *ScanConfig) validate() error {
	if s.MaxPayloadBytes <= 0 {
		return fmt.Errorf("max_payload_bytes must be > 0 (got %d)", s.MaxPayloadBytes)
	}
	if s.DefaultListLimit <= 0 {
		return fmt.Errorf("default_list_limit must be > 0 (got %d)", s.DefaultListLimit)
	}
	if s.MaxListLimit < s.DefaultListLimit {
		return fmt.Errorf("max_list_limit must be >= default_list_limit (got %d < %d)", s.MaxListLimit, s.DefaultListLimit)
	}
	return nil
}
