package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d,%d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.MaxLoginAttempts <= 0 {
		return fmt.Errorf("auth.max_login_attempts must be > 0 (got %d)", c.Auth.MaxLoginAttempts)
	}

	if c.Catalog.SeedBatchSize <= 0 || c.Catalog.SeedBatchSize > 500 {
		// 500 is the store's transactional batch-size limit.
		return fmt.Errorf("catalog.seed_batch_size must be within [1,500] (got %d)", c.Catalog.SeedBatchSize)
	}

	return nil
}
