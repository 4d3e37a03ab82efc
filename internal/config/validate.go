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
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Events.validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}

	return nil
}

func (e *EventsConfig) validate() error {
	if e.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", e.DefaultPageSize)
	}
	if e.MaxPageSize < e.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)",
			e.MaxPageSize, e.DefaultPageSize)
	}
	if e.ImportMaxRows <= 0 {
		return fmt.Errorf("import_max_rows must be > 0 (got %d)", e.ImportMaxRows)
	}
	if e.ExportMaxRows <= 0 {
		return fmt.Errorf("export_max_rows must be > 0 (got %d)", e.ExportMaxRows)
	}
	return nil
}
