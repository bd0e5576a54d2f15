package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/etnz/finance"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return errors.New("database.path is required")
		}
	case "postgres":
		if err := c.Database.Postgres.validate("database.postgres"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("database.driver must be sqlite or postgres, got %q", c.Database.Driver)
	}

	if err := validateURL("quotes.equity_url", c.Quotes.EquityURL); err != nil {
		return err
	}
	if err := validateURL("quotes.crypto_url", c.Quotes.CryptoURL); err != nil {
		return err
	}
	if c.Quotes.Timeout <= 0 {
		return fmt.Errorf("quotes.timeout must be positive, got %s", c.Quotes.Timeout)
	}

	if c.Budget.Threshold <= 0 {
		return fmt.Errorf("budget.threshold must be positive, got %v", c.Budget.Threshold)
	}
	seen := make(map[string]bool)
	for _, cat := range c.Budget.Categories {
		if cat == "" {
			return errors.New("budget.categories cannot contain an empty category")
		}
		if seen[cat] {
			return fmt.Errorf("budget.categories contains %q twice", cat)
		}
		seen[cat] = true
	}

	if err := finance.ValidateCurrency(c.Currency); err != nil {
		return fmt.Errorf("currency: %w", err)
	}
	return nil
}

func (db *PostgresConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Port < 1 || db.Port > 65535 {
		return fmt.Errorf("%s.port must be between 1 and 65535, got %d", prefix, db.Port)
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) url, got %q", field, raw)
	}
	return nil
}
