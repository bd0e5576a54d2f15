package config

import (
	"slices"
	"time"

	"github.com/etnz/finance"
)

// Default values for optional configuration fields.
const (
	DefaultDriver         = "sqlite"
	DefaultPath           = "fin.db"
	DefaultDBPort         = 5432
	DefaultDBSSLMode      = "prefer"
	DefaultEquityURL      = "https://query1.finance.yahoo.com"
	DefaultCryptoURL      = "https://api.coingecko.com"
	DefaultQuoteTimeout   = 5 * time.Second
	DefaultCurrency       = "USD"
	DefaultAssistantModel = "gemini-2.5-pro"
)

func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = DefaultDriver
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultPath
	}
	if c.Database.Postgres.Port == 0 {
		c.Database.Postgres.Port = DefaultDBPort
	}
	if c.Database.Postgres.SSLMode == "" {
		c.Database.Postgres.SSLMode = DefaultDBSSLMode
	}

	if c.Quotes.EquityURL == "" {
		c.Quotes.EquityURL = DefaultEquityURL
	}
	if c.Quotes.CryptoURL == "" {
		c.Quotes.CryptoURL = DefaultCryptoURL
	}
	if c.Quotes.Timeout == 0 {
		c.Quotes.Timeout = DefaultQuoteTimeout
	}

	if c.Budget.Threshold == 0 {
		c.Budget.Threshold = finance.DefaultBudgetThreshold
	}
	if len(c.Budget.Categories) == 0 {
		c.Budget.Categories = slices.Clone(finance.DefaultCategories)
	}

	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if c.Assist.Model == "" {
		c.Assist.Model = DefaultAssistantModel
	}
}
