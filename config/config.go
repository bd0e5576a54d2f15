// Package config loads the fin configuration file.
//
// The file is YAML. ${VAR} references are expanded from the environment
// before parsing, so secrets such as the database password can stay out of
// the file:
//
//	database:
//	  driver: postgres
//	  postgres:
//	    host: localhost
//	    name: fin
//	    user: fin
//	    password: ${FIN_DB_PASSWORD}
//	budget:
//	  threshold: 0.6
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top level configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Quotes   QuotesConfig   `yaml:"quotes"`
	Budget   BudgetConfig   `yaml:"budget"`
	Currency string         `yaml:"currency"`
	Assist   AssistConfig   `yaml:"assist"`
}

// DatabaseConfig selects and configures the record store.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"` // sqlite or postgres
	Path     string         `yaml:"path"`   // sqlite file
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
}

// QuotesConfig configures the price lookup services.
type QuotesConfig struct {
	EquityURL string        `yaml:"equity_url"`
	CryptoURL string        `yaml:"crypto_url"`
	Timeout   time.Duration `yaml:"timeout"`
}

// BudgetConfig configures the budget report.
type BudgetConfig struct {
	Threshold  float64  `yaml:"threshold"`
	Categories []string `yaml:"categories"`
}

// AssistConfig configures the assistant.
type AssistConfig struct {
	Model string `yaml:"model"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML config data after expanding environment variables.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	return &cfg, nil
}

// LoadWithDefaults loads config and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates. An empty path
// returns the validated default configuration.
func LoadAndValidate(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadWithDefaults(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
