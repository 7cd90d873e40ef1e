// Package config provides runtime configuration values for the service.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config holds configuration knobs for the HTTP server and cart totals.
// TaxRate is kept as its decimal string so totals never touch binary floats.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	TaxRate         string        `envconfig:"TAX_RATE" default:"0.08"`
	TrendingLimit   int           `envconfig:"TRENDING_LIMIT" default:"8"`
}

// Load collects configuration from environment with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("processing environment: %w", err)
	}
	if _, err := decimal.NewFromString(cfg.TaxRate); err != nil {
		return Config{}, fmt.Errorf("invalid TAX_RATE %q: %w", cfg.TaxRate, err)
	}
	if cfg.TrendingLimit < 0 {
		return Config{}, fmt.Errorf("TRENDING_LIMIT must be non-negative, got %d", cfg.TrendingLimit)
	}
	return cfg, nil
}

// TaxRateDecimal parses the configured tax rate. Load has already validated
// the string, so this never fails on a loaded Config.
func (c Config) TaxRateDecimal() decimal.Decimal {
	d, _ := decimal.NewFromString(c.TaxRate)
	return d
}
