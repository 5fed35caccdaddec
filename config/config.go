package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration settings for the backend.
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	Gateway       GatewayConfig       `yaml:"gateway"`
	Transfer      TransferConfig      `yaml:"transfer"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// GatewayConfig tunes the platform gateway adapter.
type GatewayConfig struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// DMRatePerSecond paces outbound direct messages; zero disables pacing.
	DMRatePerSecond float64 `yaml:"dm_rate_per_second"`
	DMBurst         int     `yaml:"dm_burst"`
}

// TransferConfig tunes the negotiation workflow.
type TransferConfig struct {
	OfferTTL      time.Duration `yaml:"offer_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// ObservabilityConfig holds configuration for observability components.
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
}

// LoadConfig loads the configuration from a YAML file, falling back to
// environment variables when the file is absent, then applies env
// overrides and defaults.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Observability.Environment = v
	}

	cfg.applyDefaults()

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required (config file or DATABASE_URL)")
	}
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS URL is required (config file or NATS_URL)")
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Gateway.RequestTimeout <= 0 {
		c.Gateway.RequestTimeout = 5 * time.Second
	}
	if c.Gateway.DMBurst <= 0 {
		c.Gateway.DMBurst = 1
	}
	if c.Transfer.OfferTTL <= 0 {
		c.Transfer.OfferTTL = 24 * time.Hour
	}
	if c.Transfer.SweepInterval <= 0 {
		c.Transfer.SweepInterval = 10 * time.Minute
	}
	if c.Observability.MetricsAddress == "" {
		c.Observability.MetricsAddress = ":9090"
	}
}
