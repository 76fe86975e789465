package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment selects which SkuVault deployment the client talks to.
type Environment string

const (
	Production Environment = "production"
	Staging    Environment = "staging"
)

const (
	productionBaseURI = "https://app.skuvault.com/api/"
	stagingBaseURI    = "https://staging.skuvault.com/api/"
)

type Config struct {
	TenantToken string
	UserToken   string
	Environment Environment

	// BaseURI overrides the environment-derived base URL when set.
	// Used for tests and on-prem proxies.
	BaseURI string

	// RequestTimeout overrides the transport's 20-second per-request
	// default when set. Zero means "use the default".
	RequestTimeout time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		TenantToken: os.Getenv("SKUVAULT_TENANT_TOKEN"),
		UserToken:   os.Getenv("SKUVAULT_USER_TOKEN"),
		Environment: Environment(os.Getenv("SKUVAULT_ENVIRONMENT")),
		BaseURI:     os.Getenv("SKUVAULT_BASE_URI"),
	}

	if raw := os.Getenv("SKUVAULT_REQUEST_TIMEOUT"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds < 0 {
			return nil, fmt.Errorf("SKUVAULT_REQUEST_TIMEOUT must be a non-negative number of seconds, got %q", raw)
		}
		cfg.RequestTimeout = time.Duration(seconds) * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TenantToken == "" {
		return fmt.Errorf("SKUVAULT_TENANT_TOKEN is required")
	}
	if c.UserToken == "" {
		return fmt.Errorf("SKUVAULT_USER_TOKEN is required")
	}
	switch c.Environment {
	case "", Production, Staging:
		// Empty defaults to production in ResolveBaseURI.
	default:
		return fmt.Errorf("SKUVAULT_ENVIRONMENT must be %q or %q, got %q", Production, Staging, c.Environment)
	}
	return nil
}

// ResolveBaseURI returns the API base URL for this configuration. The
// explicit BaseURI override wins; otherwise the environment decides.
func (c *Config) ResolveBaseURI() string {
	if c.BaseURI != "" {
		return c.BaseURI
	}
	if c.Environment == Staging {
		return stagingBaseURI
	}
	return productionBaseURI
}
