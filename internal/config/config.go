package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
	Tenant TenantConfig `yaml:"tenant"`
	Seed   SeedConfig   `yaml:"seed"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr is the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig holds reviewer session settings.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-default:"hirepipe-dev-secret"`
}

// TenantConfig pins the single tenant every API request must name.
type TenantConfig struct {
	Required string `yaml:"required" env:"TENANT_REQUIRED" env-default:"demo-employer"`
	OrgID    string `yaml:"org_id"   env:"TENANT_ORG_ID"   env-default:"org-demo-001"`
}

// SeedConfig controls the lazily generated dataset.
type SeedConfig struct {
	Value int64 `yaml:"value" env:"SEED"       env-default:"1"`
	Count int   `yaml:"count" env:"SEED_COUNT" env-default:"5000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Seed.Count <= 0 {
		return fmt.Errorf("seed count must be positive, got %d", c.Seed.Count)
	}
	if c.Tenant.Required == "" {
		return fmt.Errorf("tenant.required must not be empty")
	}
	return nil
}
