package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

type Config struct {
	PostgresAddress  string `mapstructure:"POSTGRES_ADDRESS"`
	PostgresPort     string `mapstructure:"POSTGRES_PORT"`
	PostgresDB       string `mapstructure:"POSTGRES_DB"`
	PostgresUsername string `mapstructure:"POSTGRES_USERNAME"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`

	Port           string `mapstructure:"PORT"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	AuditWorkers   int `mapstructure:"AUDIT_WORKERS"`
	AuditQueueSize int `mapstructure:"AUDIT_QUEUE_SIZE"`
	AuditKeepCount int `mapstructure:"AUDIT_KEEP_COUNT"`
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func ProcessEnvironmentVariables() (*Config, error) {
	v := viper.New()

	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("POSTGRES_ADDRESS", "localhost")
	v.SetDefault("POSTGRES_PORT", "5433")
	v.SetDefault("POSTGRES_DB", "postgres")
	v.SetDefault("POSTGRES_USERNAME", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "testpassword")
	v.SetDefault("PORT", "9446")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_BACKEND", StorageBackendPostgres)
	v.SetDefault("AUDIT_WORKERS", 2)
	v.SetDefault("AUDIT_QUEUE_SIZE", 1000)
	v.SetDefault("AUDIT_KEEP_COUNT", 100)
	v.AutomaticEnv()

	var env Config
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := env.validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageBackendPostgres, StorageBackendMemory:
	default:
		return fmt.Errorf("config: unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	if c.AuditWorkers < 1 {
		return fmt.Errorf("config: AUDIT_WORKERS must be at least 1, got %d", c.AuditWorkers)
	}
	if c.AuditQueueSize < 1 {
		return fmt.Errorf("config: AUDIT_QUEUE_SIZE must be at least 1, got %d", c.AuditQueueSize)
	}
	if c.AuditKeepCount < 1 {
		return fmt.Errorf("config: AUDIT_KEEP_COUNT must be at least 1, got %d", c.AuditKeepCount)
	}

	return nil
}
