package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"

	"campaign-tracker/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"dev"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Storage selects the campaign slot backend. Environment variables
	// prefixed with STORAGE_ will populate this struct.
	Storage configs.Storage `envPrefix:"STORAGE_"`

	// SQLite configures the sqlite backend (SQLITE_ prefix).
	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	// Psql configures the postgres backend (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the redis backend (REDIS_ prefix).
	Redis configs.Redis `envPrefix:"REDIS_"`
}

// Load reads configuration from environment variables into a Config and
// validates it. All fields are loaded with their specified defaults when no
// environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field rules that struct tags cannot express.
func (c Config) Validate() error {
	var problems []string

	if c.HTTP.Port == 0 {
		problems = append(problems, "HTTP_PORT must be between 1 and 65535")
	}

	if !slices.Contains(configs.Backends, c.Storage.Backend) {
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be one of %v", c.Storage.Backend, configs.Backends))
	}
	if strings.TrimSpace(c.Storage.Slot) == "" {
		problems = append(problems, "STORAGE_SLOT cannot be empty")
	}

	switch c.Storage.Backend {
	case configs.BackendFile:
		if c.Storage.FilePath == "" {
			problems = append(problems, "STORAGE_FILE_PATH is required for the file backend")
		}
	case configs.BackendSQLite:
		if c.SQLite.Path == "" {
			problems = append(problems, "SQLITE_PATH is required for the sqlite backend")
		}
	case configs.BackendPostgres:
		if c.Psql.Addr.Scheme != "postgres" && c.Psql.Addr.Scheme != "postgresql" {
			problems = append(problems, fmt.Sprintf("invalid PSQL_ADDRESS scheme %q", c.Psql.Addr.Scheme))
		}
	case configs.BackendRedis:
		if c.Redis.Addr.Scheme != "redis" && c.Redis.Addr.Scheme != "rediss" {
			problems = append(problems, fmt.Sprintf("invalid REDIS_ADDRESS scheme %q", c.Redis.Addr.Scheme))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
