package configs

import "net/url"

// Redis holds configuration for the redis storage backend. The slot is kept
// as a single string value, so any Redis-compatible server works.
type Redis struct {
	Addr     url.URL `env:"ADDRESS" envDefault:"redis://localhost:6379/0"`
	Password string  `env:"PASSWORD"`
}
