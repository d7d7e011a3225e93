package configs

// SQLite holds configuration for the sqlite storage backend.
type SQLite struct {
	Path          string `env:"PATH" envDefault:"./data/campaigns.db"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`
}
