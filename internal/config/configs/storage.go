package configs

// Backend names accepted by Storage.Backend.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Backends lists every supported storage backend.
var Backends = []string{BackendFile, BackendMemory, BackendSQLite, BackendPostgres, BackendRedis}

// Storage selects where the campaign slot lives.
type Storage struct {
	// Backend is one of Backends.
	Backend string `env:"BACKEND" envDefault:"file"`
	// Slot names the key, row or file entry holding the campaign list.
	Slot string `env:"SLOT" envDefault:"clarul_campaigns"`
	// FilePath is the JSON file used by the file backend.
	FilePath string `env:"FILE_PATH" envDefault:"./data/campaigns.json"`
	// SeedDemo fills an empty slot with demo campaigns on startup.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}
