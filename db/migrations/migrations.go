package migrations

import "embed"

// FS embeds the SQL migrations for every SQL backend. Each backend reads its
// own sub-directory through the golang-migrate iofs source.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)

const Version = 1
