// Package migrations holds the adzone schema as embedded SQL files applied
// by internal/db.Migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects. Bump it together with
// every new migration pair.
const Version uint = 2
