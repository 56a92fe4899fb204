// Package migrations embeds the marketplace schema migrations.
package migrations

import "embed"

// Dir is the directory within FS holding the migration files.
const Dir = "sql"

// FS holds the numbered up/down migration files.
//
//go:embed sql/*.sql
var FS embed.FS
