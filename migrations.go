// Package passgen holds assets shared by the passgen binaries.
package passgen

import "embed"

// Migrations contains the goose migrations for every supported dialect,
// under migrations/postgres and migrations/sqlite.
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var Migrations embed.FS
