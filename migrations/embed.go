// Package migrations embeds the versioned SQL schema applied by cmd/migrate.
package migrations

import "embed"

// FS holds the golang-migrate source files (<version>_<name>.up.sql / .down.sql).
//
//go:embed *.sql
var FS embed.FS
