// Package migrations embeds the goose SQL migrations so the binary can
// migrate any target database without a migrations directory on disk.
package migrations

import "embed"

// FS holds the embedded migration files, ordered by their timestamp prefix.
//
//go:embed *.sql
var FS embed.FS
