// Package migrations embeds the master-database schema, applied with goose
// on startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
