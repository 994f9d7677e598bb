// Package migrations embeds the discount SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
